// Package catalog tracks the viewer's position within one category's
// filtered exhibit list.
package catalog

import "fmt"

// Selection is the zero-based index of the exhibit currently shown in the
// viewer. It is only meaningful while the filtered list is non-empty.
type Selection struct {
	index  int
	length int
}

// NewSelection starts at the first exhibit of a list of n items.
func NewSelection(n int) *Selection {
	s := &Selection{}
	s.Resize(n)
	return s
}

// Index reports the current position, or -1 when the list is empty.
func (s *Selection) Index() int {
	if s.length == 0 {
		return -1
	}
	return s.index
}

// Length reports the filtered-list length the selection was last sized to.
func (s *Selection) Length() int { return s.length }

// Next advances by one; a no-op at the last exhibit.
func (s *Selection) Next() {
	if s.index < s.length-1 {
		s.index++
	}
}

// Previous steps back by one; a no-op at the first exhibit.
func (s *Selection) Previous() {
	if s.index > 0 {
		s.index--
	}
}

// SelectAt jumps directly to position i.
func (s *Selection) SelectAt(i int) error {
	if i < 0 || i >= s.length {
		return fmt.Errorf("index %d out of range [0,%d)", i, s.length)
	}
	s.index = i
	return nil
}

// Resize records the new filtered-list length and clamps the index back
// into range. Called after every mutation of the underlying list.
func (s *Selection) Resize(n int) {
	s.length = n
	if n == 0 {
		s.index = 0
		return
	}
	if s.index >= n {
		s.index = n - 1
	}
}
