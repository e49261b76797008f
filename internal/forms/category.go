package forms

import (
	"strings"

	"exhibition-catalog/models"
)

// CategoryDraft is the partial record held by the category form.
type CategoryDraft struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// Validate rejects the draft unless code and title are non-empty after
// trimming.
func (d CategoryDraft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Code) == "" {
		missing = append(missing, "code")
	}
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Create builds the full record for a new category, assigning a fresh id
// and the default icon when none was chosen.
func (d CategoryDraft) Create() (models.Category, error) {
	if err := d.Validate(); err != nil {
		return models.Category{}, err
	}
	c := models.Category{
		ID:    newID(),
		Code:  d.Code,
		Title: d.Title,
		Icon:  d.Icon,
	}
	if c.Icon == "" {
		c.Icon = models.DefaultCategoryIcon
	}
	return c, nil
}

// Update merges the draft over an existing record. The id is immutable; an
// empty icon keeps the stored one.
func (d CategoryDraft) Update(existing models.Category) (models.Category, error) {
	if err := d.Validate(); err != nil {
		return models.Category{}, err
	}
	merged := models.Category{
		ID:    existing.ID,
		Code:  d.Code,
		Title: d.Title,
		Icon:  d.Icon,
	}
	if merged.Icon == "" {
		merged.Icon = existing.Icon
	}
	return merged, nil
}
