// Package forms holds the partial drafts behind the management screens and
// turns them into complete records for the repositories.
package forms

import (
	"strings"

	"github.com/google/uuid"
)

// ValidationError reports missing required fields. The caller keeps the
// draft so the user can correct it; no repository write happens.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0] + " is required"
	}
	return strings.Join(e.Fields, ", ") + " are required"
}

// newID returns a collision-resistant record identifier. The original
// scheme derived ids from the creation timestamp; random UUIDs close that
// collision window without changing the id's opaque-string contract.
func newID() string {
	return uuid.NewString()
}
