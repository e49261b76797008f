package forms

import (
	"strings"

	"exhibition-catalog/models"
)

// ExhibitDraft is the partial record held by the exhibit form.
type ExhibitDraft struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	CategoryID  string `json:"categoryId"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Validate rejects the draft unless code and name are non-empty after
// trimming.
func (d ExhibitDraft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Code) == "" {
		missing = append(missing, "code")
	}
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Create builds the full record for a new exhibit in the given category,
// assigning a fresh id and defaulting image and description.
func (d ExhibitDraft) Create(categoryID string) (models.Exhibit, error) {
	if err := d.Validate(); err != nil {
		return models.Exhibit{}, err
	}
	e := models.Exhibit{
		ID:          newID(),
		Code:        d.Code,
		Name:        d.Name,
		CategoryID:  categoryID,
		Image:       d.Image,
		Description: d.Description,
	}
	if e.Image == "" {
		e.Image = models.DefaultExhibitImage
	}
	return e, nil
}

// Update merges the draft over an existing record. The id and categoryId
// are immutable; an empty image keeps the stored one. The description is
// taken verbatim so it can be cleared.
func (d ExhibitDraft) Update(existing models.Exhibit) (models.Exhibit, error) {
	if err := d.Validate(); err != nil {
		return models.Exhibit{}, err
	}
	merged := models.Exhibit{
		ID:          existing.ID,
		Code:        d.Code,
		Name:        d.Name,
		CategoryID:  existing.CategoryID,
		Image:       d.Image,
		Description: d.Description,
	}
	if merged.Image == "" {
		merged.Image = existing.Image
	}
	return merged, nil
}
