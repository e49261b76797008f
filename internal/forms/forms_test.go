package forms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"exhibition-catalog/models"
)

func TestCategoryDraftRequiresCodeAndTitle(t *testing.T) {
	err := CategoryDraft{}.Validate()
	require.Error(t, err)
	require.EqualError(t, err, "code, title are required")

	// Whitespace-only values do not pass.
	err = CategoryDraft{Code: "  ", Title: "\t"}.Validate()
	require.Error(t, err)

	require.NoError(t, CategoryDraft{Code: "C004", Title: "测试"}.Validate())
}

func TestCategoryCreateAssignsIDAndDefaultIcon(t *testing.T) {
	rec, err := CategoryDraft{Code: "C004", Title: "测试"}.Create()
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "C004", rec.Code)
	require.Equal(t, "测试", rec.Title)
	require.Equal(t, models.DefaultCategoryIcon, rec.Icon)

	other, err := CategoryDraft{Code: "C005", Title: "另一个"}.Create()
	require.NoError(t, err)
	require.NotEqual(t, rec.ID, other.ID)
}

func TestCategoryCreateKeepsProvidedIcon(t *testing.T) {
	rec, err := CategoryDraft{Code: "C004", Title: "测试", Icon: "data:image/png;base64,AAAA"}.Create()
	require.NoError(t, err)
	require.Equal(t, "data:image/png;base64,AAAA", rec.Icon)
}

func TestCategoryUpdateKeepsID(t *testing.T) {
	existing := models.Category{ID: "1", Code: "C001", Title: "主要战役", Icon: "old.png"}

	merged, err := CategoryDraft{ID: "hacked", Code: "C001x", Title: "改名"}.Update(existing)
	require.NoError(t, err)
	require.Equal(t, "1", merged.ID)
	require.Equal(t, "C001x", merged.Code)
	require.Equal(t, "改名", merged.Title)
	// Empty icon in the draft keeps the stored one.
	require.Equal(t, "old.png", merged.Icon)
}

func TestExhibitDraftRequiresCodeAndName(t *testing.T) {
	err := ExhibitDraft{Code: "E1"}.Validate()
	require.Error(t, err)
	require.EqualError(t, err, "name is required")

	err = ExhibitDraft{}.Validate()
	require.EqualError(t, err, "code, name are required")
}

func TestExhibitCreateDefaults(t *testing.T) {
	rec, err := ExhibitDraft{Code: "E003", Name: "平型关大捷"}.Create("1")
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "1", rec.CategoryID)
	require.Equal(t, models.DefaultExhibitImage, rec.Image)
	require.Equal(t, "", rec.Description)
}

func TestExhibitUpdateNeverRepointsCategory(t *testing.T) {
	existing := models.Exhibit{ID: "101", Code: "E001", Name: "旧名", CategoryID: "1", Image: "old.png", Description: "旧介绍"}

	merged, err := ExhibitDraft{Code: "E001", Name: "新名", CategoryID: "2", Description: ""}.Update(existing)
	require.NoError(t, err)
	require.Equal(t, "101", merged.ID)
	require.Equal(t, "1", merged.CategoryID)
	require.Equal(t, "新名", merged.Name)
	// Description is taken verbatim so it can be cleared.
	require.Equal(t, "", merged.Description)
	require.Equal(t, "old.png", merged.Image)
}

func TestValidationErrorBlocksCreate(t *testing.T) {
	_, err := ExhibitDraft{Name: "无编号"}.Create("1")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"code"}, ve.Fields)
}
