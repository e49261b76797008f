package models

// Category is a named grouping of exhibits shown on the home screen.
// Icon is either a remote URL or an embedded data URI.
type Category struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// DefaultCategoryIcon is used when a category is created without an icon.
const DefaultCategoryIcon = "https://picsum.photos/id/1047/200/200"

// DefaultCategories returns the built-in collection used to seed an empty
// store.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Code: "C001", Title: "主要战役", Icon: "https://picsum.photos/id/1047/200/200"},
		{ID: "2", Code: "C002", Title: "抗战英雄", Icon: "https://picsum.photos/id/1011/200/200"},
		{ID: "3", Code: "C003", Title: "历史文物", Icon: "https://picsum.photos/id/1073/200/200"},
	}
}
