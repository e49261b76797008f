package models

// Exhibit is a catalogued item belonging to exactly one category.
// CategoryID is set at creation and never repointed afterwards.
type Exhibit struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	CategoryID  string `json:"categoryId"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// DefaultExhibitImage is used when an exhibit is created without an image.
const DefaultExhibitImage = "https://picsum.photos/600/400"

// DefaultExhibits returns the built-in collection used to seed an empty
// store.
func DefaultExhibits() []Exhibit {
	return []Exhibit{
		{
			ID:          "101",
			Code:        "E001",
			Name:        "台儿庄战役纪念馆",
			CategoryID:  "1",
			Image:       "https://picsum.photos/id/203/600/400",
			Description: "台儿庄战役是抗日战争初期中国军队取得的一次重大胜利。",
		},
		{
			ID:          "102",
			Code:        "E002",
			Name:        "百团大战",
			CategoryID:  "1",
			Image:       "https://picsum.photos/id/204/600/400",
			Description: "百团大战是八路军在华北地区发动的一次规模最大、持续时间最长的战略性进攻战役。",
		},
	}
}
