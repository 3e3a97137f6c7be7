package category

type Category struct {
	ID   int64
	Name string
}

type CategoryDTO struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}
