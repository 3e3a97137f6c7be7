package category

func ToDTO(c Category) CategoryDTO {
	return CategoryDTO{CategoryID: c.ID, CategoryName: c.Name}
}

func ToDTOs(categories []Category) []CategoryDTO {
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, ToDTO(c))
	}
	return dtos
}
