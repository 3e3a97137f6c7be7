package product

func ToDTO(p Product) ProductDTO {
	return ProductDTO{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Image:        p.Image,
		Description:  p.Description,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Discount:     p.Discount,
		SpecialPrice: p.SpecialPrice,
	}
}

func ToDTOs(products []Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ToDTO(p))
	}
	return dtos
}
