package cart

import "storefront-be/internal/product"

// ToDTO renders a cart with its lines. Each product entry carries the
// line quantity, not the remaining stock.
func ToDTO(c Cart, items []CartItem) CartDTO {
	products := make([]product.ProductDTO, 0, len(items))
	for _, item := range items {
		dto := product.ToDTO(item.Product)
		dto.Quantity = item.Quantity
		products = append(products, dto)
	}
	return CartDTO{
		CartID:     c.ID,
		TotalPrice: c.TotalPrice,
		Products:   products,
	}
}
