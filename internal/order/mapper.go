package order

import (
	"storefront-be/internal/payment"
	"storefront-be/internal/product"
)

func ToDTO(o Order, items []OrderItem, pay payment.Payment) OrderDTO {
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderItemID:         item.ID,
			Product:             product.ToDTO(item.Product),
			Quantity:            item.Quantity,
			Discount:            item.Discount,
			OrderedProductPrice: item.OrderedProductPrice,
		})
	}
	return OrderDTO{
		OrderID:     o.ID,
		Email:       o.Email,
		OrderItems:  itemDTOs,
		OrderDate:   o.OrderDate.Format("2006-01-02"),
		Payment:     payment.ToDTO(pay),
		TotalAmount: o.TotalAmount,
		OrderStatus: o.Status,
		AddressID:   o.AddressID,
	}
}
