package order

import (
	"time"

	"storefront-be/internal/payment"
	"storefront-be/internal/product"
)

// StatusAccepted is the only status an order ever carries here; there
// is no fulfilment state machine.
const StatusAccepted = "Order Accepted !"

type Order struct {
	ID          int64
	Email       string
	OrderDate   time.Time
	TotalAmount float64
	Status      string
	AddressID   int64
}

// OrderItem freezes a cart line at checkout time. Discount and
// OrderedProductPrice are copies of the cart snapshots.
type OrderItem struct {
	ID                  int64
	OrderID             int64
	ProductID           int64
	Quantity            int
	Discount            float64
	OrderedProductPrice float64

	// Product is the joined product row, populated by reads.
	Product product.Product
}

type OrderDTO struct {
	OrderID     int64               `json:"orderId"`
	Email       string              `json:"email"`
	OrderItems  []OrderItemDTO      `json:"orderItems"`
	OrderDate   string              `json:"orderDate"`
	Payment     payment.PaymentDTO  `json:"payment"`
	TotalAmount float64             `json:"totalAmount"`
	OrderStatus string              `json:"orderStatus"`
	AddressID   int64               `json:"addressId"`
}

type OrderItemDTO struct {
	OrderItemID         int64              `json:"orderItemId"`
	Product             product.ProductDTO `json:"product"`
	Quantity            int                `json:"quantity"`
	Discount            float64            `json:"discount"`
	OrderedProductPrice float64            `json:"orderedProductPrice"`
}
