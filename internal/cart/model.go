package cart

import "storefront-be/internal/product"

// Cart is one user's open cart. TotalPrice is maintained on every
// mutation rather than derived per read.
type Cart struct {
	ID         int64
	UserID     int64
	TotalPrice float64
}

// CartItem is a line in a cart. Discount and ProductPrice are
// snapshots taken when the line was added or last refreshed; they do
// not track the live product row.
type CartItem struct {
	ID           int64
	CartID       int64
	ProductID    int64
	Quantity     int
	Discount     float64
	ProductPrice float64

	// Product is the joined live product row, populated by reads.
	Product product.Product
}

type CartDTO struct {
	CartID     int64                `json:"cartId"`
	TotalPrice float64              `json:"totalPrice"`
	Products   []product.ProductDTO `json:"products"`
}
