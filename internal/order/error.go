package order

import "errors"

// ErrInsufficientStock is returned by checkout when a product's stock
// dropped below the ordered quantity between add-to-cart and checkout.
var ErrInsufficientStock = errors.New("insufficient stock")
