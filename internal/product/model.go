package product

// Product is the catalog row. Price and discount feed the derived
// SpecialPrice; Quantity is the remaining stock.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Image        string
	Quantity     int
	Price        float64
	Discount     float64
	SpecialPrice float64
	CategoryID   int64
	SellerID     int64
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	ProductName string  `json:"productName" binding:"required,min=3"`
	Description string  `json:"description" binding:"required,min=6"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
}

type ProductDTO struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	SpecialPrice float64 `json:"specialPrice"`
}

// SpecialPriceOf derives the effective price from the list price and
// the discount percentage.
func SpecialPriceOf(price, discount float64) float64 {
	return price - (discount*0.01)*price
}
