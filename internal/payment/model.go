package payment

// Payment records how an order was paid, including the payment
// gateway's identifiers and status verbatim.
type Payment struct {
	ID                int64
	OrderID           int64
	PaymentMethod     string
	PgName            string
	PgPaymentID       string
	PgStatus          string
	PgResponseMessage string
}

type PaymentDTO struct {
	PaymentID         int64  `json:"paymentId"`
	PaymentMethod     string `json:"paymentMethod"`
	PgName            string `json:"pgName"`
	PgPaymentID       string `json:"pgPaymentId"`
	PgStatus          string `json:"pgStatus"`
	PgResponseMessage string `json:"pgResponseMessage"`
}

func ToDTO(p Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID:         p.ID,
		PaymentMethod:     p.PaymentMethod,
		PgName:            p.PgName,
		PgPaymentID:       p.PgPaymentID,
		PgStatus:          p.PgStatus,
		PgResponseMessage: p.PgResponseMessage,
	}
}
