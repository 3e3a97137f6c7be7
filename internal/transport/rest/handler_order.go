package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/auth"
	"storefront-be/internal/order"
)

type placeOrderRequest struct {
	AddressID         int64  `json:"addressId" binding:"required"`
	PgName            string `json:"pgName" binding:"required"`
	PgPaymentID       string `json:"pgPaymentId" binding:"required"`
	PgStatus          string `json:"pgStatus" binding:"required"`
	PgResponseMessage string `json:"pgResponseMessage" binding:"required"`
}

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p := auth.PrincipalFrom(c.Request.Context())
	dto, err := h.orders.PlaceOrder(c.Request.Context(), p.Email, req.AddressID,
		c.Param("paymentMethod"), order.PaymentDetails{
			PgName:            req.PgName,
			PgPaymentID:       req.PgPaymentID,
			PgStatus:          req.PgStatus,
			PgResponseMessage: req.PgResponseMessage,
		})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	p := auth.PrincipalFrom(c.Request.Context())
	dtos, err := h.orders.GetUserOrders(c.Request.Context(), p.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}
