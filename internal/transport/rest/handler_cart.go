package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/auth"
	"storefront-be/internal/cart"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) AddProduct(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	quantity, ok := pathID(c, "quantity")
	if !ok {
		return
	}

	p := auth.PrincipalFrom(c.Request.Context())
	dto, err := h.carts.AddProductToCart(c.Request.Context(), p.UserID, productID, int(quantity))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *CartHandler) ListAll(c *gin.Context) {
	dtos, err := h.carts.GetAllCarts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *CartHandler) GetUserCart(c *gin.Context) {
	p := auth.PrincipalFrom(c.Request.Context())
	dto, err := h.carts.GetUserCart(c.Request.Context(), p.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// UpdateQuantity applies a single-step quantity change: the
// "delete" operation decrements, anything else increments.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	delta := 1
	if c.Param("operation") == "delete" {
		delta = -1
	}

	p := auth.PrincipalFrom(c.Request.Context())
	dto, err := h.carts.UpdateProductQuantity(c.Request.Context(), p.UserID, productID, delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *CartHandler) DeleteProduct(c *gin.Context) {
	cartID, ok := pathID(c, "cartId")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	msg, err := h.carts.DeleteProductFromCart(c.Request.Context(), cartID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Message: msg, Status: true})
}
