package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/auth"
	"storefront-be/internal/pagination"
	"storefront-be/internal/product"
)

type productImageRequest struct {
	Image string `json:"image" binding:"required"`
}

type ProductHandler struct {
	products product.Service
}

func NewProductHandler(products product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Add(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	var req product.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	seller := auth.PrincipalFrom(c.Request.Context())
	dto, err := h.products.Add(c.Request.Context(), categoryID, seller.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *ProductHandler) List(c *gin.Context) {
	page, err := h.products.GetAll(c.Request.Context(), pagination.FromQuery(c, "productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	page, err := h.products.GetByCategory(c.Request.Context(), categoryID, pagination.FromQuery(c, "productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) Search(c *gin.Context) {
	page, err := h.products.SearchByKeyword(c.Request.Context(), c.Param("keyword"), pagination.FromQuery(c, "productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	var req product.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	dto, err := h.products.Update(c.Request.Context(), productID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// UpdateImage stores a new image reference for a product. File
// contents live elsewhere; only the reference is persisted.
func (h *ProductHandler) UpdateImage(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	var req productImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	dto, err := h.products.UpdateImage(c.Request.Context(), productID, req.Image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	dto, err := h.products.Delete(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}
