package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/category"
	"storefront-be/internal/pagination"
)

type categoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required,min=5"`
}

type CategoryHandler struct {
	categories category.Service
}

func NewCategoryHandler(categories category.Service) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c *gin.Context) {
	page, err := h.categories.GetAll(c.Request.Context(), pagination.FromQuery(c, "categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	dto, err := h.categories.Create(c.Request.Context(), req.CategoryName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	dto, err := h.categories.Update(c.Request.Context(), id, req.CategoryName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	dto, err := h.categories.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}
