package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/address"
	"storefront-be/internal/auth"
)

type addressRequest struct {
	Street       string `json:"street" binding:"required,min=5"`
	BuildingName string `json:"buildingName" binding:"required,min=5"`
	City         string `json:"city" binding:"required,min=4"`
	State        string `json:"state" binding:"required,min=2"`
	Country      string `json:"country" binding:"required,min=2"`
	Pincode      string `json:"pincode" binding:"required,min=6"`
}

func (r addressRequest) input() address.AddressInput {
	return address.AddressInput{
		Street:       r.Street,
		BuildingName: r.BuildingName,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		Pincode:      r.Pincode,
	}
}

type AddressHandler struct {
	addresses address.Service
}

func NewAddressHandler(addresses address.Service) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

func (h *AddressHandler) Create(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p := auth.PrincipalFrom(c.Request.Context())
	dto, err := h.addresses.Create(c.Request.Context(), p.UserID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *AddressHandler) List(c *gin.Context) {
	dtos, err := h.addresses.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	dto, err := h.addresses.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *AddressHandler) ListUserAddresses(c *gin.Context) {
	p := auth.PrincipalFrom(c.Request.Context())
	dtos, err := h.addresses.GetByUser(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	dto, err := h.addresses.Update(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	msg, err := h.addresses.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Message: msg, Status: true})
}
