package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/facility"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/response"
)

type Handler struct {
	service facility.Service
}

func NewHandler(service facility.Service) *Handler {
	return &Handler{service: service}
}

var errInvalidPayload = apperror.New(http.StatusBadRequest, "invalid request payload")

func (h *Handler) List(c *gin.Context) {
	facilities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		items = append(items, NewFacilityResponse(f))
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	f, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewFacilityResponse(f))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	f, err := h.service.Create(c.Request.Context(), facility.CreateRequest{
		ID:        req.ID,
		Name:      req.Name,
		Kind:      req.Kind,
		Capacity:  req.Capacity,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewFacilityResponse(f))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	f, err := h.service.Update(c.Request.Context(), c.Param("id"), facility.UpdateRequest{
		Name:      req.Name,
		Kind:      req.Kind,
		Capacity:  req.Capacity,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewFacilityResponse(f))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
