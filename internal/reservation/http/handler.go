package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/auth"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/request"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/response"
	"github.com/paksr/MiniProject-Shoseki/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

var errInvalidPayload = apperror.New(http.StatusBadRequest, "invalid request payload")

func (h *Handler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	res, err := h.service.Reserve(c.Request.Context(), auth.GetUserID(c), req.BookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	reservations, err := h.service.ListOwn(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, NewReservationResponse(res))
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	if err := h.service.Cancel(c.Request.Context(), req.ID, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
