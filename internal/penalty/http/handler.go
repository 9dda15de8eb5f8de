package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/auth"
	"github.com/paksr/MiniProject-Shoseki/internal/penalty"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/request"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/response"
)

type Handler struct {
	service penalty.Service
}

func NewHandler(service penalty.Service) *Handler {
	return &Handler{service: service}
}

var errInvalidPayload = apperror.New(http.StatusBadRequest, "invalid request payload")

func (h *Handler) List(c *gin.Context) {
	penalties, err := h.service.ListOwn(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PenaltyResponse, 0, len(penalties))
	for _, p := range penalties {
		items = append(items, NewPenaltyResponse(p))
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Pay(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	p, err := h.service.Pay(c.Request.Context(), req.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPenaltyResponse(p))
}
