package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/auth"
	"github.com/paksr/MiniProject-Shoseki/internal/loan"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/response"
)

type Handler struct {
	service loan.Service
}

func NewHandler(service loan.Service) *Handler {
	return &Handler{service: service}
}

var errInvalidPayload = apperror.New(http.StatusBadRequest, "invalid request payload")

func (h *Handler) Borrow(c *gin.Context) {
	var req BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	loans, err := h.service.Borrow(c.Request.Context(), auth.GetUserID(c), req.BookIDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		items = append(items, NewLoanResponse(l))
	}
	c.JSON(http.StatusCreated, items)
}

func (h *Handler) Return(c *gin.Context) {
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	l, err := h.service.Return(c.Request.Context(), auth.GetUserID(c), req.BookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewLoanResponse(l))
}

func (h *Handler) List(c *gin.Context) {
	loans, err := h.service.ListOwn(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		items = append(items, NewLoanResponse(l))
	}
	c.JSON(http.StatusOK, items)
}
