package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/book"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/request"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/response"
)

type Handler struct {
	service book.Service
}

func NewHandler(service book.Service) *Handler {
	return &Handler{service: service}
}

var errInvalidPayload = apperror.New(http.StatusBadRequest, "invalid request payload")

func (h *Handler) List(c *gin.Context) {
	var req ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	books, total, err := h.service.List(c.Request.Context(), book.Filter{
		Keyword:  req.Keyword,
		Genre:    req.Genre,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, NewBookResponse(b))
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	b, err := h.service.Create(c.Request.Context(), book.CreateRequest{
		Title:         req.Title,
		Author:        req.Author,
		CoverURL:      req.CoverURL,
		Description:   req.Description,
		Genre:         req.Genre,
		Pages:         req.Pages,
		Status:        req.Status,
		Rating:        req.Rating,
		ShelfLocation: req.ShelfLocation,
		ISBN:          req.ISBN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	b, err := h.service.Update(c.Request.Context(), uri.ID, book.UpdateRequest{
		Title:         req.Title,
		Author:        req.Author,
		CoverURL:      req.CoverURL,
		Description:   req.Description,
		Genre:         req.Genre,
		Pages:         req.Pages,
		Status:        req.Status,
		Rating:        req.Rating,
		ShelfLocation: req.ShelfLocation,
		ISBN:          req.ISBN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, errInvalidPayload)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
