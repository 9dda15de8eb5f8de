package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/auth"
	"github.com/paksr/MiniProject-Shoseki/internal/booking"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/request"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, booking.ErrInvalidInput)
		return
	}

	filterUserID := auth.GetUserID(c)
	if auth.GetUserRole(c) == auth.RoleAdmin {
		// Admins see everything unless they narrow to one user.
		filterUserID = req.UserID
	}

	bookings, total, err := h.service.List(c.Request.Context(), booking.Filter{
		UserID:     filterUserID,
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Status:     req.Status,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, NewBookingResponse(b))
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
		response.Error(c, booking.ErrInvalidInput)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// A booking is visible to its owner and to admins only.
	if b.UserID != auth.GetUserID(c) && auth.GetUserRole(c) != auth.RoleAdmin {
		response.Error(c, booking.ErrNotPermitted)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, booking.ErrInvalidInput)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:     auth.GetUserID(c),
		FacilityID: req.FacilityID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Pax:        req.Pax,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Decide(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, booking.ErrInvalidInput)
		return
	}

	var req DecideBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, booking.ErrInvalidInput)
		return
	}

	b, err := h.service.Decide(c.Request.Context(), uri.ID, req.Status == "approved")
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, booking.ErrInvalidInput)
		return
	}

	userID := auth.GetUserID(c)
	isAdmin := auth.GetUserRole(c) == auth.RoleAdmin

	if err := h.service.Cancel(c.Request.Context(), req.ID, userID, isAdmin); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AvailableTimes(c *gin.Context) {
	facilityID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		response.Error(c, booking.ErrInvalidInput)
		return
	}

	times, err := h.service.AvailableStartTimes(c.Request.Context(), facilityID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	if times == nil {
		times = []string{}
	}

	c.JSON(http.StatusOK, AvailableTimesResponse{
		FacilityID: facilityID,
		Date:       date,
		StartTimes: times,
	})
}
