package http

import (
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/booking"
	facHttp "github.com/paksr/MiniProject-Shoseki/internal/facility/http"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/request"
	userHttp "github.com/paksr/MiniProject-Shoseki/internal/user/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	FacilityID string `form:"facility_id"`
	Date       string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	UserID     string `form:"user_id" binding:"omitempty,uuid"`
}

type BookingResponse struct {
	ID        string              `json:"id"`
	Facility  facHttp.FacilityTag `json:"facility"`
	User      userHttp.UserTag    `json:"user"`
	Date      string              `json:"date"`
	StartTime string              `json:"start_time"`
	EndTime   string              `json:"end_time"`
	Pax       int                 `json:"pax"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Facility:  facHttp.FacilityTag{ID: b.FacilityID, Name: b.FacilityName},
		User:      userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Pax:       b.Pax,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	FacilityID string `json:"facility_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime    string `json:"end_time" binding:"required,datetime=15:04"`
	Pax        int    `json:"pax" binding:"required,min=1"`
}

// DecideBookingRequest carries the admin's verdict on a pending booking.
type DecideBookingRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type AvailableTimesResponse struct {
	FacilityID string   `json:"facility_id"`
	Date       string   `json:"date"`
	StartTimes []string `json:"start_times"`
}
