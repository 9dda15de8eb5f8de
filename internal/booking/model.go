package booking

import (
	"net/http"
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrCapacityExceeded  = apperror.New(http.StatusBadRequest, "requested pax exceeds facility capacity")
	ErrPastBooking       = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrFacilityClosed    = apperror.New(http.StatusBadRequest, "facility is closed on the selected day")
	ErrSlotConflict      = apperror.New(http.StatusConflict, "facility is already booked for the selected time slot")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "booking has already been decided")
	ErrNotPermitted      = apperror.New(http.StatusForbidden, "not permitted")
	ErrFacilityNotFound  = apperror.New(http.StatusNotFound, "facility not found")
	ErrInvalidInput      = apperror.New(http.StatusBadRequest, "invalid input parameters")
)

// Status is the booking lifecycle state. A booking is created pending;
// staff move it to approved or rejected. Only pending and approved
// bookings block a slot; rejected ones are inert.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Blocks reports whether a booking in this status occupies its slot.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusApproved
}

// Booking is a facility reservation for a half-open time interval
// [StartTime, EndTime) on a single calendar day. Times are zero-padded
// 24-hour HH:MM strings, so lexicographic order is chronological order.
type Booking struct {
	ID           string
	FacilityID   string
	FacilityName string
	UserID       string
	UserName     string
	Date         string // YYYY-MM-DD
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	Pax          int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID     string
	FacilityID string
	Date       string
	Status     string
	Page       int
	PageSize   int
}
