package reservation

import (
	"net/http"
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "reservation not found")
	ErrBookNotFound    = apperror.New(http.StatusNotFound, "book not found")
	ErrBookAvailable   = apperror.New(http.StatusConflict, "book is available, borrow it instead")
	ErrAlreadyReserved = apperror.New(http.StatusConflict, "book already reserved by you")
	ErrNotPermitted    = apperror.New(http.StatusForbidden, "not permitted")
	ErrNotActive       = apperror.New(http.StatusConflict, "reservation is not active")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

// Reservation queues a member for a copy that is currently out.
type Reservation struct {
	ID         string // UUID
	UserID     string
	BookID     string
	BookTitle  string
	BookAuthor string
	ReservedAt time.Time
	Status     Status
}
