package penalty

import (
	"net/http"
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "penalty not found")
	ErrNotPermitted = apperror.New(http.StatusForbidden, "not permitted")
	ErrAlreadyPaid  = apperror.New(http.StatusConflict, "penalty already paid")
)

type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

// Penalty is a fine on a member's account, usually for a late return.
type Penalty struct {
	ID       string // UUID
	UserID   string
	LoanID   *string
	Amount   float64
	Reason   string
	IssuedAt time.Time
	Status   Status
}
