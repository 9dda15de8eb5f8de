package loan

import (
	"net/http"
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "loan not found")
	ErrBookNotFound      = apperror.New(http.StatusNotFound, "book not found")
	ErrBookNotBorrowable = apperror.New(http.StatusConflict, "book is not available for loan")
	ErrNoActiveLoan      = apperror.New(http.StatusNotFound, "no active loan for this book")
	ErrNoBooksRequested  = apperror.New(http.StatusBadRequest, "no books requested")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusOverdue  Status = "overdue"
	StatusReturned Status = "returned"
)

// Loan records one copy checked out by one member.
type Loan struct {
	ID         string // UUID
	UserID     string
	BookID     string
	BookTitle  string
	BookAuthor string
	BorrowedAt time.Time
	DueDate    time.Time
	ReturnedAt *time.Time
	Status     Status
}
