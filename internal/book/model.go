package book

import (
	"net/http"
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "book not found")
	ErrEmptyTitle    = apperror.New(http.StatusBadRequest, "title cannot be empty")
	ErrEmptyAuthor   = apperror.New(http.StatusBadRequest, "author cannot be empty")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "invalid book status")
	ErrInvalidRating = apperror.New(http.StatusBadRequest, "rating must be between 1 and 5")
)

// Status tracks a copy's availability on the shelf.
type Status string

const (
	StatusAvailable      Status = "Available"
	StatusOutOfStock     Status = "Out of Stock"
	StatusOnLoan         Status = "On Loan"
	StatusMissing        Status = "Missing"
	StatusUnderRepair    Status = "Under Repair"
	StatusLibraryUseOnly Status = "Library Use Only"
)

// ValidStatuses lists every accepted book status.
var ValidStatuses = []Status{
	StatusAvailable, StatusOutOfStock, StatusOnLoan,
	StatusMissing, StatusUnderRepair, StatusLibraryUseOnly,
}

// Borrowable reports whether a copy in this status can leave the
// library. Reference-only and damaged copies stay in.
func (s Status) Borrowable() bool {
	return s == StatusAvailable
}

// Book is a single physical copy in the catalog.
type Book struct {
	ID            string // UUID
	Title         string
	Author        string
	CoverURL      *string
	Description   *string
	Genre         *string
	Pages         int
	Status        Status
	Rating        *int // 1..5
	ShelfLocation *string
	ISBN          *string
	AddedAt       time.Time
}

// Filter narrows catalog listings. Keyword matches title and author.
type Filter struct {
	Keyword string
	Genre   string
	Status  string

	Page     int
	PageSize int
}
