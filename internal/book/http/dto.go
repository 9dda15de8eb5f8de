package http

import (
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/book"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/request"
)

type ListBooksRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
	Genre   string `form:"genre"`
	Status  string `form:"status"`
}

type BookResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	CoverURL      *string   `json:"cover_url"`
	Description   *string   `json:"description"`
	Genre         *string   `json:"genre"`
	Pages         int       `json:"pages"`
	Status        string    `json:"status"`
	Rating        *int      `json:"rating"`
	ShelfLocation *string   `json:"shelf_location"`
	ISBN          *string   `json:"isbn"`
	AddedAt       time.Time `json:"added_at"`
}

// BookTag is a brief representation of a book.
type BookTag struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func NewBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		CoverURL:      b.CoverURL,
		Description:   b.Description,
		Genre:         b.Genre,
		Pages:         b.Pages,
		Status:        string(b.Status),
		Rating:        b.Rating,
		ShelfLocation: b.ShelfLocation,
		ISBN:          b.ISBN,
		AddedAt:       b.AddedAt,
	}
}

type CreateBookRequest struct {
	Title         string  `json:"title" binding:"required"`
	Author        string  `json:"author" binding:"required"`
	CoverURL      *string `json:"cover_url"`
	Description   *string `json:"description"`
	Genre         *string `json:"genre"`
	Pages         int     `json:"pages" binding:"omitempty,min=0"`
	Status        string  `json:"status"`
	Rating        *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	ShelfLocation *string `json:"shelf_location"`
	ISBN          *string `json:"isbn"`
}

type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	CoverURL      *string `json:"cover_url"`
	Description   *string `json:"description"`
	Genre         *string `json:"genre"`
	Pages         *int    `json:"pages" binding:"omitempty,min=0"`
	Status        *string `json:"status"`
	Rating        *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	ShelfLocation *string `json:"shelf_location"`
	ISBN          *string `json:"isbn"`
}
