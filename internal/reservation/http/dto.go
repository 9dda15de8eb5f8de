package http

import (
	"time"

	bookHttp "github.com/paksr/MiniProject-Shoseki/internal/book/http"
	"github.com/paksr/MiniProject-Shoseki/internal/reservation"
)

type ReserveRequest struct {
	BookID string `json:"book_id" binding:"required,uuid"`
}

type ReservationResponse struct {
	ID         string           `json:"id"`
	Book       bookHttp.BookTag `json:"book"`
	ReservedAt time.Time        `json:"reserved_at"`
	Status     string           `json:"status"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		Book:       bookHttp.BookTag{ID: r.BookID, Title: r.BookTitle, Author: r.BookAuthor},
		ReservedAt: r.ReservedAt,
		Status:     string(r.Status),
	}
}
