package http

import (
	"time"

	bookHttp "github.com/paksr/MiniProject-Shoseki/internal/book/http"
	"github.com/paksr/MiniProject-Shoseki/internal/loan"
)

type BorrowRequest struct {
	BookIDs []string `json:"book_ids" binding:"required,min=1,dive,uuid"`
}

type ReturnRequest struct {
	BookID string `json:"book_id" binding:"required,uuid"`
}

type LoanResponse struct {
	ID         string           `json:"id"`
	Book       bookHttp.BookTag `json:"book"`
	BorrowedAt time.Time        `json:"borrowed_at"`
	DueDate    time.Time        `json:"due_date"`
	ReturnedAt *time.Time       `json:"returned_at"`
	Status     string           `json:"status"`
}

func NewLoanResponse(l *loan.Loan) LoanResponse {
	return LoanResponse{
		ID:         l.ID,
		Book:       bookHttp.BookTag{ID: l.BookID, Title: l.BookTitle, Author: l.BookAuthor},
		BorrowedAt: l.BorrowedAt,
		DueDate:    l.DueDate,
		ReturnedAt: l.ReturnedAt,
		Status:     string(l.Status),
	}
}
