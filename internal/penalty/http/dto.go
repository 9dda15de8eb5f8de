package http

import (
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/penalty"
)

type PenaltyResponse struct {
	ID       string    `json:"id"`
	LoanID   *string   `json:"loan_id"`
	Amount   float64   `json:"amount"`
	Reason   string    `json:"reason"`
	IssuedAt time.Time `json:"issued_at"`
	Status   string    `json:"status"`
}

func NewPenaltyResponse(p *penalty.Penalty) PenaltyResponse {
	return PenaltyResponse{
		ID:       p.ID,
		LoanID:   p.LoanID,
		Amount:   p.Amount,
		Reason:   p.Reason,
		IssuedAt: p.IssuedAt,
		Status:   string(p.Status),
	}
}
