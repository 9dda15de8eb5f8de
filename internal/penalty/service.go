package penalty

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"
)

// Notifier announces newly issued penalties. Implementations must be
// safe to call with a disabled backend.
type Notifier interface {
	NotifyPenaltyIssued(ctx context.Context, p *Penalty)
}

type Service interface {
	// IssueLateReturn fines a user for an overdue loan. Idempotent per
	// loan: re-issuing for the same loan does nothing.
	IssueLateReturn(ctx context.Context, userID, loanID string, daysLate int) error

	ListOwn(ctx context.Context, userID string) ([]*Penalty, error)

	// Pay settles the user's own unpaid penalty.
	Pay(ctx context.Context, id, userID string) (*Penalty, error)
}

type service struct {
	repo       Repository
	notifier   Notifier
	logger     logger.Logger
	finePerDay float64
}

func NewService(repo Repository, notifier Notifier, log logger.Logger, finePerDay float64) Service {
	return &service{
		repo:       repo,
		notifier:   notifier,
		logger:     log,
		finePerDay: finePerDay,
	}
}

func (s *service) IssueLateReturn(ctx context.Context, userID, loanID string, daysLate int) error {
	if daysLate < 1 {
		daysLate = 1
	}

	p := &Penalty{
		UserID: userID,
		LoanID: &loanID,
		Amount: s.finePerDay * float64(daysLate),
		Reason: fmt.Sprintf("late return (%d days overdue)", daysLate),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	if p.ID == "" {
		// The loan was already fined on an earlier sweep.
		return nil
	}

	s.logger.Info("penalty issued",
		logger.String("penalty_id", p.ID),
		logger.String("user_id", userID),
		logger.String("loan_id", loanID),
	)
	s.notifier.NotifyPenaltyIssued(ctx, p)
	return nil
}

func (s *service) ListOwn(ctx context.Context, userID string) ([]*Penalty, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Pay(ctx context.Context, id, userID string) (*Penalty, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.UserID != userID {
		return nil, ErrNotPermitted
	}
	if p.Status == StatusPaid {
		return nil, ErrAlreadyPaid
	}

	if err := s.repo.SetStatus(ctx, id, StatusPaid); err != nil {
		return nil, err
	}
	p.Status = StatusPaid

	s.logger.Info("penalty paid",
		logger.String("penalty_id", id),
		logger.String("user_id", userID),
	)
	return p, nil
}
