package loan

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/clock"
)

// PenaltyIssuer creates a late-return penalty for an overdue loan. It
// must be idempotent per loan.
type PenaltyIssuer interface {
	IssueLateReturn(ctx context.Context, userID, loanID string, daysLate int) error
}

type Service interface {
	// Borrow checks out one or more books for the user. All-or-nothing:
	// one unavailable copy fails the whole request.
	Borrow(ctx context.Context, userID string, bookIDs []string) ([]*Loan, error)

	// Return hands a borrowed copy back.
	Return(ctx context.Context, userID, bookID string) (*Loan, error)

	ListOwn(ctx context.Context, userID string) ([]*Loan, error)

	// SweepOverdue marks overdue loans and issues their penalties.
	// Called periodically by the sweeper.
	SweepOverdue(ctx context.Context) (int, error)
}

type service struct {
	repo       Repository
	penalties  PenaltyIssuer
	clock      clock.Clock
	logger     logger.Logger
	loanPeriod time.Duration
}

func NewService(
	repo Repository,
	penalties PenaltyIssuer,
	clk clock.Clock,
	log logger.Logger,
	loanPeriodDays int,
) Service {
	return &service{
		repo:       repo,
		penalties:  penalties,
		clock:      clk,
		logger:     log,
		loanPeriod: time.Duration(loanPeriodDays) * 24 * time.Hour,
	}
}

func (s *service) Borrow(ctx context.Context, userID string, bookIDs []string) ([]*Loan, error) {
	ids := dedupe(bookIDs)
	if len(ids) == 0 {
		return nil, ErrNoBooksRequested
	}

	now := s.clock.Now()
	loans, err := s.repo.Borrow(ctx, userID, ids, now, now.Add(s.loanPeriod))
	if err != nil {
		return nil, err
	}

	s.logger.Info("books borrowed",
		logger.String("user_id", userID),
		logger.Int("count", len(loans)),
	)
	return loans, nil
}

func (s *service) Return(ctx context.Context, userID, bookID string) (*Loan, error) {
	l, reservedBy, err := s.repo.Return(ctx, userID, bookID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("book returned",
		logger.String("user_id", userID),
		logger.String("book_id", bookID),
		logger.String("loan_id", l.ID),
	)
	if reservedBy != "" {
		s.logger.Info("reservation fulfilled",
			logger.String("book_id", bookID),
			logger.String("user_id", reservedBy),
		)
	}
	return l, nil
}

func (s *service) ListOwn(ctx context.Context, userID string) ([]*Loan, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) SweepOverdue(ctx context.Context) (int, error) {
	now := s.clock.Now()
	overdue, err := s.repo.MarkOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, l := range overdue {
		days := daysLate(l.DueDate, now)
		if err := s.penalties.IssueLateReturn(ctx, l.UserID, l.ID, days); err != nil {
			// Keep sweeping; the loan stays overdue and the next run
			// will not re-flip it, so log loudly.
			s.logger.Error("failed to issue late-return penalty",
				logger.String("loan_id", l.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return len(overdue), nil
}

// daysLate counts started days past the due date, at least 1.
func daysLate(due, now time.Time) int {
	days := int(now.Sub(due)/(24*time.Hour)) + 1
	if days < 1 {
		days = 1
	}
	return days
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
