package loan

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Sweeper periodically flips overdue loans and triggers their
// penalties. One sweep runs immediately on start so a restarted server
// does not wait a full interval to catch up.
type Sweeper struct {
	service  Service
	interval time.Duration
	logger   logger.Logger
}

func NewSweeper(service Service, interval time.Duration, log logger.Logger) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		logger:   log,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("overdue sweeper started",
		logger.Duration("interval", s.interval),
	)

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("overdue sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.service.SweepOverdue(ctx)
	if err != nil {
		s.logger.Error("overdue sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}
	if n > 0 {
		s.logger.Info("loans marked overdue", logger.Int("count", n))
	}
}
