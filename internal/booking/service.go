package booking

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/paksr/MiniProject-Shoseki/internal/facility"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/clock"
)

type CreateRequest struct {
	UserID     string
	FacilityID string
	Date       string // YYYY-MM-DD
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Pax        int
}

// Notifier is the outbound notification port. Implementations must be
// safe to call with a disabled backend; the service fires and forgets.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b *Booking)
	NotifyBookingDecided(ctx context.Context, b *Booking)
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Decide approves or rejects a pending booking. Any other target
	// status, or a booking no longer pending, is rejected.
	Decide(ctx context.Context, id string, approve bool) (*Booking, error)

	// Cancel removes a booking. Admins may cancel anything; owners may
	// cancel only their own still-pending bookings.
	Cancel(ctx context.Context, id string, userID string, isAdmin bool) error

	// AvailableStartTimes returns the open slot starts for a facility
	// on a given date.
	AvailableStartTimes(ctx context.Context, facilityID, date string) ([]string, error)
}

type service struct {
	repo        Repository
	facService  facility.Service
	clock       clock.Clock
	notifier    Notifier
	logger      logger.Logger
	granularity time.Duration
	closedDays  []time.Weekday
}

func NewService(
	repo Repository,
	facService facility.Service,
	clk clock.Clock,
	notifier Notifier,
	log logger.Logger,
	granularity time.Duration,
	closedDays []time.Weekday,
) Service {
	return &service{
		repo:        repo,
		facService:  facService,
		clock:       clk,
		notifier:    notifier,
		logger:      log,
		granularity: granularity,
		closedDays:  closedDays,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	fac, err := s.facService.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}

	existing, err := s.repo.ListForDay(ctx, req.FacilityID, req.Date)
	if err != nil {
		return nil, err
	}

	if err := ValidateCandidate(req, fac, existing, s.closedDays, s.clock.Now()); err != nil {
		return nil, err
	}

	b := &Booking{
		FacilityID:   req.FacilityID,
		FacilityName: fac.Name,
		UserID:       req.UserID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Pax:          req.Pax,
		Status:       StatusPending,
	}

	// The repository repeats the conflict check at write time, so a
	// race with another request surfaces here as ErrSlotConflict.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", b.ID),
		logger.String("facility_id", b.FacilityID),
		logger.String("user_id", b.UserID),
		logger.String("date", b.Date),
	)
	s.notifier.NotifyBookingCreated(ctx, b)

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Decide(ctx context.Context, id string, approve bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Decisions are single-shot: only a pending booking can move, and
	// it can only move to approved or rejected.
	if b.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	target := StatusRejected
	if approve {
		target = StatusApproved
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	b.Status = target

	s.logger.Info("booking decided",
		logger.String("booking_id", b.ID),
		logger.String("status", string(target)),
	)
	s.notifier.NotifyBookingDecided(ctx, b)

	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string, userID string, isAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin {
		if b.UserID != userID || b.Status != StatusPending {
			return ErrNotPermitted
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.String("by_user", userID),
	)
	return nil
}

func (s *service) AvailableStartTimes(ctx context.Context, facilityID, date string) ([]string, error) {
	fac, err := s.facService.GetByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}

	existing, err := s.repo.ListForDay(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}

	return AvailableStartTimes(date, s.granularity, fac.OpenTime, fac.CloseTime, existing, s.clock.Now())
}
