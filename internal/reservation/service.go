package reservation

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/logger"

	"github.com/paksr/MiniProject-Shoseki/internal/book"
)

type Service interface {
	// Reserve queues the user for a book that is not currently on the
	// shelf. Reserving an available copy is rejected; just borrow it.
	Reserve(ctx context.Context, userID, bookID string) (*Reservation, error)

	ListOwn(ctx context.Context, userID string) ([]*Reservation, error)

	// Cancel withdraws the user's own active reservation.
	Cancel(ctx context.Context, id, userID string) error
}

type service struct {
	repo        Repository
	bookService book.Service
	logger      logger.Logger
}

func NewService(repo Repository, bookService book.Service, log logger.Logger) Service {
	return &service{
		repo:        repo,
		bookService: bookService,
		logger:      log,
	}
}

func (s *service) Reserve(ctx context.Context, userID, bookID string) (*Reservation, error) {
	b, err := s.bookService.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if b.Status.Borrowable() {
		return nil, ErrBookAvailable
	}

	res := &Reservation{
		UserID:     userID,
		BookID:     bookID,
		BookTitle:  b.Title,
		BookAuthor: b.Author,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info("book reserved",
		logger.String("user_id", userID),
		logger.String("book_id", bookID),
	)
	return res, nil
}

func (s *service) ListOwn(ctx context.Context, userID string) ([]*Reservation, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Cancel(ctx context.Context, id, userID string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if res.UserID != userID {
		return ErrNotPermitted
	}
	if res.Status != StatusActive {
		return ErrNotActive
	}

	if err := s.repo.SetStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", id),
		logger.String("user_id", userID),
	)
	return nil
}
