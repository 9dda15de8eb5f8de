package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/paksr/MiniProject-Shoseki/internal/book"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fakeRepo keeps reservations in memory and mirrors the real Create
// guard: one active reservation per user and book.
type fakeRepo struct {
	reservations map[string]*Reservation
	nextID       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reservations: make(map[string]*Reservation)}
}

func (r *fakeRepo) Create(_ context.Context, res *Reservation) error {
	for _, e := range r.reservations {
		if e.UserID == res.UserID && e.BookID == res.BookID && e.Status == StatusActive {
			return ErrAlreadyReserved
		}
	}
	r.nextID++
	res.ID = string(rune('a' + r.nextID))
	res.ReservedAt = testNow
	res.Status = StatusActive
	cp := *res
	r.reservations[res.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]*Reservation, error) {
	var out []*Reservation
	for _, res := range r.reservations {
		if res.UserID == userID {
			cp := *res
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) SetStatus(_ context.Context, id string, status Status) error {
	res, ok := r.reservations[id]
	if !ok {
		return ErrNotFound
	}
	res.Status = status
	return nil
}

// fakeBookService serves a fixed set of books by ID.
type fakeBookService struct {
	books map[string]*book.Book
}

func (s *fakeBookService) Create(_ context.Context, _ book.CreateRequest) (*book.Book, error) {
	panic("not used")
}

func (s *fakeBookService) GetByID(_ context.Context, id string) (*book.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return nil, book.ErrNotFound
	}
	return b, nil
}

func (s *fakeBookService) List(_ context.Context, _ book.Filter) ([]*book.Book, int, error) {
	panic("not used")
}

func (s *fakeBookService) Update(_ context.Context, _ string, _ book.UpdateRequest) (*book.Book, error) {
	panic("not used")
}

func (s *fakeBookService) Delete(_ context.Context, _ string) error {
	panic("not used")
}

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	books := &fakeBookService{books: map[string]*book.Book{
		"book-out":   {ID: "book-out", Title: "Kokoro", Author: "Natsume Soseki", Status: book.StatusOnLoan},
		"book-avail": {ID: "book-avail", Title: "Botchan", Author: "Natsume Soseki", Status: book.StatusAvailable},
		"book-ref":   {ID: "book-ref", Title: "Atlas", Author: "Various", Status: book.StatusLibraryUseOnly},
	}}
	return NewService(repo, books, newTestLogger(t)), repo
}

func TestService_Reserve(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Reserve(context.Background(), "user-1", "book-out")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, res.Status)
	assert.Equal(t, "Kokoro", res.BookTitle)
	assert.Equal(t, "Natsume Soseki", res.BookAuthor)
}

func TestService_Reserve_AvailableBook(t *testing.T) {
	svc, _ := newTestService(t)

	// A copy on the shelf cannot be queued for; it should be borrowed.
	_, err := svc.Reserve(context.Background(), "user-1", "book-avail")
	assert.ErrorIs(t, err, ErrBookAvailable)
}

func TestService_Reserve_ReferenceOnlyBook(t *testing.T) {
	svc, _ := newTestService(t)

	// Library-use-only copies never leave the shelf, but they are not
	// borrowable either, so queueing for one is allowed.
	_, err := svc.Reserve(context.Background(), "user-1", "book-ref")
	assert.NoError(t, err)
}

func TestService_Reserve_UnknownBook(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Reserve(context.Background(), "user-1", "no-such-book")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestService_Reserve_Duplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "user-1", "book-out")
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, "user-1", "book-out")
	assert.ErrorIs(t, err, ErrAlreadyReserved)

	// A different member may still queue for the same book.
	_, err = svc.Reserve(ctx, "user-2", "book-out")
	assert.NoError(t, err)
}

func TestService_Cancel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Reserve(ctx, "user-1", "book-out")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, res.ID, "user-1"))

	own, err := svc.ListOwn(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, StatusCancelled, own[0].Status)

	// The queue slot is freed, so the same member may reserve again.
	_, err = svc.Reserve(ctx, "user-1", "book-out")
	assert.NoError(t, err)
}

func TestService_Cancel_NotOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Reserve(ctx, "user-1", "book-out")
	require.NoError(t, err)

	err = svc.Cancel(ctx, res.ID, "user-2")
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestService_Cancel_NotActive(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	res, err := svc.Reserve(ctx, "user-1", "book-out")
	require.NoError(t, err)
	require.NoError(t, repo.SetStatus(ctx, res.ID, StatusFulfilled))

	err = svc.Cancel(ctx, res.ID, "user-1")
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestService_Cancel_Missing(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Cancel(context.Background(), "no-such-id", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
