package penalty

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
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

// fakeRepo keeps penalties in memory and mirrors the real one-per-loan
// guard: a duplicate loan reference is a silent no-op that leaves the
// penalty ID empty.
type fakeRepo struct {
	penalties map[string]*Penalty
	nextID    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{penalties: make(map[string]*Penalty)}
}

func (r *fakeRepo) Create(_ context.Context, p *Penalty) error {
	if p.LoanID != nil {
		for _, e := range r.penalties {
			if e.LoanID != nil && *e.LoanID == *p.LoanID {
				return nil
			}
		}
	}
	r.nextID++
	p.ID = string(rune('a' + r.nextID))
	p.IssuedAt = testNow
	p.Status = StatusUnpaid
	cp := *p
	r.penalties[p.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Penalty, error) {
	p, ok := r.penalties[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]*Penalty, error) {
	var out []*Penalty
	for _, p := range r.penalties {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) SetStatus(_ context.Context, id string, status Status) error {
	p, ok := r.penalties[id]
	if !ok {
		return ErrNotFound
	}
	p.Status = status
	return nil
}

// fakeNotifier records the penalties it was asked to announce.
type fakeNotifier struct {
	issued []string
}

func (n *fakeNotifier) NotifyPenaltyIssued(_ context.Context, p *Penalty) {
	n.issued = append(n.issued, p.ID)
}

func newTestService(t *testing.T) (Service, *fakeRepo, *fakeNotifier) {
	t.Helper()
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	return NewService(repo, notifier, newTestLogger(t), 0.50), repo, notifier
}

func TestService_IssueLateReturn(t *testing.T) {
	svc, _, notifier := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.IssueLateReturn(ctx, "user-1", "loan-1", 4))

	own, err := svc.ListOwn(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, 2.0, own[0].Amount)
	assert.Equal(t, "late return (4 days overdue)", own[0].Reason)
	assert.Equal(t, StatusUnpaid, own[0].Status)
	assert.Len(t, notifier.issued, 1)
}

func TestService_IssueLateReturn_FloorsToOneDay(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.IssueLateReturn(ctx, "user-1", "loan-1", 0))

	own, err := svc.ListOwn(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, 0.50, own[0].Amount)
	assert.Equal(t, "late return (1 days overdue)", own[0].Reason)
}

func TestService_IssueLateReturn_OncePerLoan(t *testing.T) {
	svc, _, notifier := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.IssueLateReturn(ctx, "user-1", "loan-1", 2))
	// A repeated sweep over the same overdue loan must not fine or
	// notify a second time.
	require.NoError(t, svc.IssueLateReturn(ctx, "user-1", "loan-1", 3))

	own, err := svc.ListOwn(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Len(t, notifier.issued, 1)
}

func TestService_Pay(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.IssueLateReturn(ctx, "user-1", "loan-1", 1))
	own, err := svc.ListOwn(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, own, 1)

	p, err := svc.Pay(ctx, own[0].ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, p.Status)

	// A settled penalty stays settled.
	_, err = svc.Pay(ctx, own[0].ID, "user-1")
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestService_Pay_NotOwner(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.IssueLateReturn(ctx, "user-1", "loan-1", 1))
	own, err := svc.ListOwn(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, own, 1)

	_, err = svc.Pay(ctx, own[0].ID, "user-2")
	assert.ErrorIs(t, err, ErrNotPermitted)

	// The failed attempt must not settle the penalty.
	own, err = svc.ListOwn(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusUnpaid, own[0].Status)
}

func TestService_Pay_Missing(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Pay(context.Background(), "no-such-id", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
