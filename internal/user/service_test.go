package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/clock"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

type fakeRepo struct {
	byEmail map[string]*User
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*User)}
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	r.nextID++
	u.ID = string(rune('a' + r.nextID))
	u.CreatedAt = testNow
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeRepo) Update(_ context.Context, u *User) error {
	stored, ok := r.byEmail[u.Email]
	if !ok {
		return ErrNotFound
	}
	*stored = *u
	return nil
}

func (r *fakeRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.LastLoginAt = &t
			return nil
		}
	}
	return ErrNotFound
}

// plainHasher keeps passwords readable in test assertions.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "h:"+plain {
		return ErrInvalidCredentials
	}
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, plainHasher{}, clock.NewFixed(testNow)), repo
}

func TestService_Register(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "  Alice@Example.COM ", "password8", " Alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	require.NotNil(t, u.DisplayName)
	assert.Equal(t, "Alice", *u.DisplayName)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin)

	_, err = svc.Register(ctx, "alice@example.com", "password8", "")
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)

	_, err = svc.Register(ctx, "   ", "password8", "")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Register(ctx, "bob@example.com", "short", "")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestService_Login(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "password8", "Alice")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "Alice@Example.com", "password8")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	require.NotNil(t, repo.byEmail["alice@example.com"].LastLoginAt)
	assert.Equal(t, testNow, *repo.byEmail["alice@example.com"].LastLoginAt)

	_, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password8")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	repo.byEmail["alice@example.com"].IsActive = false
	_, err = svc.Login(ctx, "alice@example.com", "password8")
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestService_UpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice@example.com", "password8", "Alice")
	require.NoError(t, err)

	name := "  Alice L.  "
	avatar := "/v1/files/abc"
	got, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		DisplayName: &name,
		AvatarURL:   &avatar,
	})
	require.NoError(t, err)
	require.NotNil(t, got.DisplayName)
	assert.Equal(t, "Alice L.", *got.DisplayName)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, avatar, *got.AvatarURL)

	// Blank display name clears it.
	blank := "   "
	got, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{DisplayName: &blank})
	require.NoError(t, err)
	assert.Nil(t, got.DisplayName)
}
