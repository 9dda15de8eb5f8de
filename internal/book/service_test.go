package book

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

// fakeRepo keeps books in memory.
type fakeRepo struct {
	books  map[string]*Book
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: make(map[string]*Book)}
}

func (r *fakeRepo) Create(_ context.Context, b *Book) error {
	r.nextID++
	b.ID = string(rune('a' + r.nextID))
	b.AddedAt = testNow
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, filter Filter) ([]*Book, int, error) {
	var out []*Book
	for _, b := range r.books {
		if filter.Genre != "" && (b.Genre == nil || *b.Genre != filter.Genre) {
			continue
		}
		if filter.Keyword != "" {
			kw := strings.ToLower(filter.Keyword)
			if !strings.Contains(strings.ToLower(b.Title), kw) &&
				!strings.Contains(strings.ToLower(b.Author), kw) {
				continue
			}
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, b *Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return ErrNotFound
	}
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	b, ok := r.books[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  CreateRequest{Title: "Kokoro", Author: "Natsume Soseki"},
		},
		{
			name:    "empty title",
			req:     CreateRequest{Title: "", Author: "Natsume Soseki"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			req:     CreateRequest{Title: "   ", Author: "Natsume Soseki"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty author",
			req:     CreateRequest{Title: "Kokoro", Author: " "},
			wantErr: ErrEmptyAuthor,
		},
		{
			name:    "unknown status",
			req:     CreateRequest{Title: "Kokoro", Author: "Natsume Soseki", Status: "Lost Forever"},
			wantErr: ErrInvalidStatus,
		},
		{
			name: "explicit status",
			req:  CreateRequest{Title: "Kokoro", Author: "Natsume Soseki", Status: string(StatusLibraryUseOnly)},
		},
		{
			name:    "rating below range",
			req:     CreateRequest{Title: "Kokoro", Author: "Natsume Soseki", Rating: ptr(0)},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "rating above range",
			req:     CreateRequest{Title: "Kokoro", Author: "Natsume Soseki", Rating: ptr(6)},
			wantErr: ErrInvalidRating,
		},
		{
			name: "rating at bounds",
			req:  CreateRequest{Title: "Kokoro", Author: "Natsume Soseki", Rating: ptr(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo())
			b, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, b.ID)
		})
	}
}

func TestService_Create_Defaults(t *testing.T) {
	svc := NewService(newFakeRepo())

	b, err := svc.Create(context.Background(), CreateRequest{
		Title:  "  Kokoro  ",
		Author: " Natsume Soseki ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kokoro", b.Title)
	assert.Equal(t, "Natsume Soseki", b.Author)
	assert.Equal(t, StatusAvailable, b.Status)
}

func TestService_Update(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{Title: "Kokoro", Author: "Natsume Soseki", Pages: 248})
	require.NoError(t, err)

	// Only the fields that were sent change.
	updated, err := svc.Update(ctx, b.ID, UpdateRequest{
		Genre:  ptr("Fiction"),
		Rating: ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "Kokoro", updated.Title)
	assert.Equal(t, 248, updated.Pages)
	assert.Equal(t, "Fiction", *updated.Genre)
	assert.Equal(t, 4, *updated.Rating)
}

func TestService_Update_Validation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{Title: "Kokoro", Author: "Natsume Soseki"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, b.ID, UpdateRequest{Title: ptr("  ")})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.Update(ctx, b.ID, UpdateRequest{Author: ptr("")})
	assert.ErrorIs(t, err, ErrEmptyAuthor)

	_, err = svc.Update(ctx, b.ID, UpdateRequest{Status: ptr("Vaporized")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Update(ctx, b.ID, UpdateRequest{Rating: ptr(9)})
	assert.ErrorIs(t, err, ErrInvalidRating)

	// None of the rejected updates should have touched the record.
	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kokoro", got.Title)
	assert.Nil(t, got.Rating)
}

func TestService_Update_Missing(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Update(context.Background(), "no-such-id", UpdateRequest{Title: ptr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{Title: "Kokoro", Author: "Natsume Soseki"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, b.ID))

	_, err = svc.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
