package facility

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	facilities map[string]*Facility
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{facilities: make(map[string]*Facility)}
}

func (r *fakeRepo) Create(_ context.Context, f *Facility) error {
	if _, ok := r.facilities[f.ID]; ok {
		return ErrIDTaken
	}
	cp := *f
	r.facilities[f.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Facility, error) {
	f, ok := r.facilities[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*Facility, error) {
	var out []*Facility
	for _, f := range r.facilities {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, f *Facility) error {
	if _, ok := r.facilities[f.ID]; !ok {
		return ErrNotFound
	}
	cp := *f
	r.facilities[f.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.facilities[id]; !ok {
		return ErrNotFound
	}
	delete(r.facilities, id)
	return nil
}

func validCreate() CreateRequest {
	return CreateRequest{
		ID:        "meeting-a",
		Name:      "Meeting Room A",
		Kind:      "room",
		Capacity:  6,
		OpenTime:  "09:00",
		CloseTime: "22:00",
	}
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"valid", func(r *CreateRequest) {}, nil},
		{"empty id", func(r *CreateRequest) { r.ID = "  " }, ErrEmptyName},
		{"empty name", func(r *CreateRequest) { r.Name = "" }, ErrEmptyName},
		{"bad kind", func(r *CreateRequest) { r.Kind = "garage" }, ErrInvalidKind},
		{"zero capacity", func(r *CreateRequest) { r.Capacity = 0 }, ErrInvalidCapacity},
		{"open after close", func(r *CreateRequest) { r.OpenTime = "22:00"; r.CloseTime = "09:00" }, ErrInvalidHours},
		{"open equals close", func(r *CreateRequest) { r.OpenTime = "09:00"; r.CloseTime = "09:00" }, ErrInvalidHours},
		{"garbage time", func(r *CreateRequest) { r.OpenTime = "9am" }, ErrInvalidHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo())
			req := validCreate()
			tt.mutate(&req)

			f, err := svc.Create(context.Background(), req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "meeting-a", f.ID)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_Create_DuplicateID(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreate())
	assert.ErrorIs(t, err, ErrIDTaken)
}

func TestService_Update_HoursStayConsistent(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	// Moving open past the existing close must fail even though the
	// new value parses fine on its own.
	open := "23:00"
	_, err = svc.Update(ctx, "meeting-a", UpdateRequest{OpenTime: &open})
	assert.ErrorIs(t, err, ErrInvalidHours)

	open = "10:00"
	f, err := svc.Update(ctx, "meeting-a", UpdateRequest{OpenTime: &open})
	require.NoError(t, err)
	assert.Equal(t, "10:00", f.OpenTime)
	assert.Equal(t, "22:00", f.CloseTime)
}
