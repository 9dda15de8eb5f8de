package facility

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	ID        string
	Name      string
	Kind      string
	Capacity  int
	OpenTime  string
	CloseTime string
}

type UpdateRequest struct {
	Name      *string
	Kind      *string
	Capacity  *int
	OpenTime  *string
	CloseTime *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context) ([]*Facility, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Facility, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Facility, error) {
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !isValidKind(req.Kind) {
		return nil, ErrInvalidKind
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !isValidHours(req.OpenTime, req.CloseTime) {
		return nil, ErrInvalidHours
	}

	f := &Facility{
		ID:        strings.TrimSpace(req.ID),
		Name:      strings.TrimSpace(req.Name),
		Kind:      Kind(req.Kind),
		Capacity:  req.Capacity,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Facility, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Kind != nil {
		if !isValidKind(*req.Kind) {
			return nil, ErrInvalidKind
		}
		f.Kind = Kind(*req.Kind)
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrInvalidCapacity
		}
		f.Capacity = *req.Capacity
	}
	if req.OpenTime != nil {
		f.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		f.CloseTime = *req.CloseTime
	}
	if !isValidHours(f.OpenTime, f.CloseTime) {
		return nil, ErrInvalidHours
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func isValidKind(kind string) bool {
	for _, k := range ValidKinds {
		if Kind(kind) == k {
			return true
		}
	}
	return false
}

// isValidHours checks both values parse as HH:MM and open < close.
// Lexicographic comparison is correct for zero-padded HH:MM strings.
func isValidHours(open, close string) bool {
	if _, err := time.Parse("15:04", open); err != nil {
		return false
	}
	if _, err := time.Parse("15:04", close); err != nil {
		return false
	}
	return open < close
}
