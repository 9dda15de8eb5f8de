package book

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Title         string
	Author        string
	CoverURL      *string
	Description   *string
	Genre         *string
	Pages         int
	Status        string
	Rating        *int
	ShelfLocation *string
	ISBN          *string
}

type UpdateRequest struct {
	Title         *string
	Author        *string
	CoverURL      *string
	Description   *string
	Genre         *string
	Pages         *int
	Status        *string
	Rating        *int
	ShelfLocation *string
	ISBN          *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Book, error)
	GetByID(ctx context.Context, id string) (*Book, error)
	List(ctx context.Context, filter Filter) ([]*Book, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Book, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Book, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	author := strings.TrimSpace(req.Author)
	if author == "" {
		return nil, ErrEmptyAuthor
	}

	status := StatusAvailable
	if req.Status != "" {
		if !isValidStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		status = Status(req.Status)
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	b := &Book{
		Title:         title,
		Author:        author,
		CoverURL:      req.CoverURL,
		Description:   req.Description,
		Genre:         req.Genre,
		Pages:         req.Pages,
		Status:        status,
		Rating:        req.Rating,
		ShelfLocation: req.ShelfLocation,
		ISBN:          req.ISBN,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Book, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return nil, ErrEmptyTitle
		}
		b.Title = t
	}
	if req.Author != nil {
		a := strings.TrimSpace(*req.Author)
		if a == "" {
			return nil, ErrEmptyAuthor
		}
		b.Author = a
	}
	if req.CoverURL != nil {
		b.CoverURL = req.CoverURL
	}
	if req.Description != nil {
		b.Description = req.Description
	}
	if req.Genre != nil {
		b.Genre = req.Genre
	}
	if req.Pages != nil {
		b.Pages = *req.Pages
	}
	if req.Status != nil {
		if !isValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		b.Status = Status(*req.Status)
	}
	if req.Rating != nil {
		if err := validateRating(req.Rating); err != nil {
			return nil, err
		}
		b.Rating = req.Rating
	}
	if req.ShelfLocation != nil {
		b.ShelfLocation = req.ShelfLocation
	}
	if req.ISBN != nil {
		b.ISBN = req.ISBN
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if Status(s) == v {
			return true
		}
	}
	return false
}

func validateRating(r *int) error {
	if r != nil && (*r < 1 || *r > 5) {
		return ErrInvalidRating
	}
	return nil
}
