package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts an active reservation unless the user already has
	// one for the same book.
	Create(ctx context.Context, res *Reservation) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*Reservation, error)
	SetStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	const query = `
		INSERT INTO public.reservations (user_id, book_id, status)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (
			SELECT 1 FROM public.reservations
			WHERE user_id = $1 AND book_id = $2 AND status = 'active'
		)
		RETURNING id, reserved_at`

	err := r.pool.QueryRow(ctx, query, res.UserID, res.BookID, StatusActive).
		Scan(&res.ID, &res.ReservedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyReserved
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}
	res.Status = StatusActive
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	const query = `
		SELECT r.id, r.user_id, r.book_id, b.title, b.author, r.reserved_at, r.status
		FROM public.reservations r
		JOIN public.books b ON r.book_id = b.id
		WHERE r.id = $1`

	var res Reservation
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.UserID, &res.BookID, &res.BookTitle, &res.BookAuthor,
		&res.ReservedAt, &res.Status,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Reservation, error) {
	const query = `
		SELECT r.id, r.user_id, r.book_id, b.title, b.author, r.reserved_at, r.status
		FROM public.reservations r
		JOIN public.books b ON r.book_id = b.id
		WHERE r.user_id = $1
		ORDER BY r.reserved_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.BookID, &res.BookTitle, &res.BookAuthor,
			&res.ReservedAt, &res.Status,
		); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &res)
	}
	return reservations, nil
}

func (r *pgxRepository) SetStatus(ctx context.Context, id string, status Status) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE public.reservations SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
