package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context) ([]*Facility, error)
	Update(ctx context.Context, f *Facility) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Facility) error {
	const query = `
		INSERT INTO public.facilities (id, name, kind, capacity, open_time, close_time)
		VALUES ($1, $2, $3, $4, $5::time, $6::time)
		RETURNING created_at
	`
	err := r.pool.QueryRow(ctx, query,
		f.ID, f.Name, f.Kind, f.Capacity, f.OpenTime, f.CloseTime,
	).Scan(&f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrIDTaken
		}
		return fmt.Errorf("create facility failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Facility, error) {
	const query = `
		SELECT id, name, kind, capacity,
		       to_char(open_time, 'HH24:MI'), to_char(close_time, 'HH24:MI'),
		       created_at
		FROM public.facilities
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var f Facility
	if err := row.Scan(&f.ID, &f.Name, &f.Kind, &f.Capacity, &f.OpenTime, &f.CloseTime, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Facility, error) {
	// The catalog is a handful of rows; no pagination needed.
	const query = `
		SELECT id, name, kind, capacity,
		       to_char(open_time, 'HH24:MI'), to_char(close_time, 'HH24:MI'),
		       created_at
		FROM public.facilities
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities failed: %w", err)
	}
	defer rows.Close()

	var result []*Facility
	for rows.Next() {
		var f Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Kind, &f.Capacity, &f.OpenTime, &f.CloseTime, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan facility failed: %w", err)
		}
		result = append(result, &f)
	}

	return result, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Facility) error {
	const query = `
		UPDATE public.facilities
		SET name = $1, kind = $2, capacity = $3,
		    open_time = $4::time, close_time = $5::time
		WHERE id = $6
	`
	ct, err := r.pool.Exec(ctx, query, f.Name, f.Kind, f.Capacity, f.OpenTime, f.CloseTime, f.ID)
	if err != nil {
		return fmt.Errorf("update facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.facilities WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
