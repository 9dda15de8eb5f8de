package penalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts the penalty. When it references a loan that
	// already has one, the insert is a no-op: one fine per loan.
	Create(ctx context.Context, p *Penalty) error

	GetByID(ctx context.Context, id string) (*Penalty, error)
	ListByUser(ctx context.Context, userID string) ([]*Penalty, error)
	SetStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Penalty) error {
	const query = `
		INSERT INTO public.penalties (user_id, loan_id, amount, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (loan_id) DO NOTHING
		RETURNING id, issued_at`

	err := r.pool.QueryRow(ctx, query,
		p.UserID, p.LoanID, p.Amount, p.Reason, StatusUnpaid,
	).Scan(&p.ID, &p.IssuedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Duplicate for the loan; nothing inserted.
			return nil
		}
		return fmt.Errorf("create penalty failed: %w", err)
	}
	p.Status = StatusUnpaid
	return nil
}

const penaltyColumns = `id, user_id, loan_id, amount, reason, issued_at, status`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Penalty, error) {
	query := fmt.Sprintf(`SELECT %s FROM public.penalties WHERE id = $1`, penaltyColumns)

	var p Penalty
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.LoanID, &p.Amount, &p.Reason, &p.IssuedAt, &p.Status,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get penalty failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Penalty, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM public.penalties WHERE user_id = $1 ORDER BY issued_at DESC`,
		penaltyColumns,
	)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list penalties failed: %w", err)
	}
	defer rows.Close()

	var penalties []*Penalty
	for rows.Next() {
		var p Penalty
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.LoanID, &p.Amount, &p.Reason, &p.IssuedAt, &p.Status,
		); err != nil {
			return nil, fmt.Errorf("scan penalty failed: %w", err)
		}
		penalties = append(penalties, &p)
	}
	return penalties, nil
}

func (r *pgxRepository) SetStatus(ctx context.Context, id string, status Status) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE public.penalties SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update penalty status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
