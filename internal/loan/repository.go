package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paksr/MiniProject-Shoseki/internal/book"
)

type Repository interface {
	// Borrow checks out the given books for the user in one
	// transaction. Every book must currently be Available; otherwise
	// nothing is borrowed.
	Borrow(ctx context.Context, userID string, bookIDs []string, borrowedAt, dueDate time.Time) ([]*Loan, error)

	// Return closes the user's open loan for the book, flips the book
	// back to Available and fulfills the oldest active reservation, all
	// in one transaction. The fulfilled reservation's user ID is
	// returned when there was one.
	Return(ctx context.Context, userID, bookID string, returnedAt time.Time) (*Loan, string, error)

	ListByUser(ctx context.Context, userID string) ([]*Loan, error)

	// MarkOverdue flips every active loan past its due date to overdue
	// and returns the affected loans.
	MarkOverdue(ctx context.Context, now time.Time) ([]*Loan, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Borrow(ctx context.Context, userID string, bookIDs []string, borrowedAt, dueDate time.Time) ([]*Loan, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin borrow tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	loans := make([]*Loan, 0, len(bookIDs))
	for _, bookID := range bookIDs {
		// Lock the row so a concurrent borrow of the same copy waits
		// and then sees the flipped status.
		var title, author string
		var status book.Status
		err := tx.QueryRow(ctx,
			`SELECT title, author, status FROM public.books WHERE id = $1 FOR UPDATE`,
			bookID,
		).Scan(&title, &author, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrBookNotFound
			}
			return nil, fmt.Errorf("lock book failed: %w", err)
		}
		if !status.Borrowable() {
			return nil, ErrBookNotBorrowable
		}

		if _, err := tx.Exec(ctx,
			`UPDATE public.books SET status = $2 WHERE id = $1`,
			bookID, book.StatusOnLoan,
		); err != nil {
			return nil, fmt.Errorf("flip book status failed: %w", err)
		}

		l := &Loan{
			UserID:     userID,
			BookID:     bookID,
			BookTitle:  title,
			BookAuthor: author,
			BorrowedAt: borrowedAt,
			DueDate:    dueDate,
			Status:     StatusActive,
		}
		if err := tx.QueryRow(ctx,
			`INSERT INTO public.loans (user_id, book_id, borrowed_at, due_date, status)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			userID, bookID, borrowedAt, dueDate, StatusActive,
		).Scan(&l.ID); err != nil {
			return nil, fmt.Errorf("insert loan failed: %w", err)
		}
		loans = append(loans, l)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit borrow tx failed: %w", err)
	}
	return loans, nil
}

func (r *pgxRepository) Return(ctx context.Context, userID, bookID string, returnedAt time.Time) (*Loan, string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("begin return tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var l Loan
	err = tx.QueryRow(ctx,
		`UPDATE public.loans
		 SET status = $4, returned_at = $3
		 WHERE id = (
			SELECT id FROM public.loans
			WHERE user_id = $1 AND book_id = $2 AND status IN ('active', 'overdue')
			ORDER BY borrowed_at
			LIMIT 1
		 )
		 RETURNING id, user_id, book_id, borrowed_at, due_date, returned_at, status`,
		userID, bookID, returnedAt, StatusReturned,
	).Scan(&l.ID, &l.UserID, &l.BookID, &l.BorrowedAt, &l.DueDate, &l.ReturnedAt, &l.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrNoActiveLoan
		}
		return nil, "", fmt.Errorf("close loan failed: %w", err)
	}

	if err := tx.QueryRow(ctx,
		`SELECT title, author FROM public.books WHERE id = $1`, bookID,
	).Scan(&l.BookTitle, &l.BookAuthor); err != nil {
		return nil, "", fmt.Errorf("get book title failed: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE public.books SET status = $2 WHERE id = $1`,
		bookID, book.StatusAvailable,
	); err != nil {
		return nil, "", fmt.Errorf("flip book status failed: %w", err)
	}

	// Oldest active reservation for this copy wins.
	var reservedBy string
	err = tx.QueryRow(ctx,
		`UPDATE public.reservations
		 SET status = 'fulfilled'
		 WHERE id = (
			SELECT id FROM public.reservations
			WHERE book_id = $1 AND status = 'active'
			ORDER BY reserved_at
			LIMIT 1
			FOR UPDATE
		 )
		 RETURNING user_id`,
		bookID,
	).Scan(&reservedBy)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", fmt.Errorf("fulfill reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, "", fmt.Errorf("commit return tx failed: %w", err)
	}
	return &l, reservedBy, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Loan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT l.id, l.user_id, l.book_id, b.title, b.author,
		        l.borrowed_at, l.due_date, l.returned_at, l.status
		 FROM public.loans l
		 JOIN public.books b ON l.book_id = b.id
		 WHERE l.user_id = $1
		 ORDER BY l.borrowed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list loans failed: %w", err)
	}
	defer rows.Close()

	return scanLoans(rows)
}

func (r *pgxRepository) MarkOverdue(ctx context.Context, now time.Time) ([]*Loan, error) {
	rows, err := r.pool.Query(ctx,
		`WITH flipped AS (
			UPDATE public.loans
			SET status = $2
			WHERE status = $1 AND due_date < $3
			RETURNING id, user_id, book_id, borrowed_at, due_date, returned_at, status
		 )
		 SELECT f.id, f.user_id, f.book_id, b.title, b.author,
		        f.borrowed_at, f.due_date, f.returned_at, f.status
		 FROM flipped f
		 JOIN public.books b ON f.book_id = b.id`,
		StatusActive, StatusOverdue, now,
	)
	if err != nil {
		return nil, fmt.Errorf("mark overdue loans failed: %w", err)
	}
	defer rows.Close()

	return scanLoans(rows)
}

func scanLoans(rows pgx.Rows) ([]*Loan, error) {
	var loans []*Loan
	for rows.Next() {
		var l Loan
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.BookID, &l.BookTitle, &l.BookAuthor,
			&l.BorrowedAt, &l.DueDate, &l.ReturnedAt, &l.Status,
		); err != nil {
			return nil, fmt.Errorf("scan loan failed: %w", err)
		}
		loans = append(loans, &l)
	}
	return loans, nil
}
