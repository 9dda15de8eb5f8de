package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id string) (*Book, error)
	List(ctx context.Context, filter Filter) ([]*Book, int, error)
	Update(ctx context.Context, b *Book) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookColumns = `id, title, author, cover_url, description, genre,
	pages, status, rating, shelf_location, isbn, added_at`

func (r *pgxRepository) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO public.books
			(title, author, cover_url, description, genre, pages, status, rating, shelf_location, isbn)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, added_at`

	err := r.pool.QueryRow(ctx, query,
		b.Title, b.Author, b.CoverURL, b.Description, b.Genre,
		b.Pages, b.Status, b.Rating, b.ShelfLocation, b.ISBN,
	).Scan(&b.ID, &b.AddedAt)
	if err != nil {
		return fmt.Errorf("create book failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM public.books WHERE id = $1`, bookColumns)

	var b Book
	if err := scanBook(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Book, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "title", "author", "cover_url", "description", "genre",
		"pages", "status", "rating", "shelf_location", "isbn", "added_at",
		"count(*) OVER() as total_count",
	).From("public.books")

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"author": pattern},
		})
	}
	if filter.Genre != "" {
		query = query.Where(squirrel.Eq{"genre": filter.Genre})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	query = query.OrderBy("title ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list books query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books failed: %w", err)
	}
	defer rows.Close()

	var books []*Book
	var total int

	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.CoverURL, &b.Description, &b.Genre,
			&b.Pages, &b.Status, &b.Rating, &b.ShelfLocation, &b.ISBN, &b.AddedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan book failed: %w", err)
		}
		books = append(books, &b)
	}

	return books, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Book) error {
	const query = `
		UPDATE public.books
		SET title = $2, author = $3, cover_url = $4, description = $5, genre = $6,
		    pages = $7, status = $8, rating = $9, shelf_location = $10, isbn = $11
		WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query,
		b.ID, b.Title, b.Author, b.CoverURL, b.Description, b.Genre,
		b.Pages, b.Status, b.Rating, b.ShelfLocation, b.ISBN,
	)
	if err != nil {
		return fmt.Errorf("update book failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	const query = `UPDATE public.books SET status = $2 WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update book status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBook(row pgx.Row, b *Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Author, &b.CoverURL, &b.Description, &b.Genre,
		&b.Pages, &b.Status, &b.Rating, &b.ShelfLocation, &b.ISBN, &b.AddedAt,
	)
}
