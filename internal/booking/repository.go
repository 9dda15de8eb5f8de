package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts the booking only if no pending or approved booking
	// on the same facility and date overlaps its interval. The check
	// runs inside the insert statement itself, so two concurrent
	// requests for the same slot cannot both pass a prior read.
	Create(ctx context.Context, booking *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListForDay returns every booking for the facility on the given
	// date, regardless of status. Callers decide which statuses block.
	ListForDay(ctx context.Context, facilityID, date string) ([]*Booking, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = `b.id, b.facility_id, f.name, b.user_id,
	COALESCE(u.display_name, u.email),
	to_char(b.booking_date, 'YYYY-MM-DD'),
	to_char(b.start_time, 'HH24:MI'), to_char(b.end_time, 'HH24:MI'),
	b.pax, b.status, b.created_at, b.updated_at`

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	// Conditional insert: the SELECT source evaluates the overlap check
	// in the same statement, and the exclusion constraint on the table
	// backstops it against a concurrent writer that slips between the
	// subquery and the insert.
	const query = `
		INSERT INTO public.bookings (facility_id, user_id, booking_date, start_time, end_time, pax, status)
		SELECT $1, $2, $3::date, $4::time, $5::time, $6, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM public.bookings
			WHERE facility_id = $1
			  AND booking_date = $3::date
			  AND status <> 'rejected'
			  AND start_time < $5::time
			  AND end_time > $4::time
		)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		b.FacilityID, b.UserID, b.Date, b.StartTime, b.EndTime, b.Pax, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapCreateError(err)
	}
	return nil
}

// mapCreateError translates insert failures into domain errors. An
// empty result means the in-statement overlap check suppressed the
// insert; an exclusion violation means a concurrent writer won the
// slot. Foreign-key violations are told apart by constraint, since the
// insert references both the facility and the user.
func mapCreateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSlotConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ExclusionViolation:
			return ErrSlotConflict
		case pgerrcode.ForeignKeyViolation:
			if pgErr.ConstraintName == "bookings_facility_id_fkey" {
				return ErrFacilityNotFound
			}
		}
	}
	return fmt.Errorf("create booking failed: %w", err)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM public.bookings b
		JOIN public.facilities f ON b.facility_id = f.id
		JOIN public.users u ON b.user_id = u.id
		WHERE b.id = $1`, bookingColumns)

	var b Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.facility_id", "f.name", "b.user_id", "COALESCE(u.display_name, u.email)",
		"to_char(b.booking_date, 'YYYY-MM-DD')",
		"to_char(b.start_time, 'HH24:MI')", "to_char(b.end_time, 'HH24:MI')",
		"b.pax", "b.status", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.facilities f ON b.facility_id = f.id").
		Join("public.users u ON b.user_id = u.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.FacilityID != "" {
		query = query.Where(squirrel.Eq{"b.facility_id": filter.FacilityID})
	}
	if filter.Date != "" {
		query = query.Where(squirrel.Expr("b.booking_date = ?::date", filter.Date))
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	query = query.OrderBy("b.booking_date DESC", "b.start_time DESC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.FacilityID, &b.FacilityName, &b.UserID, &b.UserName,
			&b.Date, &b.StartTime, &b.EndTime,
			&b.Pax, &b.Status, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForDay(ctx context.Context, facilityID, date string) ([]*Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM public.bookings b
		JOIN public.facilities f ON b.facility_id = f.id
		JOIN public.users u ON b.user_id = u.id
		WHERE b.facility_id = $1 AND b.booking_date = $2::date
		ORDER BY b.start_time`, bookingColumns)

	rows, err := r.pool.Query(ctx, query, facilityID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings for day failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooking(row pgx.Row, b *Booking) error {
	return row.Scan(
		&b.ID, &b.FacilityID, &b.FacilityName, &b.UserID, &b.UserName,
		&b.Date, &b.StartTime, &b.EndTime,
		&b.Pax, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
}
