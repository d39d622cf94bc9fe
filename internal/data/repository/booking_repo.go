package repository

import (
	"context"
	"fmt"

	"nightsky-booking/internal/data/entity"
	"nightsky-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status entity.BookingStatus) error

	// Aggregation queries used by the calendar dispatcher. Both exclude
	// cancelled bookings.
	SumPersonsByDate(ctx context.Context, date string) (int, error)
	ListByDateAndType(ctx context.Context, date string, tourType entity.TourType) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, date, time, persons, tour_type, name, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		booking.BookingID,
		booking.Date,
		booking.Time,
		booking.Persons,
		booking.TourType,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Message,
		booking.Status,
		booking.CreatedAt,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
			zap.String("date", booking.Date),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `
		SELECT id, booking_id, date, time, persons, tour_type, name, email, phone, message, status, created_at
		FROM bookings
		WHERE booking_id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.Date,
		&booking.Time,
		&booking.Persons,
		&booking.TourType,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.Message,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID string, status entity.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE booking_id = $2
	`

	tag, err := r.db.Exec(ctx, query, status, bookingID)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *bookingRepository) SumPersonsByDate(ctx context.Context, date string) (int, error) {
	query := `
		SELECT COALESCE(SUM(persons), 0)
		FROM bookings
		WHERE date = $1 AND status != $2
	`

	var total int
	err := r.db.QueryRow(ctx, query, date, entity.BookingStatusCancelled).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum persons by date",
			zap.Error(err),
			zap.String("date", date),
		)
		return 0, fmt.Errorf("sum persons for %s: %w", date, err)
	}

	return total, nil
}

func (r *bookingRepository) ListByDateAndType(ctx context.Context, date string, tourType entity.TourType) ([]*entity.Booking, error) {
	query := `
		SELECT id, booking_id, date, time, persons, tour_type, name, email, phone, message, status, created_at
		FROM bookings
		WHERE date = $1 AND tour_type = $2 AND status != $3
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, date, tourType, entity.BookingStatusCancelled)
	if err != nil {
		r.log.Error("Failed to list bookings by date and type",
			zap.Error(err),
			zap.String("date", date),
			zap.String("tour_type", string(tourType)),
		)
		return nil, fmt.Errorf("list bookings for %s/%s: %w", date, tourType, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.BookingID,
			&booking.Date,
			&booking.Time,
			&booking.Persons,
			&booking.TourType,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.Message,
			&booking.Status,
			&booking.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
