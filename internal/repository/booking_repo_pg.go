package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGBookingRepository stores the ledger in postgres (schema in
// migrations/schema.sql). The flight snapshot goes into a JSONB column
// because the catalog itself is not a database table.
type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewPGBookingRepository(db *pgxpool.Pool) *PGBookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	snapshot, err := json.Marshal(booking.Flight)
	if err != nil {
		return fmt.Errorf("marshal flight snapshot: %w", err)
	}

	_, err = r.db.Exec(ctx, `INSERT INTO bookings (id, booking_number, status, user_id, flight, passengers, class, total_price, departure_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		booking.ID, booking.BookingNumber, booking.Status, booking.UserID, snapshot,
		booking.Passengers, booking.Class, booking.TotalPrice, booking.DepartureDate, booking.CreatedAt)
	return err
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, booking_number, status, user_id, flight, passengers, class, total_price, departure_date, created_at FROM bookings WHERE id=$1`, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1 WHERE id=$2
		RETURNING id, booking_number, status, user_id, flight, passengers, class, total_price, departure_date, created_at`, status, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, booking_number, status, user_id, flight, passengers, class, total_price, departure_date, created_at FROM bookings WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var snapshot []byte
	err := row.Scan(&b.ID, &b.BookingNumber, &b.Status, &b.UserID, &snapshot,
		&b.Passengers, &b.Class, &b.TotalPrice, &b.DepartureDate, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshot, &b.Flight); err != nil {
		return nil, fmt.Errorf("unmarshal flight snapshot: %w", err)
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
