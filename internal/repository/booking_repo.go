package repository

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// BookingRepository is the booking ledger: append-only except for the
// one-way status transition to CANCELLED.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}
