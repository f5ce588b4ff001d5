package repository

import (
	"context"
	"sync"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// MemBookingRepository keeps the ledger in process memory. Insertion order
// is preserved so per-user listings come back in booking order.
type MemBookingRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[string]*domain.Booking
}

func NewMemBookingRepository() *MemBookingRepository {
	return &MemBookingRepository{byID: make(map[string]*domain.Booking)}
}

func (r *MemBookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *booking
	r.bookings = append(r.bookings, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *MemBookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (r *MemBookingRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = status
	out := *b
	return &out, nil
}

func (r *MemBookingRepository) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, nil
}

// Len reports the ledger size, used by tests to assert failed bookings
// leave the ledger untouched.
func (r *MemBookingRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}

var _ BookingRepository = (*MemBookingRepository)(nil)
