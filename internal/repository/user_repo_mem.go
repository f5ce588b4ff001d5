package repository

import (
	"context"
	"sync"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// MemUserRepository keeps accounts in process memory. Email lookup is
// exact-match and case-sensitive.
type MemUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func NewMemUserRepository() *MemUserRepository {
	return &MemUserRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

// Create holds the lock across the uniqueness check and the insert, so two
// concurrent registrations for one email cannot interleave.
func (r *MemUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrUserExists
	}
	stored := *user
	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored
	return nil
}

func (r *MemUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// Len reports the directory size.
func (r *MemUserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

var _ UserRepository = (*MemUserRepository)(nil)
