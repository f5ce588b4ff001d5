package repository

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// UserRepository is the account directory. Create must be atomic with the
// unique-email check: two concurrent registrations for the same email must
// not both succeed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
