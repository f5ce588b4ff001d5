package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AccountUseCase interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// AuthResult is the public account view plus an opaque bearer token. The
// token is not stored server-side and is never verified on later calls.
type AuthResult struct {
	Token string
	User  domain.User
}

type AccountService struct {
	users repository.UserRepository
}

func NewAccountService(users repository.UserRepository) *AccountService {
	return &AccountService{users: users}
}

func (s *AccountService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	// The repository owns the uniqueness check so it stays atomic with
	// the insert.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{Token: newToken(), User: publicView(user)}, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &AuthResult{Token: newToken(), User: publicView(user)}, nil
}

func newToken() string {
	return "token_" + uuid.NewString()
}

func publicView(u *domain.User) domain.User {
	out := *u
	out.PasswordHash = ""
	return out
}

var _ AccountUseCase = (*AccountService)(nil)
