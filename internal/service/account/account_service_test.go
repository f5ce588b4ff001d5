package account

import (
	"context"
	"strings"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *AccountService {
	return NewAccountService(repository.NewMemUserRepository())
}

func TestAccountService_Register(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	result, err := service.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Token, "token_"))
	assert.NotEmpty(t, result.User.ID)
	assert.Equal(t, "Ada", result.User.Name)
	assert.Equal(t, "ada@example.com", result.User.Email)
	// The public view never carries credentials.
	assert.Empty(t, result.User.PasswordHash)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	_, err = service.Register(ctx, "Other", "ada@example.com", "different")
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.EqualError(t, err, "User already exists")
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	for _, args := range [][3]string{
		{"", "a@example.com", "pw"},
		{"Ada", "", "pw"},
		{"Ada", "a@example.com", ""},
	} {
		_, err := service.Register(ctx, args[0], args[1], args[2])
		assert.Error(t, err)
	}
}

func TestAccountService_Login(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	registered, err := service.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	result, err := service.Login(ctx, "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)
	assert.Empty(t, result.User.PasswordHash)

	// Each login mints a fresh token.
	assert.NotEqual(t, registered.Token, result.Token)
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ada@example.com", "nope"},
		{"unknown email", "bob@example.com", "hunter2"},
		{"email case differs", "ADA@example.com", "hunter2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Login(ctx, tc.email, tc.password)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.EqualError(t, err, "Invalid credentials")
		})
	}
}
