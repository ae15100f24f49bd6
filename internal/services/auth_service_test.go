package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/home-inventory-api/internal/repository"
)

func TestAuthService_SignupAndLogin(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := service.Signup(ctx, SignupInput{Email: " Alice@Example.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Name)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = service.Signup(ctx, SignupInput{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	loggedIn, err := service.Login(ctx, LoginInput{Email: "ALICE@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	_, err = service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(ctx, LoginInput{Email: "bob@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	found, err := service.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = service.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_SignupValidation(t *testing.T) {
	service := NewAuthService(repository.NewUserRepository(newTestDB(t)))
	ctx := context.Background()

	_, err := service.Signup(ctx, SignupInput{Email: "not-an-email", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.Signup(ctx, SignupInput{Email: "bob@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
