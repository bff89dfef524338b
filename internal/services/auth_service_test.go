package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/blog/internal/repository"
	"github.com/yukikurage/blog/internal/testutil"
	"github.com/yukikurage/blog/internal/utils"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewAuthService(repository.NewUserRepository(db))
}

func TestAuthService_Register(t *testing.T) {
	svc := newTestAuthService(t)

	user, err := svc.Register(RegisterInput{Username: "tim", Email: "tim@example.com", Password: "cat"})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "tim", user.Username)
	assert.NotEqual(t, "cat", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "cat"))
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "tim", Email: "tim@example.com", Password: "cat"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "tim", Email: "other@example.com", Password: "cat"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "tim", Email: "tim@example.com", Password: "cat"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "other", Email: "tim@example.com", Password: "cat"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)

	registered, err := svc.Register(RegisterInput{Username: "tim", Email: "tim@example.com", Password: "cat"})
	require.NoError(t, err)

	user, err := svc.Login(LoginInput{Username: "tim", Password: "cat"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	user, err = svc.Login(LoginInput{Username: "  tim ", Password: "cat"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "tim", Email: "tim@example.com", Password: "cat"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(LoginInput{Username: "tim", Password: "dog"})
	_, unknownUser := svc.Login(LoginInput{Username: "nobody", Password: "cat"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.GetUser(42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetUserByUsername("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_UpdateUsername(t *testing.T) {
	svc := newTestAuthService(t)

	tim, err := svc.Register(RegisterInput{Username: "tim", Email: "tim@example.com", Password: "cat"})
	require.NoError(t, err)
	_, err = svc.Register(RegisterInput{Username: "ann", Email: "ann@example.com", Password: "cat"})
	require.NoError(t, err)

	t.Run("unchanged username is accepted", func(t *testing.T) {
		user, err := svc.UpdateUsername(tim.ID, "tim")
		require.NoError(t, err)
		assert.Equal(t, "tim", user.Username)
	})

	t.Run("taken username is rejected", func(t *testing.T) {
		_, err := svc.UpdateUsername(tim.ID, "ann")
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("free username is applied", func(t *testing.T) {
		user, err := svc.UpdateUsername(tim.ID, "New name")
		require.NoError(t, err)
		assert.Equal(t, "New name", user.Username)

		reloaded, err := svc.GetUser(tim.ID)
		require.NoError(t, err)
		assert.Equal(t, "New name", reloaded.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateUsername(999, "whoever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
