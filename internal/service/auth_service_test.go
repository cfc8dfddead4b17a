package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/storage"
	"go-laundry-console/internal/store"
)

func newAuthFixture(t *testing.T) (AuthService, repository.UserRepository) {
	t.Helper()
	st := store.New(storage.NewMemory())
	userRepo := repository.NewUserRepo(st)

	admin := &model.User{Name: "Administrator", Username: "admin", Role: model.RoleAdmin}
	require.NoError(t, admin.SetPassword("admin123"))
	require.NoError(t, userRepo.Create(admin))

	return NewAuthService(userRepo), userRepo
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
	assert.Equal(t, model.Features, resp.Features)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login("ghost", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenAfterLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	validated, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", validated.User.Username)
	assert.Equal(t, model.Features, validated.Features)
}

func TestSecondLoginInvalidatesEarlierToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	first, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	second, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(first.Token)
	assert.Error(t, err)

	_, err = svc.ValidateToken(second.Token)
	assert.NoError(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	require.NoError(t, svc.ResetPassword("admin", "admin123", "newpass456"))

	_, err := svc.Login("admin", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("admin", "newpass456")
	assert.NoError(t, err)
}

func TestResetPasswordWrongCurrent(t *testing.T) {
	svc, _ := newAuthFixture(t)

	err := svc.ResetPassword("admin", "nope", "newpass456")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestResetPasswordUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	err := svc.ResetPassword("ghost", "admin123", "newpass456")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
