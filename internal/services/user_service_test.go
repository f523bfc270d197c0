package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	first, err := svc.Register("a@x.com", "Ann", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "a@x.com", first.Email)
	assert.Nil(t, first.Age)
	assert.Nil(t, first.TrainerID)

	second, err := svc.Register("b@x.com", "Ben", "pw2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Register("a@x.com", "Ann", "pw1")
	require.NoError(t, err)

	// Other fields differing must not matter.
	_, err = svc.Register("a@x.com", "Somebody Else", "other-password")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Register("a@x.com", "Ann", "pw1")
	require.NoError(t, err)

	stored, err := svc.GetUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw2")))
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Authenticate("nobody@x.com", "pw1")
	assert.ErrorIs(t, err, ErrUnknownEmail)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Register("a@x.com", "Ann", "pw1")
	require.NoError(t, err)

	_, err = svc.Authenticate("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthenticateSuccess(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	registered, err := svc.Register("a@x.com", "Ann", "pw1")
	require.NoError(t, err)

	user, err := svc.Authenticate("a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestGetUserByIDUnknown(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.GetUserByID(42)
	assert.ErrorIs(t, err, ErrUnknownUser)
}
