package services

import (
	"sync"
	"testing"

	"myblog-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[uint]models.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]models.User)}
}

func (r *stubUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *stubUserRepo) GetByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	registered, err := svc.Register(models.RegisterRequest{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.NotEqual(t, "secret123", registered.User.Password, "password is stored hashed")

	logged, err := svc.Login(models.LoginRequest{Email: "writer@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.Token)
	assert.Equal(t, "writer", logged.User.Username)
}

func TestLoginErrorTaxonomy(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	_, err := svc.Register(models.RegisterRequest{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		code     models.AuthErrorCode
	}{
		{"malformed address", "not-an-email", "whatever", models.AuthMalformedAddress},
		{"unknown user", "ghost@example.com", "whatever", models.AuthUnknownUser},
		{"wrong password", "writer@example.com", "wrong", models.AuthInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(models.LoginRequest{Email: tt.email, Password: tt.password})
			var authErr *models.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.code, authErr.Code)
		})
	}
}

func TestRegisterRejectsMalformedAddress(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	_, err := svc.Register(models.RegisterRequest{Username: "x", Email: "bad", Password: "secret123"})
	var authErr *models.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, models.AuthMalformedAddress, authErr.Code)
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	_, err := svc.Register(models.RegisterRequest{
		Username: "intruder",
		Email:    "definitely-not-admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.False(t, svc.IsAdmin("definitely-not-admin@example.com"))
}
