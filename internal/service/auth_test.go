package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/repository"
)

type fakeUserRepository struct {
	users  []domain.User
	nextID uint
}

func (f *fakeUserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return domain.User{}, repository.ErrUserEmailExists
		}
	}

	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func TestAuthService_Signup(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "ana@example.com",
		Password: "parola123",
		Name:     "Ana",
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "parola123", created.Password, "the stored password must be hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("parola123")))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "ana@example.com", Password: "parola123"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.User{Email: "ana@example.com", Password: "alta-parola"})

	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "ana@example.com", Password: "parola123"})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "ana@example.com", "parola123")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "ana@example.com", Password: "parola123"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ana@example.com", "gresit")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{})

	_, err := svc.Login(context.Background(), "nimeni@example.com", "parola123")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
