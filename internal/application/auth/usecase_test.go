package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wareline/supplydesk-api/internal/application/auth"
	"github.com/wareline/supplydesk-api/internal/application/dto"
	"github.com/wareline/supplydesk-api/internal/domain"
	"github.com/wareline/supplydesk-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "unit-test-secret",
		ExpMinutes: 60,
		Issuer:     "supplydesk-test",
	})
	return uc, repo
}

func TestRegisterAndLogin_RoundTrip(t *testing.T) {
	uc, repo := newUseCase()

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "pat@warehouse.example",
		Password: "correct-horse-battery",
		Name:     "Pat Alvarez",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSales, user.Role, "role defaults to sales")
	assert.Equal(t, "active", user.Status)

	// The stored hash must never be the plaintext
	stored := repo.byEmail["pat@warehouse.example"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)

	out, err := uc.Login(dto.LoginRequest{
		Email:    "pat@warehouse.example",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "dup@warehouse.example", Password: "password-one", Name: "A"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "dup@warehouse.example", Password: "password-two", Name: "B"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "pat@warehouse.example", Password: "right-password", Name: "Pat"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "pat@warehouse.example", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "ghost@warehouse.example", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_InactiveAccount(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ex@warehouse.example", Password: "some-password", Name: "Ex"})
	require.NoError(t, err)
	repo.byEmail["ex@warehouse.example"].Status = "disabled"

	_, err = uc.Login(dto.LoginRequest{Email: "ex@warehouse.example", Password: "some-password"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
