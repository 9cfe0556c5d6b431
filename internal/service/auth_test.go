package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

func TestRegister(t *testing.T) {
	users := new(MockUserRepo)
	tokens := new(MockTokenManager)
	svc := NewAuthService(users, tokens)

	users.On("GetByEmail", mock.Anything, "budi@x.io").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "budi@x.io" && u.Role == domain.UserRoleFarmerPartner &&
			u.PasswordHash != "" && u.PasswordHash != "secret-password"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 3
	}).Return(nil)

	user, err := svc.Register(context.Background(), "Budi@X.io", "Budi", domain.UserRoleFarmerPartner, "secret-password")
	require.NoError(t, err)
	assert.Equal(t, int32(3), user.ID)
	assert.Nil(t, user.ApprovedOn)
	users.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users, new(MockTokenManager))

	users.On("GetByEmail", mock.Anything, "budi@x.io").
		Return(&domain.User{ID: 3, Email: "budi@x.io"}, nil)

	_, err := svc.Register(context.Background(), "budi@x.io", "Budi", domain.UserRoleStudent, "secret-password")
	assert.ErrorIs(t, err, ErrValidation)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUnknownRole(t *testing.T) {
	svc := NewAuthService(new(MockUserRepo), new(MockTokenManager))

	_, err := svc.Register(context.Background(), "budi@x.io", "Budi", "SUPERUSER", "secret-password")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin(t *testing.T) {
	users := new(MockUserRepo)
	tokens := new(MockTokenManager)
	svc := NewAuthService(users, tokens)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()

	users.On("GetByEmail", mock.Anything, "budi@x.io").Return(&domain.User{
		ID: 3, Email: "budi@x.io", Role: domain.UserRoleStudent,
		PasswordHash: string(hash), ApprovedOn: &now,
	}, nil)
	tokens.On("GenerateAccessToken", int32(3), "budi@x.io", domain.UserRoleStudent).
		Return("signed-token", nil)

	token, user, err := svc.Login(context.Background(), "budi@x.io", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, int32(3), user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users, new(MockTokenManager))

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	now := time.Now()
	users.On("GetByEmail", mock.Anything, "budi@x.io").Return(&domain.User{
		ID: 3, PasswordHash: string(hash), ApprovedOn: &now,
	}, nil)

	_, _, err := svc.Login(context.Background(), "budi@x.io", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewAuthService(users, new(MockTokenManager))

	users.On("GetByEmail", mock.Anything, "ghost@x.io").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@x.io", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnapprovedAccount(t *testing.T) {
	users := new(MockUserRepo)
	tokens := new(MockTokenManager)
	svc := NewAuthService(users, tokens)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "budi@x.io").Return(&domain.User{
		ID: 3, PasswordHash: string(hash),
	}, nil)

	_, _, err := svc.Login(context.Background(), "budi@x.io", "secret-password")
	assert.ErrorIs(t, err, ErrNotApproved)
	tokens.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything, mock.Anything)
}
