package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bengkel-backend/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, err := tm.GenerateAccessToken(3, "budi@x.io", domain.UserRoleTechnician)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(3), claims.UserID)
	assert.Equal(t, "budi@x.io", claims.Email)
	assert.Equal(t, domain.UserRoleTechnician, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", 60)

	token, err := tm.GenerateAccessToken(3, "budi@x.io", domain.UserRoleStudent)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, -1)

	token, err := tm.GenerateAccessToken(3, "budi@x.io", domain.UserRoleStudent)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
