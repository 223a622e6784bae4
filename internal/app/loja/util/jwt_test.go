package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("admin-secret", "user-secret", 24*time.Hour, 7*24*time.Hour)
}

func TestTokenManager_GenerateUserToken_Success(t *testing.T) {
	// Arrange
	manager := newTestTokenManager()

	// Act
	token, err := manager.GenerateUserToken(42, "maria@example.com", false)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.False(t, claims.IsAdmin)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenManager_GenerateAdminToken_Success(t *testing.T) {
	// Arrange
	manager := newTestTokenManager()

	// Act
	token, err := manager.GenerateAdminToken(7)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
}

func TestTokenManager_ValidateUserToken_InvalidToken(t *testing.T) {
	// Arrange
	manager := newTestTokenManager()

	// Act
	claims, err := manager.ValidateUserToken("not-a-token")

	// Assert
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenManager_ValidateUserToken_ExpiredToken(t *testing.T) {
	// Arrange
	manager := NewTokenManager("admin-secret", "user-secret", 24*time.Hour, -time.Minute)
	token, err := manager.GenerateUserToken(1, "old@example.com", false)
	require.NoError(t, err)

	// Act
	claims, err := manager.ValidateUserToken(token)

	// Assert
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestTokenManager_SchemesAreNotInterchangeable(t *testing.T) {
	// Arrange
	manager := newTestTokenManager()
	userToken, err := manager.GenerateUserToken(3, "ana@example.com", true)
	require.NoError(t, err)
	adminToken, err := manager.GenerateAdminToken(3)
	require.NoError(t, err)

	// Act / Assert: each scheme rejects the other's tokens.
	_, err = manager.ValidateAdminToken(userToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.ValidateUserToken(adminToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_SameSecretStillSeparatesSchemes(t *testing.T) {
	// Arrange: the default deployment uses one key for both schemes.
	manager := NewTokenManager("shared", "shared", 24*time.Hour, 7*24*time.Hour)
	adminToken, err := manager.GenerateAdminToken(1)
	require.NoError(t, err)

	// Act: an admin token parsed as a user token has no numeric subject.
	claims, err := manager.ValidateUserToken(adminToken)

	// Assert
	require.NoError(t, err)
	_, err = claims.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
