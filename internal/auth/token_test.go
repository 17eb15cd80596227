package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k9hope_backend/internal/models"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Minute, time.Hour)

	token, err := manager.GenerateAccessToken("user-1", models.UserRoleDonor)
	require.NoError(t, err)

	claims, err := manager.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleDonor, claims.Role)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute, time.Hour)

	token, err := manager.GenerateAccessToken("user-1", models.UserRoleDonor)
	require.NoError(t, err)

	_, err = manager.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Minute, time.Hour)
	other := NewTokenManager("other-secret", time.Minute, time.Hour)

	token, err := manager.GenerateAccessToken("user-1", models.UserRoleDonor)
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Minute, time.Hour)

	_, err := manager.ParseAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateRefreshToken_UniqueAndExpiring(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Minute, time.Hour)

	first, expiry, err := manager.GenerateRefreshToken()
	require.NoError(t, err)
	second, _, err := manager.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 64) // 32 random bytes hex-encoded
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, time.Minute)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
