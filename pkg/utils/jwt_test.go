package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "staff@pharmacy.test", "pharmacist")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff@pharmacy.test", claims.Email)
	assert.Equal(t, "pharmacist", claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("different", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "staff@pharmacy.test", "admin")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "staff@pharmacy.test", "admin")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}
