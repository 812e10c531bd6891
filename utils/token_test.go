package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken(7)
	require.NoError(t, err)
	require.True(t, VerifyToken(token))

	userID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, userID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAccessToken(7)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	assert.False(t, VerifyToken(token))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.False(t, VerifyToken(token))
}

func TestDecodeWithoutUserClaimFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := anonymous.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = DecodeToken(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	assert.False(t, VerifyToken("this.is.garbage"))
}
