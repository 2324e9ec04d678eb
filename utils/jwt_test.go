package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saeedNW/go-divar/config"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("64f1b2a59e7c3d0012345678", "09123456789", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2a59e7c3d0012345678", claims.ID)
	assert.Equal(t, "09123456789", claims.Mobile)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("64f1b2a59e7c3d0012345678", "09123456789", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_MissingIDClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"mobile": "09123456789",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Get().JWTSecret))
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id claim")
}

func TestParseToken_WrongSecret(t *testing.T) {
	claims := jwt.MapClaims{
		"id":  "64f1b2a59e7c3d0012345678",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := ParseToken("not.a.jwt")
	assert.Error(t, err)
}
