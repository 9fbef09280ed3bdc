package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon_web/internal/apperrors"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "judge@example.com", "judge")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "judge@example.com", claims.Email)
	assert.Equal(t, "judge", claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	// 直接簽一個已過期的 token
	claims := Claims{
		UserID: 1,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			IssuedAt:  time.Now().Add(-25 * time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}

func TestParseInvalidToken(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	claims := Claims{
		UserID: 1,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other_secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
