package utils

import (
	"time"

	"github.com/golang-jwt/jwt"

	"hackathon_web/internal/apperrors"
)

var jwtSecret = []byte("hackathon_jwt_secret")

// SetSecret 以配置中的值覆寫簽名密鑰，必須在簽發任何 token 之前呼叫
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// tokenLifetime session token 的固定有效期
const tokenLifetime = 24 * time.Hour

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// GenerateToken 生成一個新的 JWT token
func GenerateToken(userID uint, email, role string) (string, error) {
	nowTime := time.Now()
	expireTime := nowTime.Add(tokenLifetime)

	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime.Unix(),
			IssuedAt:  nowTime.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(jwtSecret)
}

// ParseToken 解析和驗證 JWT token，過期與無效分別回傳不同的錯誤
func ParseToken(token string) (*Claims, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*Claims); ok && tokenClaims.Valid {
			return claims, nil
		}
	}

	if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
		return nil, apperrors.ErrExpiredToken
	}
	return nil, apperrors.ErrInvalidToken
}
