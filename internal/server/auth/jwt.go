// Package auth issues and verifies the signed tokens used by the API:
// short-lived access tokens for resource calls and long-lived refresh
// tokens that can only mint new access tokens.
package auth

import (
	"errors"
	"time"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenType discriminates access tokens from refresh tokens. A refresh
// token presented where an access token is required is rejected, and vice
// versa.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carries the signed identity of the caller.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	TokenType TokenType `json:"type"`
}

// GenerateToken signs an HS256 token of the given type for the user.
func GenerateToken(userID, username string, tokenType TokenType, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the claims.
// An expired token yields common.ErrTokenExpired; any other verification
// failure yields common.ErrInvalidToken so callers can report the two
// conditions distinctly.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
