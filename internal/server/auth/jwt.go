// Package auth implements the cryptographic pieces of the session gate:
// signed session cookie tokens and argon2id password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/psustentables/taskboard/internal/common"
)

// Claims carries the standard registered claims plus the opaque server-side
// session token the cookie refers to.
type Claims struct {
	jwt.RegisteredClaims
	SessionToken string
}

// GenerateToken signs a session cookie value (HS256) referring to the given
// server-side session token.
func GenerateToken(sessionToken string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		SessionToken: sessionToken,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSessionTokenFromToken verifies the cookie value and extracts the
// server-side session token. Expired cookies map to ErrorSessionExpired,
// everything else invalid to ErrInvalidToken.
func GetSessionTokenFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrorSessionExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.SessionToken, nil
}
