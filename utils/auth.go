package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminCookieName is the cookie carrying the admin session token.
const AdminCookieName = "admin-token"

// AdminSessionTTL bounds how long an issued session stays valid. There is
// no refresh and no revocation; a leaked token lives out this window.
const AdminSessionTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// SignAdminToken issues the HS256 session token for the configured admin.
func SignAdminToken(email, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(AdminSessionTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifyAdminToken checks signature and expiry and returns the claims.
func VerifyAdminToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
