// Package auth mints and checks the gateway's own staff session tokens.
// The platform backend's bearer token never leaves the server; the browser
// holds only this short-lived local JWT.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const staffSessionTTL = 12 * time.Hour

// IssueStaffToken signs a session JWT for a staff member who just passed
// backend login.
func IssueStaffToken(secret, email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  "staff",
		"exp":   time.Now().Add(staffSessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateStaffToken parses and verifies a session JWT, returning its
// claims.
func ValidateStaffToken(secret, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
