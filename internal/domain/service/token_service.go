package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// Enabled reports whether a signing secret is configured.
	Enabled() bool

	// GenerateAccessToken signs a token for the given account.
	GenerateAccessToken(userID uint, username, role string) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
