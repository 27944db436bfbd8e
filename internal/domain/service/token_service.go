package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for validating JWTs. Token issuance
// lives with the identity provider; this service only verifies access
// tokens presented to the API.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
