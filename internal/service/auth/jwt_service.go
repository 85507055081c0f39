// Package auth provides token issuance/validation and password hashing
// for the authentication flow.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token whose subject is the
	// user's email address.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken for a well-formed but expired token
	// and ErrInvalidToken for any other failure (bad signature, malformed
	// payload, missing subject).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated claims extracted from a token.
type Claims struct {
	// Subject is the email of the user the token was issued for.
	Subject string

	// IssuedAt and ExpiresAt are the standard time claims.
	IssuedAt  time.Time
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim).
	ID string
}
