// Package service defines ports for infrastructure services the use cases
// and middleware depend on.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims carried by a session token. The
// registered Subject claim holds the identity provider's stable user id.
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the
// signed session tokens minted after a successful OAuth login.
type TokenService interface {
	// GenerateSessionToken creates a signed session token for a subject.
	GenerateSessionToken(subject, email, name string) (string, error)

	// ValidateSessionToken checks the validity of a token string and
	// returns its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
