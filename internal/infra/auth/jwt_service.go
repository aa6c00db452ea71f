// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"backlot/config"
	"backlot/internal/domain/service"
)

// jwtService implements the TokenService interface using HMAC-signed JWTs.
// Sessions are stateless: everything the middleware needs is in the claims.
type jwtService struct {
	secret     string
	sessionTTL time.Duration
	issuer     string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = time.Hour * 8
	}

	return &jwtService{
		secret:     cfg.Session.Secret,
		sessionTTL: ttl,
		issuer:     cfg.Env.ServiceName,
	}, nil
}

// GenerateSessionToken creates a signed session token for a subject.
func (s *jwtService) GenerateSessionToken(subject, email, name string) (string, error) {
	now := time.Now()
	claims := &service.SessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateSessionToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}

	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}

	return claims, nil
}

// SessionDuration returns the configured session lifetime.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}
