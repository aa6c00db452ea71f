package auth

import (
	"testing"
	"time"

	"backlot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "backlot"
	cfg.Session.Secret = secret
	cfg.Session.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session secret")
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 0)

	assert.Equal(t, 8*time.Hour, svc.SessionDuration())
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	token, err := svc.GenerateSessionToken("google-sub-123", "user@example.com", "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.Equal(t, "backlot", claims.Issuer)

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	token, err := svc.GenerateSessionToken("google-sub-123", "user@example.com", "Test User")
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	minting := newTestTokenService(t, "secret-a", time.Hour)
	validating := newTestTokenService(t, "secret-b", time.Hour)

	token, err := minting.GenerateSessionToken("google-sub-123", "", "")
	require.NoError(t, err)

	_, err = validating.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", -time.Minute)

	// Constructor replaces non-positive TTLs; force expiry directly.
	svc.sessionTTL = -time.Minute

	token, err := svc.GenerateSessionToken("google-sub-123", "", "")
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}
