package service

import "context"

// OAuthUser represents user information returned by the identity provider.
type OAuthUser struct {
	Subject       string // provider-specific stable user id ('sub' claim)
	Email         string
	Name          string
	EmailVerified bool
}

// OAuthService defines the authorization-code flow against the configured
// identity provider.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider's authorization URL,
	// registering state for CSRF validation on the callback.
	BuildAuthorizationURL(state string) string

	// ValidateState checks and consumes a state parameter issued by
	// BuildAuthorizationURL.
	ValidateState(state string) bool

	// ExchangeCode trades an authorization code for the provider's
	// user information.
	ExchangeCode(ctx context.Context, code string) (*OAuthUser, error)
}
