package middleware

import (
	"strings"

	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie the OAuth callback stores the session
// token in; browser clients authenticate through it, API clients through
// the Authorization header.
const SessionCookieName = "backlot_session"

const contextKeySession = "session_claims"

// AuthMiddleware authenticates requests against the session token minted at
// OAuth login.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token and stores its claims on the
// request context. Failures surface as 401 problems via the error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return domainerrors.NewUnauthorized("missing session token", "")
		}

		claims, err := m.tokenSvc.ValidateSessionToken(tokenString)
		if err != nil {
			return domainerrors.NewUnauthorized("invalid or expired session token", "")
		}

		c.Set(contextKeySession, claims)

		return next(c)
	}
}

// SessionClaims returns the authenticated session's claims, or nil when the
// request did not pass Authenticate.
func SessionClaims(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(contextKeySession).(*service.SessionClaims)

	return claims
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return token
		}

		return ""
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
