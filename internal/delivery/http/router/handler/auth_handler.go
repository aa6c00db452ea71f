package handler

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"

	"backlot/internal/delivery/http/middleware"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	OAuthSvc service.OAuthService
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// AuthHandler drives the OAuth authorization-code login flow and mints the
// session token on a successful callback.
type AuthHandler struct {
	oauthSvc service.OAuthService
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		oauthSvc: params.OAuthSvc,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// Login handles GET /auth/login, redirecting the client to the identity
// provider with a fresh state parameter.
func (h *AuthHandler) Login(c echo.Context) error {
	state, err := generateState()
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, h.oauthSvc.BuildAuthorizationURL(state))
}

// Callback handles GET /auth/callback. Provider-reported failures keep
// their non-sensitive error code in the problem detail.
func (h *AuthHandler) Callback(c echo.Context) error {
	if oauthErr := c.QueryParam("error"); oauthErr != "" {
		return domainerrors.NewUnauthorized("identity provider rejected the login", oauthErr)
	}

	if !h.oauthSvc.ValidateState(c.QueryParam("state")) {
		return domainerrors.NewUnauthorized("invalid or expired state parameter", "")
	}

	code := c.QueryParam("code")
	if code == "" {
		return domainerrors.NewUnauthorized("missing authorization code", "")
	}

	user, err := h.oauthSvc.ExchangeCode(c.Request().Context(), code)
	if err != nil {
		h.logger.Warn("OAuth code exchange failed", slog.String("error", err.Error()))

		return domainerrors.NewUnauthorized("could not verify the authorization code", "")
	}

	token, err := h.tokenSvc.GenerateSessionToken(user.Subject, user.Email, user.Name)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.SessionDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("session established", slog.String("subject", user.Subject))

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// generateState mints a cryptographically random state parameter.
func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
