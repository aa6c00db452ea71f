package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home is the single public page; everything else sits behind the session
// middleware.
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the movie catalogue. Log in via /auth/login to browse.",
	})
}

// HealthCheck reports liveness for probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
