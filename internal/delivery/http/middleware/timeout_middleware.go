package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// TimeoutBudgets holds the request timeout budget per route. PerRoute is
// keyed by route path prefix ("/directors"); the longest matching prefix
// wins, Default applies when none matches. A non-positive budget disables
// the cap for the affected routes.
type TimeoutBudgets struct {
	Default  time.Duration
	PerRoute map[string]time.Duration
}

// For resolves the budget for a registered route path.
func (b TimeoutBudgets) For(path string) time.Duration {
	budget := b.Default
	matched := -1
	for prefix, d := range b.PerRoute {
		if strings.HasPrefix(path, prefix) && len(prefix) > matched {
			budget = d
			matched = len(prefix)
		}
	}

	return budget
}

// RequestTimeout caps each request's context at its route's budget so a
// stalled store call cannot hold a connection open indefinitely. Must be
// registered with Use, not Pre: the route path is only known after routing.
func RequestTimeout(budgets TimeoutBudgets) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			budget := budgets.For(c.Path())
			if budget <= 0 {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), budget)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
