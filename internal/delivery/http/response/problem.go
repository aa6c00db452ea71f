// Package response renders HTTP response bodies. Failures follow RFC 7807
// problem details; successes are the records themselves.
package response

import (
	"net/http"

	domainerrors "backlot/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ContentTypeProblem is the RFC 7807 media type.
const ContentTypeProblem = "application/problem+json"

// Problem is an RFC 7807 problem details body. CorrelationID ties the
// response to the server-side log lines for the same request.
type Problem struct {
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Status        int      `json:"status"`
	Detail        string   `json:"detail,omitempty"`
	Instance      string   `json:"instance,omitempty"`
	CorrelationID string   `json:"correlationId,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

// AppProblem renders a classified domain failure as a problem response.
func AppProblem(c echo.Context, appErr domainerrors.AppError, correlationID string) error {
	return writeProblem(c, Problem{
		Type:          appErr.ProblemType(),
		Title:         appErr.Title(),
		Status:        appErr.HTTPCode(),
		Detail:        appErr.Detail(),
		Instance:      c.Request().URL.Path,
		CorrelationID: correlationID,
		Errors:        appErr.FieldErrors(),
	})
}

// GenericProblem renders a problem for failures with no domain
// classification. The detail stays generic; internals never leak.
func GenericProblem(c echo.Context, status int, detail, correlationID string) error {
	return writeProblem(c, Problem{
		Type:          domainerrors.TypeInternal,
		Title:         http.StatusText(status),
		Status:        status,
		Detail:        detail,
		Instance:      c.Request().URL.Path,
		CorrelationID: correlationID,
	})
}

func writeProblem(c echo.Context, problem Problem) error {
	// Set the media type before echo writes its default one.
	c.Response().Header().Set(echo.HeaderContentType, ContentTypeProblem)

	return c.JSON(problem.Status, problem)
}
