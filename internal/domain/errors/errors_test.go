package errors_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/errors"
)

func TestNewNotFound(t *testing.T) {
	err := domainerrors.NewNotFound("director", 404)

	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, domainerrors.TypeNotFound, err.ProblemType())
	assert.Equal(t, "Resource not found", err.Title())
	assert.Equal(t, "director with id 404 not found", err.Detail())
	assert.Nil(t, err.FieldErrors())
	assert.Equal(t, "Resource not found: director with id 404 not found", err.Error())
}

func TestNewAlreadyExists(t *testing.T) {
	err := domainerrors.NewAlreadyExists("studio", "A24")

	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Equal(t, domainerrors.TypeAlreadyExists, err.ProblemType())
	assert.Equal(t, "studio with name A24 already exists", err.Detail())
}

func TestNewValidation(t *testing.T) {
	fields := []string{"firstName: must not be blank", "oscarCount: must be greater than or equal to 0"}
	err := domainerrors.NewValidation(fields)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, domainerrors.TypeValidation, err.ProblemType())
	assert.Equal(t, "One or more fields are invalid", err.Detail())
	assert.Equal(t, fields, err.FieldErrors())
}

func TestNewUnauthorized(t *testing.T) {
	err := domainerrors.NewUnauthorized("missing session token", "")

	assert.Equal(t, http.StatusUnauthorized, err.HTTPCode())
	assert.Equal(t, "missing session token", err.Detail())
}

func TestNewUnauthorized_WithOAuthCode(t *testing.T) {
	err := domainerrors.NewUnauthorized("authentication rejected by provider", "access_denied")

	assert.Equal(t, "authentication rejected by provider (oauth error: access_denied)", err.Detail())
}

func TestBaseError_WithDetail(t *testing.T) {
	base := domainerrors.NewNotFound("movie", 1)
	custom := base.WithDetail("movie vanished")

	assert.Equal(t, "movie vanished", custom.Detail())
	// The original stays untouched.
	assert.Equal(t, "movie with id 1 not found", base.Detail())
	assert.Equal(t, base.HTTPCode(), custom.HTTPCode())
}

func TestBaseError_WrapMessage_PreservesClassification(t *testing.T) {
	wrapped := domainerrors.NewNotFound("director", 7).WrapMessage("failed to add film")

	var appErr domainerrors.AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Contains(t, wrapped.Error(), "failed to add film")
}

func TestDatabaseExecuteError_HidesDriverText(t *testing.T) {
	driverErr := errors.New(`pq: duplicate key value violates unique constraint "uk_studio_name"`)
	err := domainerrors.NewDatabaseExecuteError(driverErr, "failed to save studio")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, domainerrors.TypeInternal, err.ProblemType())
	assert.NotContains(t, err.Detail(), "pq:")
	// Error() keeps the driver text for server-side logs only.
	assert.Contains(t, err.Error(), "failed to save studio")
	assert.ErrorIs(t, err, driverErr)
}

func TestErrForbidden(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, domainerrors.ErrForbidden.HTTPCode())
	assert.Equal(t, domainerrors.TypeForbidden, domainerrors.ErrForbidden.ProblemType())
}
