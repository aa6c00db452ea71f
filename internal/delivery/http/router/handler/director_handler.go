// Package handler contains the HTTP handlers, one per aggregate plus the
// public and auth surfaces. Handlers decode and validate, call a use case,
// and map the outcome to a status code; failure bodies are rendered by the
// error middleware.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DirectorHandlerParams holds dependencies for DirectorHandler, injected by Fx.
type DirectorHandlerParams struct {
	fx.In

	DirectorUC usecase.DirectorUsecase
	Logger     *slog.Logger
}

// DirectorHandler holds dependencies for director-related handlers.
type DirectorHandler struct {
	directorUC usecase.DirectorUsecase
	logger     *slog.Logger
}

// NewDirectorHandler is the constructor for DirectorHandler.
func NewDirectorHandler(params DirectorHandlerParams) *DirectorHandler {
	return &DirectorHandler{
		directorUC: params.DirectorUC,
		logger:     params.Logger,
	}
}

// FindAll handles GET /directors. An empty catalogue answers 204.
func (h *DirectorHandler) FindAll(c echo.Context) error {
	records, err := h.directorUC.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, records)
}

// FindByID handles GET /directors/:id.
func (h *DirectorHandler) FindByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	record, err := h.directorUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !record.Present() {
		return domainerrors.NewNotFound("director", id)
	}

	return c.JSON(http.StatusOK, record.MustGet())
}

// FindByNames handles GET /directors/find?firstName=..&lastName=..
func (h *DirectorHandler) FindByNames(c echo.Context) error {
	firstName := c.QueryParam("firstName")
	lastName := c.QueryParam("lastName")
	if firstName == "" || lastName == "" {
		return domainerrors.NewValidation([]string{
			"firstName: must not be blank",
			"lastName: must not be blank",
		})
	}

	record, err := h.directorUC.FindByNames(c.Request().Context(), firstName, lastName)
	if err != nil {
		return err
	}

	if !record.Present() {
		return domainerrors.NewBaseError(
			http.StatusNotFound,
			domainerrors.TypeNotFound,
			"Resource not found",
			"director "+firstName+" "+lastName+" not found",
		)
	}

	return c.JSON(http.StatusOK, record.MustGet())
}

// Create handles POST /directors/add.
func (h *DirectorHandler) Create(c echo.Context) error {
	var record usecase.DirectorRecord
	if err := c.Bind(&record); err != nil {
		return domainerrors.NewValidation([]string{"body: malformed JSON"})
	}

	if err := c.Validate(&record); err != nil {
		return err
	}

	created, err := h.directorUC.Create(c.Request().Context(), &record)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /directors/update. The record's id picks the target.
func (h *DirectorHandler) Update(c echo.Context) error {
	var record usecase.DirectorRecord
	if err := c.Bind(&record); err != nil {
		return domainerrors.NewValidation([]string{"body: malformed JSON"})
	}

	if err := c.Validate(&record); err != nil {
		return err
	}

	if record.ID == nil {
		return domainerrors.NewValidation([]string{"id: is required"})
	}

	updated, err := h.directorUC.Update(c.Request().Context(), &record)
	if err != nil {
		return err
	}

	if !updated.Present() {
		return domainerrors.NewNotFound("director", *record.ID)
	}

	return c.JSON(http.StatusOK, updated.MustGet())
}

// Delete handles DELETE /directors/:id. A missing id is 404, never a
// silent success.
func (h *DirectorHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	deleted, err := h.directorUC.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !deleted {
		return domainerrors.NewNotFound("director", id)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddFilm handles POST /directors/:id/movies, creating a movie under the
// director.
func (h *DirectorHandler) AddFilm(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var record usecase.MovieRecord
	if err := c.Bind(&record); err != nil {
		return domainerrors.NewValidation([]string{"body: malformed JSON"})
	}

	if err := c.Validate(&record); err != nil {
		return err
	}

	movie, err := h.directorUC.AddFilmToDirector(c.Request().Context(), id, &record)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, movie)
}

// parseID parses a path identity segment. Non-numeric ids are validation
// failures, not lookups that missed.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.NewValidation([]string{"id: must be an integer"})
	}

	return id, nil
}
