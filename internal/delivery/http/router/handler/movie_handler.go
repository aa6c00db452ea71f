package handler

import (
	"log/slog"
	"net/http"

	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MovieHandlerParams holds dependencies for MovieHandler, injected by Fx.
type MovieHandlerParams struct {
	fx.In

	MovieUC usecase.MovieUsecase
	Logger  *slog.Logger
}

// MovieHandler holds dependencies for movie-related handlers.
type MovieHandler struct {
	movieUC usecase.MovieUsecase
	logger  *slog.Logger
}

// NewMovieHandler is the constructor for MovieHandler.
func NewMovieHandler(params MovieHandlerParams) *MovieHandler {
	return &MovieHandler{
		movieUC: params.MovieUC,
		logger:  params.Logger,
	}
}

// FindAll handles GET /movies.
func (h *MovieHandler) FindAll(c echo.Context) error {
	records, err := h.movieUC.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, records)
}

// FindByID handles GET /movies/:id.
func (h *MovieHandler) FindByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	record, err := h.movieUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !record.Present() {
		return domainerrors.NewNotFound("movie", id)
	}

	return c.JSON(http.StatusOK, record.MustGet())
}

// FindByTitle handles GET /movies/find?title=.. Titles are not unique,
// so the result is a list, 204 when nothing matches.
func (h *MovieHandler) FindByTitle(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return domainerrors.NewValidation([]string{"title: must not be blank"})
	}

	records, err := h.movieUC.FindByTitle(c.Request().Context(), title)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, records)
}

// Create handles POST /movies/add.
func (h *MovieHandler) Create(c echo.Context) error {
	var record usecase.MovieRecord
	if err := c.Bind(&record); err != nil {
		return domainerrors.NewValidation([]string{"body: malformed JSON"})
	}

	if err := c.Validate(&record); err != nil {
		return err
	}

	created, err := h.movieUC.Create(c.Request().Context(), &record)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /movies/update.
func (h *MovieHandler) Update(c echo.Context) error {
	var record usecase.MovieRecord
	if err := c.Bind(&record); err != nil {
		return domainerrors.NewValidation([]string{"body: malformed JSON"})
	}

	if err := c.Validate(&record); err != nil {
		return err
	}

	if record.ID == nil {
		return domainerrors.NewValidation([]string{"id: is required"})
	}

	updated, err := h.movieUC.Update(c.Request().Context(), &record)
	if err != nil {
		return err
	}

	if !updated.Present() {
		return domainerrors.NewNotFound("movie", *record.ID)
	}

	return c.JSON(http.StatusOK, updated.MustGet())
}

// Delete handles DELETE /movies/:id.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	deleted, err := h.movieUC.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !deleted {
		return domainerrors.NewNotFound("movie", id)
	}

	return c.NoContent(http.StatusNoContent)
}
