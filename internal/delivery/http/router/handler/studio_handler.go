package handler

import (
	"log/slog"
	"net/http"

	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StudioHandlerParams holds dependencies for StudioHandler, injected by Fx.
type StudioHandlerParams struct {
	fx.In

	StudioUC usecase.StudioUsecase
	Logger   *slog.Logger
}

// StudioHandler holds dependencies for studio-related handlers.
type StudioHandler struct {
	studioUC usecase.StudioUsecase
	logger   *slog.Logger
}

// NewStudioHandler is the constructor for StudioHandler.
func NewStudioHandler(params StudioHandlerParams) *StudioHandler {
	return &StudioHandler{
		studioUC: params.StudioUC,
		logger:   params.Logger,
	}
}

// FindAll handles GET /studios.
func (h *StudioHandler) FindAll(c echo.Context) error {
	records, err := h.studioUC.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, records)
}

// FindByID handles GET /studios/:id/studio.
func (h *StudioHandler) FindByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	record, err := h.studioUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !record.Present() {
		return domainerrors.NewNotFound("studio", id)
	}

	return c.JSON(http.StatusOK, record.MustGet())
}

// FindByName handles GET /studios/find?studioName=..
func (h *StudioHandler) FindByName(c echo.Context) error {
	name := c.QueryParam("studioName")
	if name == "" {
		return domainerrors.NewValidation([]string{"studioName: must not be blank"})
	}

	record, err := h.studioUC.FindByStudioName(c.Request().Context(), name)
	if err != nil {
		return err
	}

	if !record.Present() {
		return domainerrors.NewBaseError(
			http.StatusNotFound,
			domainerrors.TypeNotFound,
			"Resource not found",
			"studio "+name+" not found",
		)
	}

	return c.JSON(http.StatusOK, record.MustGet())
}

// Create handles POST /studios/add. A taken name answers 409.
func (h *StudioHandler) Create(c echo.Context) error {
	var record usecase.StudioRecord
	if err := c.Bind(&record); err != nil {
		return domainerrors.NewValidation([]string{"body: malformed JSON"})
	}

	if err := c.Validate(&record); err != nil {
		return err
	}

	created, err := h.studioUC.Create(c.Request().Context(), &record)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /studios/update.
func (h *StudioHandler) Update(c echo.Context) error {
	var record usecase.StudioRecord
	if err := c.Bind(&record); err != nil {
		return domainerrors.NewValidation([]string{"body: malformed JSON"})
	}

	if err := c.Validate(&record); err != nil {
		return err
	}

	if record.ID == nil {
		return domainerrors.NewValidation([]string{"id: is required"})
	}

	updated, err := h.studioUC.Update(c.Request().Context(), &record)
	if err != nil {
		return err
	}

	if !updated.Present() {
		return domainerrors.NewNotFound("studio", *record.ID)
	}

	return c.JSON(http.StatusOK, updated.MustGet())
}

// Delete handles DELETE /studios/:id.
func (h *StudioHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	deleted, err := h.studioUC.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !deleted {
		return domainerrors.NewNotFound("studio", id)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddDirector handles POST /studios/:id/directors/:directorId, attaching an
// existing director to the studio's roster.
func (h *StudioHandler) AddDirector(c echo.Context) error {
	studioID, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	directorID, err := parseID(c.Param("directorId"))
	if err != nil {
		return err
	}

	record, err := h.studioUC.AddDirector(c.Request().Context(), studioID, directorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, record)
}
