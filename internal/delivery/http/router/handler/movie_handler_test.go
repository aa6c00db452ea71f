package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	mockUC "backlot/internal/mocks/usecase"
	"backlot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMovieRecord(id int64) usecase.MovieRecord {
	return usecase.MovieRecord{
		ID:          &id,
		Title:       "Pulp Fiction",
		ReleaseDate: usecase.NewDateTime(time.Date(1998, time.April, 15, 12, 12, 0, 0, time.UTC)),
		Genre:       "THRILLER",
		Rating:      9.5,
	}
}

func TestMovieHandler_FindAll(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		FindAll(mock.Anything).
		Return([]usecase.MovieRecord{testMovieRecord(100)}, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/movies", "")

	require.NoError(t, h.FindAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"15/04/1998:12:12"`)
}

func TestMovieHandler_FindAll_Empty(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		FindAll(mock.Anything).
		Return(nil, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/movies", "")

	require.NoError(t, h.FindAll(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMovieHandler_FindByID(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		FindByID(mock.Anything, int64(100)).
		Return(usecase.Some(testMovieRecord(100)), nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/movies/100", "")
	c.SetParamNames("id")
	c.SetParamValues("100")

	require.NoError(t, h.FindByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Pulp Fiction"`)
}

func TestMovieHandler_FindByID_NotFound(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		FindByID(mock.Anything, int64(404)).
		Return(usecase.None[usecase.MovieRecord](), nil)

	c, _ := newTestContext(newTestEcho(), http.MethodGet, "/movies/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := h.FindByID(c)
	requireAppError(t, err, http.StatusNotFound)
}

func TestMovieHandler_FindByTitle(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		FindByTitle(mock.Anything, "Pulp Fiction").
		Return([]usecase.MovieRecord{testMovieRecord(100)}, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/movies/find?title=Pulp+Fiction", "")

	require.NoError(t, h.FindByTitle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMovieHandler_FindByTitle_NoMatch(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		FindByTitle(mock.Anything, "Unreleased").
		Return([]usecase.MovieRecord{}, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/movies/find?title=Unreleased", "")

	require.NoError(t, h.FindByTitle(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMovieHandler_FindByTitle_MissingParam(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	c, _ := newTestContext(newTestEcho(), http.MethodGet, "/movies/find", "")

	err := h.FindByTitle(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), "title: must not be blank")
}

func TestMovieHandler_Create(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	created := testMovieRecord(100)
	movieUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.MovieRecord")).
		Return(&created, nil)

	body := `{"title":"Pulp Fiction","releaseDate":"15/04/1998:12:12","genre":"THRILLER","rating":9.5}`
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/movies/add", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":100`)
}

func TestMovieHandler_Create_RatingOutOfRange(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	body := `{"title":"Pulp Fiction","genre":"THRILLER","rating":11}`
	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/movies/add", body)

	err := h.Create(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), "rating: must be less than or equal to 10")
}

func TestMovieHandler_Update(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	updated := testMovieRecord(100)
	movieUC.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.MovieRecord")).
		Return(usecase.Some(updated), nil)

	body := `{"id":100,"title":"Pulp Fiction","releaseDate":"15/04/1998:12:12","genre":"THRILLER","rating":9.5}`
	c, rec := newTestContext(newTestEcho(), http.MethodPut, "/movies/update", body)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMovieHandler_Update_NotFound(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.MovieRecord")).
		Return(usecase.None[usecase.MovieRecord](), nil)

	body := `{"id":404,"title":"Pulp Fiction","genre":"THRILLER","rating":9.5}`
	c, _ := newTestContext(newTestEcho(), http.MethodPut, "/movies/update", body)

	err := h.Update(c)
	requireAppError(t, err, http.StatusNotFound)
}

func TestMovieHandler_Delete(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		Delete(mock.Anything, int64(100)).
		Return(true, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodDelete, "/movies/100", "")
	c.SetParamNames("id")
	c.SetParamValues("100")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMovieHandler_Delete_NotFound(t *testing.T) {
	movieUC := mockUC.NewMockMovieUsecase(t)
	h := &MovieHandler{movieUC: movieUC, logger: slog.New(slog.DiscardHandler)}

	movieUC.EXPECT().
		Delete(mock.Anything, int64(404)).
		Return(false, nil)

	c, _ := newTestContext(newTestEcho(), http.MethodDelete, "/movies/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := h.Delete(c)
	requireAppError(t, err, http.StatusNotFound)
}
