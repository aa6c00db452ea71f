package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/delivery/http/validator"
	mockUC "backlot/internal/mocks/usecase"
	"backlot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func requireAppError(t *testing.T, err error, httpCode int) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httpCode, appErr.HTTPCode())

	return appErr
}

func testDirectorRecord(id int64) usecase.DirectorRecord {
	return usecase.DirectorRecord{
		ID:         &id,
		FirstName:  "Quentin",
		LastName:   "Tarantino",
		BirthDate:  usecase.NewDateOnly(time.Date(1963, time.March, 27, 0, 0, 0, 0, time.UTC)),
		OscarCount: 2,
	}
}

func TestDirectorHandler_FindAll(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		FindAll(mock.Anything).
		Return([]usecase.DirectorRecord{testDirectorRecord(7)}, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/directors", "")

	require.NoError(t, h.FindAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Tarantino"`)
	assert.Contains(t, rec.Body.String(), `"27/03/1963"`)
}

func TestDirectorHandler_FindAll_Empty(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		FindAll(mock.Anything).
		Return([]usecase.DirectorRecord{}, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/directors", "")

	require.NoError(t, h.FindAll(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDirectorHandler_FindByID(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		FindByID(mock.Anything, int64(7)).
		Return(usecase.Some(testDirectorRecord(7)), nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/directors/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.FindByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestDirectorHandler_FindByID_NotFound(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		FindByID(mock.Anything, int64(404)).
		Return(usecase.None[usecase.DirectorRecord](), nil)

	c, _ := newTestContext(newTestEcho(), http.MethodGet, "/directors/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := h.FindByID(c)
	requireAppError(t, err, http.StatusNotFound)
}

func TestDirectorHandler_FindByID_BadID(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	c, _ := newTestContext(newTestEcho(), http.MethodGet, "/directors/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.FindByID(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), "id: must be an integer")
}

func TestDirectorHandler_FindByNames(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		FindByNames(mock.Anything, "Quentin", "Tarantino").
		Return(usecase.Some(testDirectorRecord(7)), nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet,
		"/directors/find?firstName=Quentin&lastName=Tarantino", "")

	require.NoError(t, h.FindByNames(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDirectorHandler_FindByNames_MissingParams(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	c, _ := newTestContext(newTestEcho(), http.MethodGet, "/directors/find?firstName=Quentin", "")

	err := h.FindByNames(c)
	requireAppError(t, err, http.StatusBadRequest)
}

func TestDirectorHandler_FindByNames_NotFound(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		FindByNames(mock.Anything, "John", "Doe").
		Return(usecase.None[usecase.DirectorRecord](), nil)

	c, _ := newTestContext(newTestEcho(), http.MethodGet,
		"/directors/find?firstName=John&lastName=Doe", "")

	err := h.FindByNames(c)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Contains(t, appErr.Detail(), "John Doe")
}

func TestDirectorHandler_Create(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	created := testDirectorRecord(7)
	directorUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.DirectorRecord")).
		Return(&created, nil)

	body := `{"firstName":"Quentin","lastName":"Tarantino","birthDate":"27/03/1963","oscarCount":2}`
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/directors/add", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestDirectorHandler_Create_BlankName(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	body := `{"firstName":"   ","lastName":"Tarantino"}`
	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/directors/add", body)

	err := h.Create(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), "firstName: must not be blank")
}

func TestDirectorHandler_Create_MalformedJSON(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/directors/add", `{"firstName":`)

	err := h.Create(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), "body: malformed JSON")
}

func TestDirectorHandler_Update(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	updated := testDirectorRecord(7)
	updated.OscarCount = 3
	directorUC.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.DirectorRecord")).
		Return(usecase.Some(updated), nil)

	body := `{"id":7,"firstName":"Quentin","lastName":"Tarantino","birthDate":"27/03/1963","oscarCount":3}`
	c, rec := newTestContext(newTestEcho(), http.MethodPut, "/directors/update", body)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"oscarCount":3`)
}

func TestDirectorHandler_Update_MissingID(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	body := `{"firstName":"Quentin","lastName":"Tarantino"}`
	c, _ := newTestContext(newTestEcho(), http.MethodPut, "/directors/update", body)

	err := h.Update(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), "id: is required")
}

func TestDirectorHandler_Update_NotFound(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.DirectorRecord")).
		Return(usecase.None[usecase.DirectorRecord](), nil)

	body := `{"id":404,"firstName":"Quentin","lastName":"Tarantino"}`
	c, _ := newTestContext(newTestEcho(), http.MethodPut, "/directors/update", body)

	err := h.Update(c)
	requireAppError(t, err, http.StatusNotFound)
}

func TestDirectorHandler_Delete(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		Delete(mock.Anything, int64(7)).
		Return(true, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodDelete, "/directors/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDirectorHandler_Delete_NotFound(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	directorUC.EXPECT().
		Delete(mock.Anything, int64(404)).
		Return(false, nil)

	c, _ := newTestContext(newTestEcho(), http.MethodDelete, "/directors/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := h.Delete(c)
	requireAppError(t, err, http.StatusNotFound)
}

func TestDirectorHandler_AddFilm(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	movieID := int64(100)
	directorID := int64(7)
	directorUC.EXPECT().
		AddFilmToDirector(mock.Anything, int64(7), mock.AnythingOfType("*usecase.MovieRecord")).
		Return(&usecase.MovieRecord{
			ID:         &movieID,
			Title:      "Pulp Fiction",
			Genre:      "THRILLER",
			Rating:     9.5,
			DirectorID: &directorID,
		}, nil)

	body := `{"title":"Pulp Fiction","releaseDate":"15/04/1998:12:12","genre":"THRILLER","rating":9.5}`
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/directors/7/movies", body)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.AddFilm(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"directorId":7`)
}

func TestDirectorHandler_AddFilm_BadGenre(t *testing.T) {
	directorUC := mockUC.NewMockDirectorUsecase(t)
	h := &DirectorHandler{directorUC: directorUC, logger: slog.New(slog.DiscardHandler)}

	body := `{"title":"Pulp Fiction","genre":"WESTERN","rating":9.5}`
	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/directors/7/movies", body)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := h.AddFilm(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), `genre: must be a valid genre, got "WESTERN"`)
}
