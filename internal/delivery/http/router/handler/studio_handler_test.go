package handler

import (
	"log/slog"
	"net/http"
	"testing"

	domainerrors "backlot/internal/domain/errors"
	mockUC "backlot/internal/mocks/usecase"
	"backlot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testStudioRecord(id int64) usecase.StudioRecord {
	return usecase.StudioRecord{
		ID:          &id,
		StudioName:  "A24",
		FoundedYear: 2012,
	}
}

func TestStudioHandler_FindAll(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		FindAll(mock.Anything).
		Return([]usecase.StudioRecord{testStudioRecord(3)}, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/studios", "")

	require.NoError(t, h.FindAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"studioFoundedYear":2012`)
}

func TestStudioHandler_FindAll_Empty(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		FindAll(mock.Anything).
		Return(nil, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/studios", "")

	require.NoError(t, h.FindAll(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestStudioHandler_FindByID(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		FindByID(mock.Anything, int64(3)).
		Return(usecase.Some(testStudioRecord(3)), nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/studios/3/studio", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.FindByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"A24"`)
}

func TestStudioHandler_FindByID_NotFound(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		FindByID(mock.Anything, int64(404)).
		Return(usecase.None[usecase.StudioRecord](), nil)

	c, _ := newTestContext(newTestEcho(), http.MethodGet, "/studios/404/studio", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := h.FindByID(c)
	requireAppError(t, err, http.StatusNotFound)
}

func TestStudioHandler_FindByName(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		FindByStudioName(mock.Anything, "A24").
		Return(usecase.Some(testStudioRecord(3)), nil)

	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/studios/find?studioName=A24", "")

	require.NoError(t, h.FindByName(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStudioHandler_FindByName_MissingParam(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	c, _ := newTestContext(newTestEcho(), http.MethodGet, "/studios/find", "")

	err := h.FindByName(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), "studioName: must not be blank")
}

func TestStudioHandler_FindByName_NotFound(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		FindByStudioName(mock.Anything, "Nonexistent Pictures").
		Return(usecase.None[usecase.StudioRecord](), nil)

	c, _ := newTestContext(newTestEcho(), http.MethodGet,
		"/studios/find?studioName=Nonexistent+Pictures", "")

	err := h.FindByName(c)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Contains(t, appErr.Detail(), "Nonexistent Pictures")
}

func TestStudioHandler_Create(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	created := testStudioRecord(3)
	studioUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.StudioRecord")).
		Return(&created, nil)

	body := `{"studioName":"A24","studioFoundedYear":2012}`
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/studios/add", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":3`)
}

func TestStudioHandler_Create_NameTaken(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.StudioRecord")).
		Return(nil, domainerrors.NewAlreadyExists("studio", "A24"))

	body := `{"studioName":"A24","studioFoundedYear":2012}`
	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/studios/add", body)

	err := h.Create(c)
	appErr := requireAppError(t, err, http.StatusConflict)
	assert.Contains(t, appErr.Detail(), "A24")
}

func TestStudioHandler_Create_BlankName(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	body := `{"studioName":"  ","studioFoundedYear":2012}`
	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/studios/add", body)

	err := h.Create(c)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.FieldErrors(), "studioName: must not be blank")
}

func TestStudioHandler_Update(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	updated := testStudioRecord(3)
	updated.FoundedYear = 2013
	studioUC.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.StudioRecord")).
		Return(usecase.Some(updated), nil)

	body := `{"id":3,"studioName":"A24","studioFoundedYear":2013}`
	c, rec := newTestContext(newTestEcho(), http.MethodPut, "/studios/update", body)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"studioFoundedYear":2013`)
}

func TestStudioHandler_Update_RenameConflict(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.StudioRecord")).
		Return(usecase.None[usecase.StudioRecord](), domainerrors.NewAlreadyExists("studio", "Miramax"))

	body := `{"id":3,"studioName":"Miramax"}`
	c, _ := newTestContext(newTestEcho(), http.MethodPut, "/studios/update", body)

	err := h.Update(c)
	requireAppError(t, err, http.StatusConflict)
}

func TestStudioHandler_Delete(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		Delete(mock.Anything, int64(3)).
		Return(true, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodDelete, "/studios/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestStudioHandler_Delete_NotFound(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		Delete(mock.Anything, int64(404)).
		Return(false, nil)

	c, _ := newTestContext(newTestEcho(), http.MethodDelete, "/studios/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := h.Delete(c)
	requireAppError(t, err, http.StatusNotFound)
}

func TestStudioHandler_AddDirector(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	updated := testStudioRecord(3)
	updated.DirectorList = []usecase.DirectorRecord{testDirectorRecord(7)}
	studioUC.EXPECT().
		AddDirector(mock.Anything, int64(3), int64(7)).
		Return(&updated, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/studios/3/directors/7", "")
	c.SetParamNames("id", "directorId")
	c.SetParamValues("3", "7")

	require.NoError(t, h.AddDirector(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Tarantino"`)
}

func TestStudioHandler_AddDirector_BadDirectorID(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/studios/3/directors/abc", "")
	c.SetParamNames("id", "directorId")
	c.SetParamValues("3", "abc")

	err := h.AddDirector(c)
	requireAppError(t, err, http.StatusBadRequest)
}

func TestStudioHandler_AddDirector_DirectorMissing(t *testing.T) {
	studioUC := mockUC.NewMockStudioUsecase(t)
	h := &StudioHandler{studioUC: studioUC, logger: slog.New(slog.DiscardHandler)}

	studioUC.EXPECT().
		AddDirector(mock.Anything, int64(3), int64(404)).
		Return(nil, domainerrors.NewNotFound("director", 404))

	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/studios/3/directors/404", "")
	c.SetParamNames("id", "directorId")
	c.SetParamValues("3", "404")

	err := h.AddDirector(c)
	requireAppError(t, err, http.StatusNotFound)
}
