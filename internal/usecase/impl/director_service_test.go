package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	mockRepo "backlot/internal/mocks/repository"
	"backlot/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directorServiceFixtures struct {
	service      usecase.DirectorUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	directorRepo *mockRepo.MockDirectorRepository
	movieRepo    *mockRepo.MockMovieRepository
}

func createTestDirectorService(t *testing.T) directorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	directorRepo := mockRepo.NewMockDirectorRepository(t)
	movieRepo := mockRepo.NewMockMovieRepository(t)

	service := NewDirectorService(DirectorServiceParams{
		TxManager:    txManager,
		DirectorRepo: directorRepo,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return directorServiceFixtures{
		service:      service,
		txManager:    txManager,
		repoFactory:  repoFactory,
		directorRepo: directorRepo,
		movieRepo:    movieRepo,
	}
}

// expectTransaction wires the transaction manager to run the scoped
// function against the fixture's repository factory.
func (fx directorServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func tarantinoRecord() *usecase.DirectorRecord {
	return &usecase.DirectorRecord{
		FirstName:  "Quentin",
		LastName:   "Tarantino",
		BirthDate:  usecase.NewDateOnly(time.Date(1963, time.March, 27, 0, 0, 0, 0, time.UTC)),
		OscarCount: 2,
	}
}

func TestDirectorService_Create(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Director")).
		Run(func(_ context.Context, director *entity.Director) {
			director.ID = 7
		}).
		Return(nil)

	created, err := fx.service.Create(ctx, tarantinoRecord())
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(7), *created.ID)
	assert.Equal(t, "Quentin", created.FirstName)
	assert.Equal(t, "Tarantino", created.LastName)
	assert.Equal(t, 2, created.OscarCount)
}

func TestDirectorService_Create_IgnoresClientID(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Director")).
		Run(func(_ context.Context, director *entity.Director) {
			assert.Zero(t, director.ID)
			director.ID = 42
		}).
		Return(nil)

	record := tarantinoRecord()
	clientID := int64(999)
	record.ID = &clientID

	created, err := fx.service.Create(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, int64(42), *created.ID)
}

func TestDirectorService_Create_LinksNestedMovies(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Director")).
		Run(func(_ context.Context, director *entity.Director) {
			director.ID = 7
			for i, m := range director.Movies {
				m.ID = int64(100 + i)
			}
		}).
		Return(nil)

	record := tarantinoRecord()
	record.MoviesRecord = []usecase.MovieRecord{
		{
			Title:       "Pulp Fiction",
			ReleaseDate: usecase.NewDateTime(time.Date(1998, time.April, 15, 12, 12, 0, 0, time.UTC)),
			Genre:       "THRILLER",
			Rating:      9.5,
		},
	}

	created, err := fx.service.Create(ctx, record)
	require.NoError(t, err)
	require.Len(t, created.MoviesRecord, 1)

	movie := created.MoviesRecord[0]
	assert.Equal(t, int64(100), *movie.ID)
	assert.Equal(t, "Pulp Fiction", movie.Title)
	require.NotNil(t, movie.DirectorID)
	assert.Equal(t, int64(7), *movie.DirectorID)
}

func TestDirectorService_Create_SaveError(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Director")).
		Return(errors.New("database error"))

	created, err := fx.service.Create(ctx, tarantinoRecord())
	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "failed to save director")
}

func TestDirectorService_FindByID(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Director{
			ID: 7,
			Person: entity.Person{
				FirstName: "Quentin",
				LastName:  "Tarantino",
				BirthDate: time.Date(1963, time.March, 27, 0, 0, 0, 0, time.UTC),
			},
			OscarCount: 2,
		}, nil)

	result, err := fx.service.FindByID(ctx, 7)
	require.NoError(t, err)
	require.True(t, result.Present())

	record := result.MustGet()
	assert.Equal(t, int64(7), *record.ID)
	assert.Equal(t, "Tarantino", record.LastName)
}

func TestDirectorService_FindByID_Absent(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrDirectorNotFound)

	result, err := fx.service.FindByID(ctx, 404)
	require.NoError(t, err)
	assert.False(t, result.Present())
}

func TestDirectorService_FindByID_RepositoryError(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(nil, errors.New("database error"))

	_, err := fx.service.FindByID(ctx, 7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find director by id")
}

func TestDirectorService_FindAll(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.directorRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Director{
			{ID: 1, Person: entity.Person{FirstName: "Quentin", LastName: "Tarantino"}},
			{ID: 2, Person: entity.Person{FirstName: "Sofia", LastName: "Coppola"}},
		}, nil)

	records, err := fx.service.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Tarantino", records[0].LastName)
	assert.Equal(t, "Coppola", records[1].LastName)
}

func TestDirectorService_FindAll_Empty(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.directorRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Director{}, nil)

	records, err := fx.service.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDirectorService_FindByNames(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.directorRepo.EXPECT().
		FindByFirstNameAndLastName(ctx, "Quentin", "Tarantino").
		Return(&entity.Director{
			ID:     7,
			Person: entity.Person{FirstName: "Quentin", LastName: "Tarantino"},
		}, nil)

	result, err := fx.service.FindByNames(ctx, "Quentin", "Tarantino")
	require.NoError(t, err)
	require.True(t, result.Present())
	assert.Equal(t, int64(7), *result.MustGet().ID)
}

func TestDirectorService_FindByNames_Absent(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.directorRepo.EXPECT().
		FindByFirstNameAndLastName(ctx, "John", "Doe").
		Return(nil, repository.ErrDirectorNotFound)

	result, err := fx.service.FindByNames(ctx, "John", "Doe")
	require.NoError(t, err)
	assert.False(t, result.Present())
}

func TestDirectorService_Update(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	stored := &entity.Director{
		ID: 7,
		Person: entity.Person{
			FirstName: "Quentin",
			LastName:  "Tarantino",
		},
		OscarCount: 2,
	}

	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(stored, nil)

	fx.directorRepo.EXPECT().
		Save(ctx, stored).
		Return(nil)

	record := tarantinoRecord()
	id := int64(7)
	record.ID = &id
	record.OscarCount = 3

	result, err := fx.service.Update(ctx, record)
	require.NoError(t, err)
	require.True(t, result.Present())
	assert.Equal(t, 3, result.MustGet().OscarCount)
	assert.Equal(t, 3, stored.OscarCount)
}

func TestDirectorService_Update_NilID(t *testing.T) {
	fx := createTestDirectorService(t)

	result, err := fx.service.Update(context.Background(), tarantinoRecord())
	require.NoError(t, err)
	assert.False(t, result.Present())
}

func TestDirectorService_Update_Absent(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrDirectorNotFound)

	record := tarantinoRecord()
	id := int64(404)
	record.ID = &id

	result, err := fx.service.Update(ctx, record)
	require.NoError(t, err)
	assert.False(t, result.Present())
}

func TestDirectorService_Delete(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Director{ID: 7}, nil)

	fx.directorRepo.EXPECT().
		DeleteByID(ctx, int64(7)).
		Return(nil)

	deleted, err := fx.service.Delete(ctx, 7)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDirectorService_Delete_Absent(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrDirectorNotFound)

	deleted, err := fx.service.Delete(ctx, 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDirectorService_Delete_RepositoryError(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Director{ID: 7}, nil)

	fx.directorRepo.EXPECT().
		DeleteByID(ctx, int64(7)).
		Return(errors.New("database error"))

	deleted, err := fx.service.Delete(ctx, 7)
	assert.Error(t, err)
	assert.False(t, deleted)
	assert.Contains(t, err.Error(), "failed to delete director")
}

func TestDirectorService_AddFilmToDirector(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)
	fx.repoFactory.EXPECT().MovieRepo().Return(fx.movieRepo)

	director := &entity.Director{
		ID:     7,
		Person: entity.Person{FirstName: "Quentin", LastName: "Tarantino"},
	}

	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(director, nil)

	fx.movieRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Movie")).
		Run(func(_ context.Context, movie *entity.Movie) {
			require.NotNil(t, movie.DirectorID)
			assert.Equal(t, int64(7), *movie.DirectorID)
			movie.ID = 100
		}).
		Return(nil)

	fx.directorRepo.EXPECT().
		Save(ctx, director).
		Return(nil)

	record := &usecase.MovieRecord{
		Title:       "Pulp Fiction",
		ReleaseDate: usecase.NewDateTime(time.Date(1998, time.April, 15, 12, 12, 0, 0, time.UTC)),
		Genre:       "THRILLER",
		Rating:      9.5,
	}

	added, err := fx.service.AddFilmToDirector(ctx, 7, record)
	require.NoError(t, err)
	assert.Equal(t, int64(100), *added.ID)
	assert.Equal(t, int64(7), *added.DirectorID)
	require.Len(t, director.Movies, 1)
	assert.Equal(t, "Pulp Fiction", director.Movies[0].Title)
}

func TestDirectorService_AddFilmToDirector_DirectorMissing(t *testing.T) {
	fx := createTestDirectorService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().DirectorRepo().Return(fx.directorRepo)

	fx.directorRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrDirectorNotFound)

	record := &usecase.MovieRecord{Title: "Pulp Fiction", Genre: "THRILLER"}

	added, err := fx.service.AddFilmToDirector(ctx, 404, record)
	assert.Nil(t, added)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}
