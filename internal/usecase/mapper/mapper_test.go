package mapper

import (
	"testing"
	"time"

	"backlot/internal/domain/entity"
	"backlot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorToRecord(t *testing.T) {
	directorID := int64(7)
	director := &entity.Director{
		ID: 7,
		Person: entity.Person{
			FirstName: "Quentin",
			LastName:  "Tarantino",
			BirthDate: time.Date(1963, time.March, 27, 0, 0, 0, 0, time.UTC),
		},
		OscarCount: 2,
		Movies: []*entity.Movie{
			{
				ID:          100,
				Title:       "Pulp Fiction",
				ReleaseDate: time.Date(1998, time.April, 15, 12, 12, 0, 0, time.UTC),
				Genre:       entity.GenreThriller,
				Rating:      9.5,
				DirectorID:  &directorID,
			},
		},
	}

	record := DirectorToRecord(director)
	require.NotNil(t, record)
	assert.Equal(t, int64(7), *record.ID)
	assert.Equal(t, "Quentin", record.FirstName)
	assert.Equal(t, "Tarantino", record.LastName)
	assert.Equal(t, 2, record.OscarCount)

	require.Len(t, record.MoviesRecord, 1)
	movie := record.MoviesRecord[0]
	assert.Equal(t, "Pulp Fiction", movie.Title)
	assert.Equal(t, "THRILLER", movie.Genre)
	assert.Equal(t, int64(7), *movie.DirectorID)
}

func TestDirectorToRecord_Nil(t *testing.T) {
	assert.Nil(t, DirectorToRecord(nil))
}

func TestDirectorToRecord_UnassignedIDIsNull(t *testing.T) {
	record := DirectorToRecord(&entity.Director{
		Person: entity.Person{FirstName: "Quentin", LastName: "Tarantino"},
	})

	assert.Nil(t, record.ID)
}

func TestDirectorFromRecord_LeavesBackReferencesNil(t *testing.T) {
	record := &usecase.DirectorRecord{
		FirstName: "Quentin",
		LastName:  "Tarantino",
		MoviesRecord: []usecase.MovieRecord{
			{Title: "Pulp Fiction", Genre: "THRILLER", Rating: 9.5},
		},
	}

	director := DirectorFromRecord(record)
	require.Len(t, director.Movies, 1)

	// Linking is a service concern, never the mapper's.
	assert.Nil(t, director.Movies[0].Director)
	assert.Nil(t, director.Movies[0].DirectorID)
}

func TestUpdateDirectorFromRecord_PreservesIdentityAndRelations(t *testing.T) {
	id := int64(7)
	record := &usecase.DirectorRecord{
		ID:         &id,
		FirstName:  "Quentin",
		LastName:   "Tarantino",
		OscarCount: 3,
	}

	studioID := int64(3)
	director := &entity.Director{
		ID:         7,
		Person:     entity.Person{FirstName: "Quentin", LastName: "Tarantino"},
		OscarCount: 2,
		StudioID:   &studioID,
		Movies:     []*entity.Movie{{ID: 100, Title: "Pulp Fiction"}},
	}

	UpdateDirectorFromRecord(record, director)

	assert.Equal(t, 3, director.OscarCount)
	assert.Equal(t, int64(7), director.ID)
	assert.Equal(t, &studioID, director.StudioID)
	assert.Len(t, director.Movies, 1)
}

func TestMovieToRecord_CopiesDirectorID(t *testing.T) {
	directorID := int64(7)
	movie := &entity.Movie{
		ID:         100,
		Title:      "Pulp Fiction",
		Genre:      entity.GenreThriller,
		Rating:     9.5,
		DirectorID: &directorID,
	}

	record := MovieToRecord(movie)
	require.NotNil(t, record.DirectorID)
	assert.Equal(t, int64(7), *record.DirectorID)

	// The pointer is copied by value so mutating the record cannot
	// reach the entity.
	*record.DirectorID = 999
	assert.Equal(t, int64(7), *movie.DirectorID)
}

func TestMovieFromRecord(t *testing.T) {
	id := int64(100)
	record := &usecase.MovieRecord{
		ID:          &id,
		Title:       "Pulp Fiction",
		ReleaseDate: usecase.NewDateTime(time.Date(1998, time.April, 15, 12, 12, 0, 0, time.UTC)),
		Genre:       "THRILLER",
		Rating:      9.5,
	}

	movie := MovieFromRecord(record)
	assert.Equal(t, int64(100), movie.ID)
	assert.Equal(t, entity.GenreThriller, movie.Genre)
	assert.InDelta(t, 9.5, movie.Rating, 0.001)
	assert.Nil(t, movie.Director)
}

func TestUpdateMovieFromRecord(t *testing.T) {
	directorID := int64(7)
	movie := &entity.Movie{
		ID:         100,
		Title:      "Pulp Fiction",
		Genre:      entity.GenreThriller,
		Rating:     9.0,
		DirectorID: &directorID,
	}

	record := &usecase.MovieRecord{
		Title:  "Pulp Fiction",
		Genre:  "DRAMA",
		Rating: 9.5,
	}

	UpdateMovieFromRecord(record, movie)

	assert.Equal(t, entity.GenreDrama, movie.Genre)
	assert.InDelta(t, 9.5, movie.Rating, 0.001)
	assert.Equal(t, int64(100), movie.ID)
	assert.Equal(t, &directorID, movie.DirectorID)
}

func TestStudioToRecord_NestedDirectors(t *testing.T) {
	studio := &entity.Studio{
		ID:          3,
		StudioName:  "A24",
		FoundedYear: 2012,
		Directors: []*entity.Director{
			{ID: 7, Person: entity.Person{FirstName: "Quentin", LastName: "Tarantino"}},
		},
	}

	record := StudioToRecord(studio)
	assert.Equal(t, "A24", record.StudioName)
	require.Len(t, record.DirectorList, 1)
	assert.Equal(t, "Tarantino", record.DirectorList[0].LastName)
}

func TestStudioFromRecord(t *testing.T) {
	record := &usecase.StudioRecord{
		StudioName:  "A24",
		FoundedYear: 2012,
		DirectorList: []usecase.DirectorRecord{
			{FirstName: "Quentin", LastName: "Tarantino"},
		},
	}

	studio := StudioFromRecord(record)
	assert.Equal(t, "A24", studio.StudioName)
	assert.Equal(t, 2012, studio.FoundedYear)
	require.Len(t, studio.Directors, 1)
	assert.Equal(t, "Tarantino", studio.Directors[0].LastName)
}

func TestUpdateStudioFromRecord_KeepsRoster(t *testing.T) {
	studio := &entity.Studio{
		ID:          3,
		StudioName:  "A24",
		FoundedYear: 2012,
		Directors:   []*entity.Director{{ID: 7}},
	}

	record := &usecase.StudioRecord{StudioName: "A24 Films", FoundedYear: 2013}

	UpdateStudioFromRecord(record, studio)

	assert.Equal(t, "A24 Films", studio.StudioName)
	assert.Equal(t, 2013, studio.FoundedYear)
	assert.Len(t, studio.Directors, 1)
}
