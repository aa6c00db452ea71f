// Package mapper translates between transport records and domain entities.
// Mappers are pure: no persistence lookups, no side effects. They translate
// nested collections but never re-link back-references and never resolve
// ids to entities; both are service responsibilities.
package mapper

import (
	"backlot/internal/domain/entity"
	"backlot/internal/usecase"
)

// DirectorToRecord converts a director entity to its transport record.
func DirectorToRecord(d *entity.Director) *usecase.DirectorRecord {
	if d == nil {
		return nil
	}

	var movies []usecase.MovieRecord
	if d.Movies != nil {
		movies = make([]usecase.MovieRecord, 0, len(d.Movies))
		for _, m := range d.Movies {
			movies = append(movies, *MovieToRecord(m))
		}
	}

	return &usecase.DirectorRecord{
		ID:           idRef(d.ID),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		BirthDate:    usecase.NewDateOnly(d.BirthDate),
		OscarCount:   d.OscarCount,
		MoviesRecord: movies,
	}
}

// DirectorFromRecord converts a transport record to a director entity.
// The movies' Director back-references are left nil.
func DirectorFromRecord(r *usecase.DirectorRecord) *entity.Director {
	if r == nil {
		return nil
	}

	var movies []*entity.Movie
	if r.MoviesRecord != nil {
		movies = make([]*entity.Movie, 0, len(r.MoviesRecord))
		for i := range r.MoviesRecord {
			movies = append(movies, MovieFromRecord(&r.MoviesRecord[i]))
		}
	}

	return &entity.Director{
		ID: idVal(r.ID),
		Person: entity.Person{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			BirthDate: r.BirthDate.Time,
		},
		OscarCount: r.OscarCount,
		Movies:     movies,
	}
}

// UpdateDirectorFromRecord applies the record's value fields to an existing
// entity in place. Identity and relationships are never touched here.
func UpdateDirectorFromRecord(r *usecase.DirectorRecord, d *entity.Director) {
	d.FirstName = r.FirstName
	d.LastName = r.LastName
	d.BirthDate = r.BirthDate.Time
	d.OscarCount = r.OscarCount
}

// MovieToRecord converts a movie entity to its transport record. The
// record carries the director's identity only, never the parent itself.
func MovieToRecord(m *entity.Movie) *usecase.MovieRecord {
	if m == nil {
		return nil
	}

	var directorID *int64
	if m.DirectorID != nil {
		id := *m.DirectorID
		directorID = &id
	}

	return &usecase.MovieRecord{
		ID:          idRef(m.ID),
		Title:       m.Title,
		ReleaseDate: usecase.NewDateTime(m.ReleaseDate),
		Genre:       m.Genre.String(),
		Rating:      m.Rating,
		DirectorID:  directorID,
	}
}

// MovieFromRecord converts a transport record to a movie entity. The
// Director field stays nil; services resolve the id before persisting.
func MovieFromRecord(r *usecase.MovieRecord) *entity.Movie {
	if r == nil {
		return nil
	}

	var directorID *int64
	if r.DirectorID != nil {
		id := *r.DirectorID
		directorID = &id
	}

	return &entity.Movie{
		ID:          idVal(r.ID),
		Title:       r.Title,
		ReleaseDate: r.ReleaseDate.Time,
		Genre:       entity.Genre(r.Genre),
		Rating:      r.Rating,
		DirectorID:  directorID,
	}
}

// UpdateMovieFromRecord applies the record's value fields to an existing
// entity in place.
func UpdateMovieFromRecord(r *usecase.MovieRecord, m *entity.Movie) {
	m.Title = r.Title
	m.ReleaseDate = r.ReleaseDate.Time
	m.Genre = entity.Genre(r.Genre)
	m.Rating = r.Rating
}

// StudioToRecord converts a studio entity to its transport record.
func StudioToRecord(s *entity.Studio) *usecase.StudioRecord {
	if s == nil {
		return nil
	}

	var directors []usecase.DirectorRecord
	if s.Directors != nil {
		directors = make([]usecase.DirectorRecord, 0, len(s.Directors))
		for _, d := range s.Directors {
			directors = append(directors, *DirectorToRecord(d))
		}
	}

	return &usecase.StudioRecord{
		ID:           idRef(s.ID),
		StudioName:   s.StudioName,
		FoundedYear:  s.FoundedYear,
		DirectorList: directors,
	}
}

// StudioFromRecord converts a transport record to a studio entity.
func StudioFromRecord(r *usecase.StudioRecord) *entity.Studio {
	if r == nil {
		return nil
	}

	var directors []*entity.Director
	if r.DirectorList != nil {
		directors = make([]*entity.Director, 0, len(r.DirectorList))
		for i := range r.DirectorList {
			directors = append(directors, DirectorFromRecord(&r.DirectorList[i]))
		}
	}

	return &entity.Studio{
		ID:          idVal(r.ID),
		StudioName:  r.StudioName,
		FoundedYear: r.FoundedYear,
		Directors:   directors,
	}
}

// UpdateStudioFromRecord applies the record's value fields to an existing
// entity in place.
func UpdateStudioFromRecord(r *usecase.StudioRecord, s *entity.Studio) {
	s.StudioName = r.StudioName
	s.FoundedYear = r.FoundedYear
}

// idRef converts a stored identity to its wire form; unassigned identities
// travel as null.
func idRef(id int64) *int64 {
	if id == 0 {
		return nil
	}

	return &id
}

func idVal(id *int64) int64 {
	if id == nil {
		return 0
	}

	return *id
}
