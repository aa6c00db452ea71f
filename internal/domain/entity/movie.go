package entity

import "time"

// Genre is the closed set of movie genres, stored by name.
type Genre string

const (
	GenreAction      Genre = "ACTION"
	GenreAdventure   Genre = "ADVENTURE"
	GenreAnimation   Genre = "ANIMATION"
	GenreComedy      Genre = "COMEDY"
	GenreDocumentary Genre = "DOCUMENTARY"
	GenreDrama       Genre = "DRAMA"
	GenreFantasy     Genre = "FANTASY"
	GenreHorror      Genre = "HORROR"
	GenreRomance     Genre = "ROMANCE"
	GenreSciFi       Genre = "SCIFI"
	GenreThriller    Genre = "THRILLER"
)

// String returns the string representation of the Genre.
func (g Genre) String() string {
	return string(g)
}

// IsValid checks if the Genre is a valid value.
func (g Genre) IsValid() bool {
	switch g {
	case GenreAction, GenreAdventure, GenreAnimation, GenreComedy,
		GenreDocumentary, GenreDrama, GenreFantasy, GenreHorror,
		GenreRomance, GenreSciFi, GenreThriller:
		return true
	default:
		return false
	}
}

// Movie is a single movie in the catalog. A movie has at most one
// director; DirectorID is the owning side of the relation.
type Movie struct {
	ID          int64
	Title       string
	ReleaseDate time.Time
	Genre       Genre
	Rating      float64

	DirectorID *int64
	Director   *Director
}
