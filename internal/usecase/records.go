// Package usecase declares the application's use case interfaces and the
// transport records they exchange with the HTTP boundary.
package usecase

// DirectorRecord is the wire representation of a director. The nested
// moviesRecord collection is translated by the mapper; back-references are
// never serialized.
type DirectorRecord struct {
	ID           *int64        `json:"id"`
	FirstName    string        `json:"firstName" validate:"required,notblank"`
	LastName     string        `json:"lastName" validate:"required,notblank"`
	BirthDate    DateOnly      `json:"birthDate"`
	OscarCount   int           `json:"oscarCount" validate:"gte=0"`
	MoviesRecord []MovieRecord `json:"moviesRecord" validate:"omitempty,dive"`
}

// MovieRecord is the wire representation of a movie. The many-to-one
// director relation is carried as the parent's identity only.
type MovieRecord struct {
	ID          *int64   `json:"id"`
	Title       string   `json:"title" validate:"required,notblank"`
	ReleaseDate DateTime `json:"releaseDate"`
	Genre       string   `json:"genre" validate:"required,genre"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=10"`
	DirectorID  *int64   `json:"directorId"`
}

// StudioRecord is the wire representation of a studio.
type StudioRecord struct {
	ID           *int64           `json:"id"`
	StudioName   string           `json:"studioName" validate:"required,notblank"`
	FoundedYear  int              `json:"studioFoundedYear"`
	DirectorList []DirectorRecord `json:"directorList" validate:"omitempty,dive"`
}
