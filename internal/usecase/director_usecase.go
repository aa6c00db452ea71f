package usecase

import "context"

// DirectorUsecase defines the director use cases. Mutating operations run
// inside a transactional scope; lookups that may find nothing return an
// Optional and never error on absence.
type DirectorUsecase interface {
	// Create validates and persists a new director, returning the record
	// with its assigned identity.
	Create(ctx context.Context, record *DirectorRecord) (*DirectorRecord, error)

	// FindByID returns the director record, or absent when the id is unknown.
	FindByID(ctx context.Context, id int64) (Optional[DirectorRecord], error)

	// FindAll returns every director in storage order.
	FindAll(ctx context.Context) ([]DirectorRecord, error)

	// FindByNames returns the director matching both names, or absent.
	FindByNames(ctx context.Context, firstName, lastName string) (Optional[DirectorRecord], error)

	// Update applies the record's fields to the stored director. Absent
	// when the record's id is unknown; Update never creates and never
	// changes identity.
	Update(ctx context.Context, record *DirectorRecord) (Optional[DirectorRecord], error)

	// Delete removes the director. It returns false when the id is
	// unknown, making retries observable as not-found.
	Delete(ctx context.Context, id int64) (bool, error)

	// AddFilmToDirector creates the movie and links it to the director on
	// both sides of the relation. The returned record carries the
	// director's id.
	AddFilmToDirector(ctx context.Context, directorID int64, record *MovieRecord) (*MovieRecord, error)
}
