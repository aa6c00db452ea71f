package repository

import (
	"context"

	"backlot/internal/domain/entity"
	"backlot/internal/errors"
)

// ErrMovieNotFound is returned when a movie lookup matches no row.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository is the persistence port for the movie aggregate.
type MovieRepository interface {
	Save(ctx context.Context, movie *entity.Movie) error

	// FindByID returns ErrMovieNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)

	// FindAll returns every movie in insertion order.
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	DeleteByID(ctx context.Context, id int64) error

	// FindByTitle returns the movies carrying the exact title, in
	// insertion order. Titles are not unique.
	FindByTitle(ctx context.Context, title string) ([]*entity.Movie, error)
}
