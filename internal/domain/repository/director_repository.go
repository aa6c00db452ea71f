// Package repository defines the persistence ports the services depend on.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"backlot/internal/domain/entity"
	"backlot/internal/errors"
)

// ErrDirectorNotFound is returned when a director lookup matches no row.
var ErrDirectorNotFound = errors.New("director not found")

// DirectorRepository is the persistence port for the director aggregate.
type DirectorRepository interface {
	// Save inserts the director when its ID is zero, assigning the
	// identity, and updates it otherwise. Owned associations are
	// persisted with the aggregate.
	Save(ctx context.Context, director *entity.Director) error

	// FindByID returns ErrDirectorNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*entity.Director, error)

	// FindAll returns every director in insertion order.
	FindAll(ctx context.Context) ([]*entity.Director, error)

	// DeleteByID removes the director row; deleting a missing id is a no-op.
	DeleteByID(ctx context.Context, id int64) error

	// FindByFirstNameAndLastName returns ErrDirectorNotFound when no row matches.
	FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) (*entity.Director, error)
}
