package repository

import (
	"context"

	"backlot/internal/domain/entity"
	"backlot/internal/errors"
)

// ErrStudioNotFound is returned when a studio lookup matches no row.
var ErrStudioNotFound = errors.New("studio not found")

// StudioRepository is the persistence port for the studio aggregate.
type StudioRepository interface {
	// Save persists the studio and its director list. The underlying
	// store enforces uniqueness of studio_name; a duplicate surfaces as
	// a conflict AppError even when the service pre-check passed.
	Save(ctx context.Context, studio *entity.Studio) error

	// FindByID returns ErrStudioNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*entity.Studio, error)

	// FindAll returns every studio in insertion order.
	FindAll(ctx context.Context) ([]*entity.Studio, error)

	DeleteByID(ctx context.Context, id int64) error

	// FindByStudioName returns ErrStudioNotFound when no row matches.
	// Names are unique, so at most one row can match.
	FindByStudioName(ctx context.Context, name string) (*entity.Studio, error)
}
