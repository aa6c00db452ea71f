package usecase

import "context"

// StudioUsecase defines the studio use cases.
type StudioUsecase interface {
	// Create persists a new studio. Duplicate names fail with a conflict
	// AppError, whether caught by the advisory pre-check or by the
	// store's unique index at commit time.
	Create(ctx context.Context, record *StudioRecord) (*StudioRecord, error)

	FindByID(ctx context.Context, id int64) (Optional[StudioRecord], error)

	FindAll(ctx context.Context) ([]StudioRecord, error)

	FindByStudioName(ctx context.Context, name string) (Optional[StudioRecord], error)

	Update(ctx context.Context, record *StudioRecord) (Optional[StudioRecord], error)

	Delete(ctx context.Context, id int64) (bool, error)

	// AddDirector appends an existing director to the studio's list and
	// returns the refreshed studio record. Either side missing fails
	// with a NotFound AppError naming the missing resource.
	AddDirector(ctx context.Context, studioID, directorID int64) (*StudioRecord, error)
}
