package usecase

import "context"

// MovieUsecase defines the movie use cases.
type MovieUsecase interface {
	Create(ctx context.Context, record *MovieRecord) (*MovieRecord, error)

	FindByID(ctx context.Context, id int64) (Optional[MovieRecord], error)

	FindAll(ctx context.Context) ([]MovieRecord, error)

	// FindByTitle returns all movies with the exact title, in storage order.
	FindByTitle(ctx context.Context, title string) ([]MovieRecord, error)

	Update(ctx context.Context, record *MovieRecord) (Optional[MovieRecord], error)

	Delete(ctx context.Context, id int64) (bool, error)
}
