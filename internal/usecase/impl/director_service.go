// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "backlot/internal/delivery/context"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/errors"
	"backlot/internal/usecase"
	"backlot/internal/usecase/mapper"

	"go.uber.org/fx"
)

// directorService implements the DirectorUsecase interface.
type directorService struct {
	txManager    repository.TransactionManager
	directorRepo repository.DirectorRepository
	logger       *slog.Logger
}

// DirectorServiceParams holds dependencies for directorService, injected by Fx.
type DirectorServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DirectorRepo repository.DirectorRepository
	Logger       *slog.Logger
}

// NewDirectorService is the constructor for directorService.
func NewDirectorService(params DirectorServiceParams) usecase.DirectorUsecase {
	return &directorService{
		txManager:    params.TxManager,
		directorRepo: params.DirectorRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *directorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new director together with any nested movies.
func (srv *directorService) Create(ctx context.Context, record *usecase.DirectorRecord) (*usecase.DirectorRecord, error) {
	var created *usecase.DirectorRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		director := mapper.DirectorFromRecord(record)
		director.ID = 0 // identity is assigned by the store, never by the caller

		if err := repoFactory.DirectorRepo().Save(ctx, director); err != nil {
			return errors.Wrap(err, "failed to save director")
		}

		// Mappers do not link back-references; fix both directions now
		// that the identity is known.
		director.LinkMovies()

		created = mapper.DirectorToRecord(director)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("director created", slog.Int64("id", *created.ID))

	return created, nil
}

// FindByID returns the director record, or absent when the id is unknown.
func (srv *directorService) FindByID(ctx context.Context, id int64) (usecase.Optional[usecase.DirectorRecord], error) {
	director, err := srv.directorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDirectorNotFound) {
			return usecase.None[usecase.DirectorRecord](), nil
		}

		return usecase.None[usecase.DirectorRecord](), errors.Wrap(err, "failed to find director by id")
	}

	return usecase.Some(*mapper.DirectorToRecord(director)), nil
}

// FindAll returns every director in storage order.
func (srv *directorService) FindAll(ctx context.Context) ([]usecase.DirectorRecord, error) {
	directors, err := srv.directorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all directors")
	}

	records := make([]usecase.DirectorRecord, 0, len(directors))
	for _, d := range directors {
		records = append(records, *mapper.DirectorToRecord(d))
	}

	return records, nil
}

// FindByNames returns the director matching both names, or absent.
func (srv *directorService) FindByNames(ctx context.Context, firstName, lastName string) (usecase.Optional[usecase.DirectorRecord], error) {
	director, err := srv.directorRepo.FindByFirstNameAndLastName(ctx, firstName, lastName)
	if err != nil {
		if errors.Is(err, repository.ErrDirectorNotFound) {
			return usecase.None[usecase.DirectorRecord](), nil
		}

		return usecase.None[usecase.DirectorRecord](), errors.Wrap(err, "failed to find director by names")
	}

	return usecase.Some(*mapper.DirectorToRecord(director)), nil
}

// Update applies the record's fields to the stored director. It never
// creates and never changes identity.
func (srv *directorService) Update(ctx context.Context, record *usecase.DirectorRecord) (usecase.Optional[usecase.DirectorRecord], error) {
	if record.ID == nil {
		return usecase.None[usecase.DirectorRecord](), nil
	}

	result := usecase.None[usecase.DirectorRecord]()
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		directorRepo := repoFactory.DirectorRepo()

		director, err := directorRepo.FindByID(ctx, *record.ID)
		if err != nil {
			if errors.Is(err, repository.ErrDirectorNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find director by id")
		}

		mapper.UpdateDirectorFromRecord(record, director)
		if err := directorRepo.Save(ctx, director); err != nil {
			return errors.Wrap(err, "failed to save director")
		}

		result = usecase.Some(*mapper.DirectorToRecord(director))

		return nil
	})
	if err != nil {
		return usecase.None[usecase.DirectorRecord](), err
	}

	return result, nil
}

// Delete removes the director, reporting false when the id is unknown.
func (srv *directorService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		directorRepo := repoFactory.DirectorRepo()

		if _, err := directorRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrDirectorNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find director by id")
		}

		if err := directorRepo.DeleteByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete director")
		}

		deleted = true
		srv.log(ctx).Info("director deleted", slog.Int64("id", id))

		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// AddFilmToDirector creates the movie and links it to the director on both
// sides of the relation, inside a single transactional scope.
func (srv *directorService) AddFilmToDirector(ctx context.Context, directorID int64, record *usecase.MovieRecord) (*usecase.MovieRecord, error) {
	var added *usecase.MovieRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		directorRepo := repoFactory.DirectorRepo()

		director, err := directorRepo.FindByID(ctx, directorID)
		if err != nil {
			if errors.Is(err, repository.ErrDirectorNotFound) {
				return domainerrors.NewNotFound("director", directorID)
			}

			return errors.Wrap(err, "failed to find director by id")
		}

		movie := mapper.MovieFromRecord(record)
		movie.ID = 0
		id := director.ID
		movie.DirectorID = &id

		if err := repoFactory.MovieRepo().Save(ctx, movie); err != nil {
			return errors.Wrap(err, "failed to save movie")
		}

		// Both directions of the relation must agree before the
		// aggregate is saved.
		director.AddMovie(movie)
		if err := directorRepo.Save(ctx, director); err != nil {
			return errors.Wrap(err, "failed to save director")
		}

		added = mapper.MovieToRecord(movie)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("movie linked to director",
		slog.Int64("directorId", directorID),
		slog.Int64("movieId", *added.ID),
	)

	return added, nil
}
