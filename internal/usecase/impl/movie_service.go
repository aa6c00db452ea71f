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

type movieService struct {
	txManager    repository.TransactionManager
	movieRepo    repository.MovieRepository
	directorRepo repository.DirectorRepository
	logger       *slog.Logger
}

// MovieServiceParams holds dependencies for movieService, injected by Fx.
type MovieServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MovieRepo    repository.MovieRepository
	DirectorRepo repository.DirectorRepository
	Logger       *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(params MovieServiceParams) usecase.MovieUsecase {
	return &movieService{
		txManager:    params.TxManager,
		movieRepo:    params.MovieRepo,
		directorRepo: params.DirectorRepo,
		logger:       params.Logger,
	}
}

func (srv *movieService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new movie. A referenced director must already exist.
func (srv *movieService) Create(ctx context.Context, record *usecase.MovieRecord) (*usecase.MovieRecord, error) {
	var created *usecase.MovieRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		movie := mapper.MovieFromRecord(record)
		movie.ID = 0

		if movie.DirectorID != nil {
			if _, err := repoFactory.DirectorRepo().FindByID(ctx, *movie.DirectorID); err != nil {
				if errors.Is(err, repository.ErrDirectorNotFound) {
					return domainerrors.NewNotFound("director", *movie.DirectorID)
				}

				return errors.Wrap(err, "failed to find director by id")
			}
		}

		if err := repoFactory.MovieRepo().Save(ctx, movie); err != nil {
			return errors.Wrap(err, "failed to save movie")
		}

		created = mapper.MovieToRecord(movie)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("movie created", slog.Int64("id", *created.ID))

	return created, nil
}

// FindByID returns the movie record, or absent when the id is unknown.
func (srv *movieService) FindByID(ctx context.Context, id int64) (usecase.Optional[usecase.MovieRecord], error) {
	movie, err := srv.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return usecase.None[usecase.MovieRecord](), nil
		}

		return usecase.None[usecase.MovieRecord](), errors.Wrap(err, "failed to find movie by id")
	}

	return usecase.Some(*mapper.MovieToRecord(movie)), nil
}

// FindAll returns every movie in storage order.
func (srv *movieService) FindAll(ctx context.Context) ([]usecase.MovieRecord, error) {
	movies, err := srv.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all movies")
	}

	records := make([]usecase.MovieRecord, 0, len(movies))
	for _, m := range movies {
		records = append(records, *mapper.MovieToRecord(m))
	}

	return records, nil
}

// FindByTitle returns all movies carrying the exact title. Titles are not
// unique, so the result is a list.
func (srv *movieService) FindByTitle(ctx context.Context, title string) ([]usecase.MovieRecord, error) {
	movies, err := srv.movieRepo.FindByTitle(ctx, title)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find movies by title")
	}

	records := make([]usecase.MovieRecord, 0, len(movies))
	for _, m := range movies {
		records = append(records, *mapper.MovieToRecord(m))
	}

	return records, nil
}

// Update applies the record's fields to the stored movie.
func (srv *movieService) Update(ctx context.Context, record *usecase.MovieRecord) (usecase.Optional[usecase.MovieRecord], error) {
	if record.ID == nil {
		return usecase.None[usecase.MovieRecord](), nil
	}

	result := usecase.None[usecase.MovieRecord]()
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		movieRepo := repoFactory.MovieRepo()

		movie, err := movieRepo.FindByID(ctx, *record.ID)
		if err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find movie by id")
		}

		mapper.UpdateMovieFromRecord(record, movie)

		if movie.DirectorID != nil {
			if _, err := repoFactory.DirectorRepo().FindByID(ctx, *movie.DirectorID); err != nil {
				if errors.Is(err, repository.ErrDirectorNotFound) {
					return domainerrors.NewNotFound("director", *movie.DirectorID)
				}

				return errors.Wrap(err, "failed to find director by id")
			}
		}

		if err := movieRepo.Save(ctx, movie); err != nil {
			return errors.Wrap(err, "failed to save movie")
		}

		result = usecase.Some(*mapper.MovieToRecord(movie))

		return nil
	})
	if err != nil {
		return usecase.None[usecase.MovieRecord](), err
	}

	return result, nil
}

// Delete removes the movie, reporting false when the id is unknown.
func (srv *movieService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		movieRepo := repoFactory.MovieRepo()

		if _, err := movieRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find movie by id")
		}

		if err := movieRepo.DeleteByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete movie")
		}

		deleted = true
		srv.log(ctx).Info("movie deleted", slog.Int64("id", id))

		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}
