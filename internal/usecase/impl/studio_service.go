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

type studioService struct {
	txManager  repository.TransactionManager
	studioRepo repository.StudioRepository
	logger     *slog.Logger
}

// StudioServiceParams holds dependencies for studioService, injected by Fx.
type StudioServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	StudioRepo repository.StudioRepository
	Logger     *slog.Logger
}

// NewStudioService is the constructor for studioService.
func NewStudioService(params StudioServiceParams) usecase.StudioUsecase {
	return &studioService{
		txManager:  params.TxManager,
		studioRepo: params.StudioRepo,
		logger:     params.Logger,
	}
}

func (srv *studioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new studio. Studio names are unique; a taken name is a
// conflict. The pre-check keeps the common case friendly, the unique index
// catches the race at commit time.
func (srv *studioService) Create(ctx context.Context, record *usecase.StudioRecord) (*usecase.StudioRecord, error) {
	var created *usecase.StudioRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studioRepo := repoFactory.StudioRepo()

		existing, err := studioRepo.FindByStudioName(ctx, record.StudioName)
		if err == nil {
			return domainerrors.NewAlreadyExists("studio", existing.StudioName)
		}
		if !errors.Is(err, repository.ErrStudioNotFound) {
			return errors.Wrap(err, "failed to find studio by name")
		}

		studio := mapper.StudioFromRecord(record)
		studio.ID = 0

		if err := studioRepo.Save(ctx, studio); err != nil {
			return errors.Wrap(err, "failed to save studio")
		}

		created = mapper.StudioToRecord(studio)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("studio created", slog.Int64("id", *created.ID))

	return created, nil
}

// FindByID returns the studio record, or absent when the id is unknown.
func (srv *studioService) FindByID(ctx context.Context, id int64) (usecase.Optional[usecase.StudioRecord], error) {
	studio, err := srv.studioRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudioNotFound) {
			return usecase.None[usecase.StudioRecord](), nil
		}

		return usecase.None[usecase.StudioRecord](), errors.Wrap(err, "failed to find studio by id")
	}

	return usecase.Some(*mapper.StudioToRecord(studio)), nil
}

// FindAll returns every studio in storage order.
func (srv *studioService) FindAll(ctx context.Context) ([]usecase.StudioRecord, error) {
	studios, err := srv.studioRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all studios")
	}

	records := make([]usecase.StudioRecord, 0, len(studios))
	for _, s := range studios {
		records = append(records, *mapper.StudioToRecord(s))
	}

	return records, nil
}

// FindByStudioName returns the studio holding the exact name, or absent.
func (srv *studioService) FindByStudioName(ctx context.Context, name string) (usecase.Optional[usecase.StudioRecord], error) {
	studio, err := srv.studioRepo.FindByStudioName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrStudioNotFound) {
			return usecase.None[usecase.StudioRecord](), nil
		}

		return usecase.None[usecase.StudioRecord](), errors.Wrap(err, "failed to find studio by name")
	}

	return usecase.Some(*mapper.StudioToRecord(studio)), nil
}

// Update applies the record's fields to the stored studio. Renaming onto a
// name held by a different studio is a conflict.
func (srv *studioService) Update(ctx context.Context, record *usecase.StudioRecord) (usecase.Optional[usecase.StudioRecord], error) {
	if record.ID == nil {
		return usecase.None[usecase.StudioRecord](), nil
	}

	result := usecase.None[usecase.StudioRecord]()
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studioRepo := repoFactory.StudioRepo()

		studio, err := studioRepo.FindByID(ctx, *record.ID)
		if err != nil {
			if errors.Is(err, repository.ErrStudioNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find studio by id")
		}

		if record.StudioName != studio.StudioName {
			holder, err := studioRepo.FindByStudioName(ctx, record.StudioName)
			if err == nil && holder.ID != studio.ID {
				return domainerrors.NewAlreadyExists("studio", holder.StudioName)
			}
			if err != nil && !errors.Is(err, repository.ErrStudioNotFound) {
				return errors.Wrap(err, "failed to find studio by name")
			}
		}

		mapper.UpdateStudioFromRecord(record, studio)
		if err := studioRepo.Save(ctx, studio); err != nil {
			return errors.Wrap(err, "failed to save studio")
		}

		result = usecase.Some(*mapper.StudioToRecord(studio))

		return nil
	})
	if err != nil {
		return usecase.None[usecase.StudioRecord](), err
	}

	return result, nil
}

// Delete removes the studio, reporting false when the id is unknown.
func (srv *studioService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studioRepo := repoFactory.StudioRepo()

		if _, err := studioRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrStudioNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find studio by id")
		}

		if err := studioRepo.DeleteByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete studio")
		}

		deleted = true
		srv.log(ctx).Info("studio deleted", slog.Int64("id", id))

		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// AddDirector attaches an existing director to the studio's roster and
// returns the refreshed studio record.
func (srv *studioService) AddDirector(ctx context.Context, studioID, directorID int64) (*usecase.StudioRecord, error) {
	var updated *usecase.StudioRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studioRepo := repoFactory.StudioRepo()
		directorRepo := repoFactory.DirectorRepo()

		studio, err := studioRepo.FindByID(ctx, studioID)
		if err != nil {
			if errors.Is(err, repository.ErrStudioNotFound) {
				return domainerrors.NewNotFound("studio", studioID)
			}

			return errors.Wrap(err, "failed to find studio by id")
		}

		director, err := directorRepo.FindByID(ctx, directorID)
		if err != nil {
			if errors.Is(err, repository.ErrDirectorNotFound) {
				return domainerrors.NewNotFound("director", directorID)
			}

			return errors.Wrap(err, "failed to find director by id")
		}

		studio.AddDirector(director)
		if err := directorRepo.Save(ctx, director); err != nil {
			return errors.Wrap(err, "failed to save director")
		}

		updated = mapper.StudioToRecord(studio)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("director linked to studio",
		slog.Int64("studioId", studioID),
		slog.Int64("directorId", directorID),
	)

	return updated, nil
}
