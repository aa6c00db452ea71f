package postgres

import (
	"context"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studioRepository implements the repository.StudioRepository interface.
type studioRepository struct {
	db *gorm.DB
}

// NewStudioRepository is the constructor for studioRepository.
func NewStudioRepository(db *gorm.DB) repository.StudioRepository {
	return &studioRepository{
		db: db,
	}
}

// Save persists the studio. The unique index on studio_name is the final
// arbiter for name collisions: a racing insert that slips past the service's
// pre-check still comes back as the same conflict error.
func (repo *studioRepository) Save(ctx context.Context, studio *entity.Studio) error {
	studioM := fromStudioDomain(studio)

	if err := repo.db.WithContext(ctx).Omit("Directors").Save(studioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewAlreadyExists("studio", studio.StudioName)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required studio fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save studio")
	}

	studio.ID = studioM.ID

	return nil
}

// FindByID retrieves a studio with its director roster.
func (repo *studioRepository) FindByID(ctx context.Context, id int64) (*entity.Studio, error) {
	var studioM model.StudioModel

	if err := repo.db.WithContext(ctx).
		Preload("Directors.Movies").
		Preload("Directors").
		Where("id = ?", id).
		First(&studioM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudioNotFound
		}

		return nil, errors.Wrap(err, "failed to find studio by ID")
	}

	return toStudioDomain(&studioM), nil
}

// FindAll retrieves every studio with its roster, in identity order.
func (repo *studioRepository) FindAll(ctx context.Context) ([]*entity.Studio, error) {
	var studioModels []*model.StudioModel

	if err := repo.db.WithContext(ctx).
		Preload("Directors.Movies").
		Preload("Directors").
		Order("id ASC").
		Find(&studioModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all studios")
	}

	studios := make([]*entity.Studio, 0, len(studioModels))
	for _, studioM := range studioModels {
		studios = append(studios, toStudioDomain(studioM))
	}

	return studios, nil
}

// FindByStudioName retrieves the studio holding the exact name.
func (repo *studioRepository) FindByStudioName(ctx context.Context, name string) (*entity.Studio, error) {
	var studioM model.StudioModel

	if err := repo.db.WithContext(ctx).
		Preload("Directors.Movies").
		Preload("Directors").
		Where("studio_name = ?", name).
		First(&studioM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudioNotFound
		}

		return nil, errors.Wrap(err, "failed to find studio by name")
	}

	return toStudioDomain(&studioM), nil
}

// DeleteByID removes a studio. Directors on the roster keep their rows with
// the studio reference cleared.
func (repo *studioRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.DirectorModel{}).
		Where("studio_id = ?", id).
		Update("studio_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach directors from studio")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StudioModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete studio")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStudioNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStudioDomain converts a GORM StudioModel to a domain Studio entity.
func toStudioDomain(data *model.StudioModel) *entity.Studio {
	if data == nil {
		return nil
	}

	studio := &entity.Studio{
		ID:          data.ID,
		StudioName:  data.StudioName,
		FoundedYear: data.FoundedYear,
	}

	if len(data.Directors) > 0 {
		studio.Directors = make([]*entity.Director, 0, len(data.Directors))
		for _, directorM := range data.Directors {
			studio.Directors = append(studio.Directors, toDirectorDomain(directorM))
		}
	}

	return studio
}

// fromStudioDomain converts a domain Studio entity to a GORM StudioModel.
// The roster is written through the directors' studio_id column, never
// through this model, so Directors stays empty here.
func fromStudioDomain(data *entity.Studio) *model.StudioModel {
	if data == nil {
		return nil
	}

	return &model.StudioModel{
		ID:          data.ID,
		StudioName:  data.StudioName,
		FoundedYear: data.FoundedYear,
	}
}
