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

// directorRepository implements the repository.DirectorRepository interface.
type directorRepository struct {
	db *gorm.DB
}

// NewDirectorRepository is the constructor for directorRepository.
func NewDirectorRepository(db *gorm.DB) repository.DirectorRepository {
	return &directorRepository{
		db: db,
	}
}

// Save persists the director, inserting when the identity is zero and
// updating otherwise. Nested movies are written through the association, so
// a create with movies lands both in one statement batch. Generated
// identities are copied back onto the entity.
func (repo *directorRepository) Save(ctx context.Context, director *entity.Director) error {
	directorM := fromDirectorDomain(director)

	if err := repo.db.WithContext(ctx).Save(directorM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid studio reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required director fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save director")
	}

	director.ID = directorM.ID
	for i, movieM := range directorM.Movies {
		if i < len(director.Movies) {
			director.Movies[i].ID = movieM.ID
		}
	}

	return nil
}

// FindByID retrieves a director with its movies.
func (repo *directorRepository) FindByID(ctx context.Context, id int64) (*entity.Director, error) {
	var directorM model.DirectorModel

	if err := repo.db.WithContext(ctx).
		Preload("Movies").
		Where("id = ?", id).
		First(&directorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDirectorNotFound
		}

		return nil, errors.Wrap(err, "failed to find director by ID")
	}

	return toDirectorDomain(&directorM), nil
}

// FindAll retrieves every director with its movies, in identity order.
func (repo *directorRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	var directorModels []*model.DirectorModel

	if err := repo.db.WithContext(ctx).
		Preload("Movies").
		Order("id ASC").
		Find(&directorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all directors")
	}

	directors := make([]*entity.Director, 0, len(directorModels))
	for _, directorM := range directorModels {
		directors = append(directors, toDirectorDomain(directorM))
	}

	return directors, nil
}

// FindByFirstNameAndLastName retrieves the director matching both names.
func (repo *directorRepository) FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) (*entity.Director, error) {
	var directorM model.DirectorModel

	if err := repo.db.WithContext(ctx).
		Preload("Movies").
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		First(&directorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDirectorNotFound
		}

		return nil, errors.Wrap(err, "failed to find director by names")
	}

	return toDirectorDomain(&directorM), nil
}

// DeleteByID removes a director. Owned movies keep their rows; the foreign
// key column is cleared first so the delete cannot orphan a reference.
func (repo *directorRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Where("director_id = ?", id).
		Update("director_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach movies from director")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DirectorModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete director")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDirectorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDirectorDomain converts a GORM DirectorModel to a domain Director entity.
func toDirectorDomain(data *model.DirectorModel) *entity.Director {
	if data == nil {
		return nil
	}

	director := &entity.Director{
		ID: data.ID,
		Person: entity.Person{
			FirstName: data.FirstName,
			LastName:  data.LastName,
			BirthDate: data.BirthDate,
		},
		OscarCount: data.OscarCount,
		StudioID:   data.StudioID,
	}

	if len(data.Movies) > 0 {
		director.Movies = make([]*entity.Movie, 0, len(data.Movies))
		for _, movieM := range data.Movies {
			director.Movies = append(director.Movies, toMovieDomain(movieM))
		}
		director.LinkMovies()
	}

	return director
}

// fromDirectorDomain converts a domain Director entity to a GORM DirectorModel.
func fromDirectorDomain(data *entity.Director) *model.DirectorModel {
	if data == nil {
		return nil
	}

	directorM := &model.DirectorModel{
		ID:         data.ID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		BirthDate:  data.BirthDate,
		OscarCount: data.OscarCount,
		StudioID:   data.StudioID,
	}

	if len(data.Movies) > 0 {
		directorM.Movies = make([]*model.MovieModel, 0, len(data.Movies))
		for _, movie := range data.Movies {
			directorM.Movies = append(directorM.Movies, fromMovieDomain(movie))
		}
	}

	return directorM
}
