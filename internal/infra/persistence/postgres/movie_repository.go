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

// movieRepository implements the repository.MovieRepository interface.
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{
		db: db,
	}
}

// Save persists the movie, inserting when the identity is zero and updating
// otherwise. The generated identity is copied back onto the entity.
func (repo *movieRepository) Save(ctx context.Context, movie *entity.Movie) error {
	movieM := fromMovieDomain(movie)

	if err := repo.db.WithContext(ctx).Save(movieM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid director reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required movie fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save movie")
	}

	movie.ID = movieM.ID

	return nil
}

// FindByID retrieves a movie by its identity.
func (repo *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	var movieM model.MovieModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&movieM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, errors.Wrap(err, "failed to find movie by ID")
	}

	return toMovieDomain(&movieM), nil
}

// FindAll retrieves every movie in identity order.
func (repo *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var movieModels []*model.MovieModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&movieModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all movies")
	}

	movies := make([]*entity.Movie, 0, len(movieModels))
	for _, movieM := range movieModels {
		movies = append(movies, toMovieDomain(movieM))
	}

	return movies, nil
}

// FindByTitle retrieves all movies with the exact title. Titles are not
// unique, so several rows can match.
func (repo *movieRepository) FindByTitle(ctx context.Context, title string) ([]*entity.Movie, error) {
	var movieModels []*model.MovieModel

	if err := repo.db.WithContext(ctx).
		Where("title = ?", title).
		Order("id ASC").
		Find(&movieModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find movies by title")
	}

	movies := make([]*entity.Movie, 0, len(movieModels))
	for _, movieM := range movieModels {
		movies = append(movies, toMovieDomain(movieM))
	}

	return movies, nil
}

// DeleteByID removes a movie by its identity.
func (repo *movieRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MovieModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete movie")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMovieDomain converts a GORM MovieModel to a domain Movie entity. The
// back-reference to the director stays nil; linking is the caller's call.
func toMovieDomain(data *model.MovieModel) *entity.Movie {
	if data == nil {
		return nil
	}

	return &entity.Movie{
		ID:          data.ID,
		Title:       data.Title,
		ReleaseDate: data.ReleaseDate,
		Genre:       entity.Genre(data.Genre),
		Rating:      data.Rating,
		DirectorID:  data.DirectorID,
	}
}

// fromMovieDomain converts a domain Movie entity to a GORM MovieModel.
func fromMovieDomain(data *entity.Movie) *model.MovieModel {
	if data == nil {
		return nil
	}

	return &model.MovieModel{
		ID:          data.ID,
		Title:       data.Title,
		ReleaseDate: data.ReleaseDate,
		Genre:       data.Genre.String(),
		Rating:      data.Rating,
		DirectorID:  data.DirectorID,
	}
}
