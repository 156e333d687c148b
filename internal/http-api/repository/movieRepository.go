package repository

import (
	"context"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/query"

	"gorm.io/gorm"
)

// movieSortColumns whitelists the fields clients may sort movies by.
var movieSortColumns = map[string]string{
	"id":                "id",
	"title":             "title",
	"releaseDate.year":  "release_year",
	"releaseDate.month": "release_month",
	"budget":            "budget",
	"revenue":           "revenue",
	"runtime":           "runtime",
	"status":            "status",
}

type MovieRepository interface {
	List(ctx context.Context, filter *query.Filter, orders []query.Order, page, size int) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) error
	Save(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id string) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// List retrieves a page of movies matching the filter
func (r *movieRepository) List(ctx context.Context, filter *query.Filter, orders []query.Order, page, size int) ([]models.Movie, int64, error) {
	var movies []models.Movie
	var total int64

	base := filter.Apply(r.db.WithContext(ctx).Model(&models.Movie{}))
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := filter.Apply(r.db.WithContext(ctx).Model(&models.Movie{}))
	q = query.ApplyOrders(q, orders, movieSortColumns)
	if err := q.Limit(size).Offset(page * size).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Save(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Movie{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
