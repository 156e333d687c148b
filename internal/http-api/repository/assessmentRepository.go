package repository

import (
	"context"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/query"

	"gorm.io/gorm"
)

// assessmentSortColumns whitelists the fields clients may sort assessments by.
var assessmentSortColumns = map[string]string{
	"id":     "id",
	"rating": "rating",
	"user":   "user_email",
	"movie":  "movie_id",
}

type AssessmentRepository interface {
	List(ctx context.Context, filter *query.Filter, orders []query.Order, page, size int) ([]models.Assessment, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Assessment, error)
	Create(ctx context.Context, assessment *models.Assessment) error
	Save(ctx context.Context, assessment *models.Assessment) error
	Delete(ctx context.Context, id int64) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// List retrieves a page of assessments matching the filter. Sub-resource
// listings (per movie, per user) scope themselves through equals conditions
// on the filter.
func (r *assessmentRepository) List(ctx context.Context, filter *query.Filter, orders []query.Order, page, size int) ([]models.Assessment, int64, error) {
	var assessments []models.Assessment
	var total int64

	base := filter.Apply(r.db.WithContext(ctx).Model(&models.Assessment{}))
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := filter.Apply(r.db.WithContext(ctx).Model(&models.Assessment{}))
	q = query.ApplyOrders(q, orders, assessmentSortColumns)
	if err := q.Limit(size).Offset(page * size).Find(&assessments).Error; err != nil {
		return nil, 0, err
	}

	return assessments, total, nil
}

func (r *assessmentRepository) GetByID(ctx context.Context, id int64) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := r.db.WithContext(ctx).First(&assessment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *models.Assessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *assessmentRepository) Save(ctx context.Context, assessment *models.Assessment) error {
	return r.db.WithContext(ctx).Save(assessment).Error
}

func (r *assessmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Assessment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
