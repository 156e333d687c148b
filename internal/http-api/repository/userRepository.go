package repository

import (
	"context"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/query"

	"gorm.io/gorm"
)

// userSortColumns whitelists the fields clients may sort users by.
var userSortColumns = map[string]string{
	"email":         "email",
	"name":          "name",
	"country":       "country",
	"birthday.year": "birthday_year",
}

type UserRepository interface {
	List(ctx context.Context, filter *query.Filter, orders []query.Order, page, size int) ([]models.User, int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, email string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// List retrieves a page of users matching the filter
func (r *userRepository) List(ctx context.Context, filter *query.Filter, orders []query.Order, page, size int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	base := filter.Apply(r.db.WithContext(ctx).Model(&models.User{}))
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := filter.Apply(r.db.WithContext(ctx).Model(&models.User{}))
	q = query.ApplyOrders(q, orders, userSortColumns)
	if err := q.Limit(size).Offset(page * size).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
