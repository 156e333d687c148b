package repository

import (
	"context"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/query"

	"gorm.io/gorm"
)

// friendshipSortColumns whitelists the fields clients may sort friendships by.
// user must stay quoted: bare user is a reserved word in Postgres and would
// order by a session constant instead of the column.
var friendshipSortColumns = map[string]string{
	"id":        "id",
	"user":      `"user"`,
	"friend":    "friend",
	"confirmed": "confirmed",
	"since":     "since",
}

type FriendshipRepository interface {
	ListForUser(ctx context.Context, email string, orders []query.Order, page, size int) ([]models.Friendship, int64, error)
	// GetByPair is the single accessor for the unordered pair: it checks
	// both stored orderings, so no caller ever needs a dual lookup.
	GetByPair(ctx context.Context, a, b string) (*models.Friendship, error)
	Create(ctx context.Context, friendship *models.Friendship) error
	Save(ctx context.Context, friendship *models.Friendship) error
	Delete(ctx context.Context, id int64) error
}

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// involving scopes a friendship query to records where email appears on
// either side. Count and Find both build on it so the two queries can never
// drift apart.
func (r *friendshipRepository) involving(ctx context.Context, email string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where(`"user" = ? OR friend = ?`, email, email)
}

// ListForUser retrieves a page of friendships the user appears in, on either
// side of the record.
func (r *friendshipRepository) ListForUser(ctx context.Context, email string, orders []query.Order, page, size int) ([]models.Friendship, int64, error) {
	var friendships []models.Friendship
	var total int64

	if err := r.involving(ctx, email).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := query.ApplyOrders(r.involving(ctx, email), orders, friendshipSortColumns)
	if err := q.Limit(size).Offset(page * size).Find(&friendships).Error; err != nil {
		return nil, 0, err
	}

	return friendships, total, nil
}

func (r *friendshipRepository) GetByPair(ctx context.Context, a, b string) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.WithContext(ctx).
		Where(`("user" = ? AND friend = ?) OR ("user" = ? AND friend = ?)`, a, b, b, a).
		First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	return r.db.WithContext(ctx).Create(friendship).Error
}

func (r *friendshipRepository) Save(ctx context.Context, friendship *models.Friendship) error {
	return r.db.WithContext(ctx).Save(friendship).Error
}

func (r *friendshipRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Friendship{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
