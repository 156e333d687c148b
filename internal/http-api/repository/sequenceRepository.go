package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SequenceRepository hands out monotonically increasing ids for entities
// without a natural key.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type sequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next increments the named counter and returns the new value. The whole
// read-and-increment is one statement, so concurrent creators never receive
// the same id.
func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO sequence_counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = sequence_counters.value + 1
		 RETURNING value`,
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("next sequence value for %s: %w", name, err)
	}
	return value, nil
}
