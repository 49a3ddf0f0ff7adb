package repository

import (
	"context"

	"health-intel-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scope narrows and orders a list query
type scope func(*gorm.DB) *gorm.DB

// resource holds the storage operations every entity shares. Errors coming
// out of it are already classified by database.DB.Run.
type resource[T any] struct {
	db *database.DB
}

func (r resource[T]) create(ctx context.Context, record *T) error {
	return r.db.Run(ctx, func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
}

// getByID returns nil without an error when no row has the id
func (r resource[T]) getByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var (
		record T
		found  bool
	)
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Limit(1).Find(&record)
		found = res.RowsAffected > 0
		return res.Error
	})
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

func (r resource[T]) list(ctx context.Context, apply scope) ([]T, error) {
	records := []T{}
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		return apply(tx).Find(&records).Error
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func byHospital(hospitalID uuid.UUID, order string) scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("hospital_id = ?", hospitalID).Order(order)
	}
}
