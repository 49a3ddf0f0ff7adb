package repository

import (
	"context"

	"health-intel-backend/internal/database"
	"health-intel-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository struct {
	resource[models.Hospital]
}

func NewHospitalRepo(db *database.DB) *HospitalRepository {
	return &HospitalRepository{resource[models.Hospital]{db: db}}
}

// Create inserts a new hospital. A second facility with the same name,
// state and city is rejected as a conflict.
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	return r.create(ctx, hospital)
}

// GetByID retrieves a hospital by ID, or nil when it does not exist
func (r *HospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	return r.getByID(ctx, id)
}

// List retrieves all hospitals, newest first
func (r *HospitalRepository) List(ctx context.Context) ([]models.Hospital, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC")
	})
}

// Update replaces every mutable field of the hospital with id and returns
// the stored result. It returns nil when no such hospital exists.
func (r *HospitalRepository) Update(ctx context.Context, id uuid.UUID, changes *models.Hospital) (*models.Hospital, error) {
	var updated *models.Hospital
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		return tx.Transaction(func(tx *gorm.DB) error {
			var current models.Hospital
			res := tx.Where("id = ?", id).Limit(1).Find(&current)
			if res.Error != nil || res.RowsAffected == 0 {
				return res.Error
			}

			changes.ID = current.ID
			changes.CreatedAt = current.CreatedAt
			if err := tx.Model(&current).Select("*").Omit("id", "created_at").Updates(changes).Error; err != nil {
				return err
			}

			var reloaded models.Hospital
			if err := tx.Where("id = ?", id).First(&reloaded).Error; err != nil {
				return err
			}
			updated = &reloaded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the hospital and everything that belongs to it.
// It reports how many hospitals were removed.
func (r *HospitalRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Hospital{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}
