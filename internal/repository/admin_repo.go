package repository

import (
	"context"

	"health-intel-backend/internal/database"
	"health-intel-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository struct {
	resource[models.AdminUser]
}

func NewAdminRepo(db *database.DB) *AdminRepository {
	return &AdminRepository{resource[models.AdminUser]{db: db}}
}

// FindByEmail finds an admin by email, or nil when none is registered
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var (
		admin models.AdminUser
		found bool
	)
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		res := tx.Where("email = ?", email).Limit(1).Find(&admin)
		found = res.RowsAffected > 0
		return res.Error
	})
	if err != nil || !found {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	return r.getByID(ctx, id)
}

// Create creates a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	return r.create(ctx, admin)
}
