package repository

import (
	"context"

	"health-intel-backend/internal/database"
	"health-intel-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *database.DB
}

func NewAuditRepo(db *database.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create records an admin action. adminID is nil for anonymous callers.
func (r *AuditRepository) Create(ctx context.Context, adminID *uuid.UUID, action string, details string) error {
	entry := &models.AuditLog{
		AdminID: adminID,
		Action:  action,
		Details: details,
	}
	return r.db.Run(ctx, func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}
