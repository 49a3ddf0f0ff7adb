package database

import (
	"context"
	"errors"
	"fmt"

	"health-intel-backend/internal/config"
	"health-intel-backend/internal/models"
	"health-intel-backend/pkg/utils"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns
func (d *DB) Migrate() error {
	err := d.gorm.AutoMigrate(
		&models.AdminUser{},
		&models.AuditLog{},
		&models.Hospital{},
		&models.Department{},
		&models.Staff{},
		&models.Patient{},
		&models.Visit{},
		&models.Equipment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedAdmin creates the bootstrap admin account when one is configured and
// no account with that email exists yet.
func (d *DB) SeedAdmin(ctx context.Context, cfg config.AdminConfig, log zerolog.Logger) error {
	if cfg.BootstrapEmail == "" || cfg.BootstrapPassword == "" {
		return nil
	}

	var existing models.AdminUser
	err := d.gorm.WithContext(ctx).Where("email = ?", cfg.BootstrapEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	hash, err := utils.HashPassword(cfg.BootstrapPassword)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	admin := &models.AdminUser{Email: cfg.BootstrapEmail, PasswordHash: hash}
	if err := d.gorm.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("bootstrap admin created")
	return nil
}
