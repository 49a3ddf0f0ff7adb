package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser represents the admins table. The password hash never leaves
// the service.
type AdminUser struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for AdminUser model
func (AdminUser) TableName() string {
	return "admins"
}

func (u *AdminUser) BeforeCreate(*gorm.DB) error {
	u.ID = newID(u.ID)
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}
