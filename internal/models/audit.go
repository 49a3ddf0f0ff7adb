package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions
const (
	AuditAdminLogin     = "admin_login"
	AuditHospitalCreate = "hospital_create"
	AuditHospitalUpdate = "hospital_update"
	AuditHospitalDelete = "hospital_delete"
)

// AuditLog represents the audit_logs table
// Used for security tracking and admin action logging
type AuditLog struct {
	ID        uuid.UUID  `gorm:"type:varchar(36);primaryKey" json:"id"`
	AdminID   *uuid.UUID `gorm:"type:varchar(36);index" json:"admin_id"`
	Action    string     `gorm:"size:100;not null" json:"action"`
	Details   string     `gorm:"type:text" json:"details"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

func (a *AuditLog) BeforeCreate(*gorm.DB) error {
	a.ID = newID(a.ID)
	return nil
}
