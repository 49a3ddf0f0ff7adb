package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ConditionNew    = "NEW"
	ConditionGood   = "GOOD"
	ConditionFair   = "FAIR"
	ConditionPoor   = "POOR"
	ConditionBroken = "BROKEN"
)

type Equipment struct {
	ID            uuid.UUID   `gorm:"type:varchar(36);primaryKey" json:"id"`
	HospitalID    uuid.UUID   `gorm:"type:varchar(36);not null;index" json:"hospital_id"`
	DepartmentID  *uuid.UUID  `gorm:"type:varchar(36);index" json:"department_id"`
	Name          string      `gorm:"size:255;not null" json:"name"`
	SerialNumber  *string     `gorm:"size:100;uniqueIndex" json:"serial_number"`
	Condition     string      `gorm:"size:10;not null" json:"condition"`
	IsOperational bool        `gorm:"not null" json:"is_operational"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	Hospital      *Hospital   `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
	Department    *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Equipment) TableName() string {
	return "equipment"
}

func (e *Equipment) BeforeCreate(*gorm.DB) error {
	e.ID = newID(e.ID)
	return nil
}

type CreateEquipmentRequest struct {
	HospitalID    uuid.UUID  `json:"hospital_id" validate:"required"`
	DepartmentID  *uuid.UUID `json:"department_id"`
	Name          string     `json:"name" validate:"min=2,max=255"`
	SerialNumber  *string    `json:"serial_number" validate:"omitempty,max=100"`
	Condition     string     `json:"condition" validate:"oneof=NEW GOOD FAIR POOR BROKEN"`
	IsOperational bool       `json:"is_operational"`
}

func (r CreateEquipmentRequest) ToEquipment() *Equipment {
	return &Equipment{
		HospitalID:    r.HospitalID,
		DepartmentID:  r.DepartmentID,
		Name:          r.Name,
		SerialNumber:  r.SerialNumber,
		Condition:     r.Condition,
		IsOperational: r.IsOperational,
	}
}
