package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DepartmentTypeMedical = "MEDICAL"
	DepartmentTypeAdmin   = "ADMIN"
	DepartmentTypeSupport = "SUPPORT"
)

// Department is a unit inside a hospital. Names are unique per hospital.
type Department struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	HospitalID     uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_departments_hospital_name,priority:1" json:"hospital_id"`
	Name           string    `gorm:"size:255;not null;uniqueIndex:idx_departments_hospital_name,priority:2" json:"name"`
	DepartmentType string    `gorm:"size:20;not null" json:"department_type"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	Hospital       *Hospital `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) BeforeCreate(*gorm.DB) error {
	d.ID = newID(d.ID)
	return nil
}

type CreateDepartmentRequest struct {
	HospitalID     uuid.UUID `json:"hospital_id" validate:"required"`
	Name           string    `json:"name" validate:"min=2,max=255"`
	DepartmentType string    `json:"department_type" validate:"oneof=MEDICAL ADMIN SUPPORT"`
}

func (r CreateDepartmentRequest) ToDepartment() *Department {
	return &Department{
		HospitalID:     r.HospitalID,
		Name:           r.Name,
		DepartmentType: r.DepartmentType,
	}
}
