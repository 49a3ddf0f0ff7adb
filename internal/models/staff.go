package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StaffRoleDoctor  = "DOCTOR"
	StaffRoleNurse   = "NURSE"
	StaffRoleAdmin   = "ADMIN"
	StaffRoleSupport = "SUPPORT"
)

// Staff is a person employed in a hospital department
type Staff struct {
	ID           uuid.UUID   `gorm:"type:varchar(36);primaryKey" json:"id"`
	HospitalID   uuid.UUID   `gorm:"type:varchar(36);not null;index" json:"hospital_id"`
	DepartmentID uuid.UUID   `gorm:"type:varchar(36);not null;index" json:"department_id"`
	FirstName    string      `gorm:"size:100;not null" json:"first_name"`
	LastName     string      `gorm:"size:100;not null" json:"last_name"`
	Role         string      `gorm:"size:20;not null" json:"role"`
	Email        *string     `gorm:"size:255;uniqueIndex" json:"email"`
	ContactPhone *string     `gorm:"size:50" json:"contact_phone"`
	IsActive     bool        `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	Hospital     *Hospital   `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s *Staff) BeforeCreate(*gorm.DB) error {
	s.ID = newID(s.ID)
	return nil
}

type CreateStaffRequest struct {
	HospitalID   uuid.UUID `json:"hospital_id" validate:"required"`
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	FirstName    string    `json:"first_name" validate:"min=2,max=100"`
	LastName     string    `json:"last_name" validate:"min=2,max=100"`
	Role         string    `json:"role" validate:"oneof=DOCTOR NURSE ADMIN SUPPORT"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	ContactPhone *string   `json:"contact_phone" validate:"omitempty,max=50"`
}

// ToStaff maps the request onto a new, active staff record
func (r CreateStaffRequest) ToStaff() *Staff {
	return &Staff{
		HospitalID:   r.HospitalID,
		DepartmentID: r.DepartmentID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         r.Role,
		Email:        r.Email,
		ContactPhone: r.ContactPhone,
		IsActive:     true,
	}
}
