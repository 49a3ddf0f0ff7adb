package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

// Patient may be registered without being attached to a hospital
type Patient struct {
	ID               uuid.UUID  `gorm:"type:varchar(36);primaryKey" json:"id"`
	HospitalID       *uuid.UUID `gorm:"type:varchar(36);index" json:"hospital_id"`
	FirstName        string     `gorm:"size:100;not null" json:"first_name"`
	LastName         string     `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth      Date       `gorm:"not null" json:"date_of_birth"`
	Gender           string     `gorm:"size:10;not null" json:"gender"`
	ContactPhone     *string    `gorm:"size:50" json:"contact_phone"`
	EmergencyContact *string    `gorm:"size:255" json:"emergency_contact"`
	Address          *string    `gorm:"type:text" json:"address"`
	CreatedAt        time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	Hospital         *Hospital  `gorm:"foreignKey:HospitalID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(*gorm.DB) error {
	p.ID = newID(p.ID)
	return nil
}

type CreatePatientRequest struct {
	HospitalID       *uuid.UUID `json:"hospital_id"`
	FirstName        string     `json:"first_name" validate:"min=2,max=100"`
	LastName         string     `json:"last_name" validate:"min=2,max=100"`
	DateOfBirth      Date       `json:"date_of_birth" validate:"required"`
	Gender           string     `json:"gender" validate:"oneof=MALE FEMALE OTHER"`
	ContactPhone     *string    `json:"contact_phone" validate:"omitempty,max=50"`
	EmergencyContact *string    `json:"emergency_contact" validate:"omitempty,max=255"`
	Address          *string    `json:"address"`
}

func (r CreatePatientRequest) ToPatient() *Patient {
	return &Patient{
		HospitalID:       r.HospitalID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		DateOfBirth:      r.DateOfBirth,
		Gender:           r.Gender,
		ContactPhone:     r.ContactPhone,
		EmergencyContact: r.EmergencyContact,
		Address:          r.Address,
	}
}
