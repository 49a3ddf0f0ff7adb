package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	HospitalTypePublic  = "PUBLIC"
	HospitalTypePrivate = "PRIVATE"
)

// Hospital represents a hospital/medical facility in the system.
// Name, state and city together identify a facility.
type Hospital struct {
	ID             uuid.UUID           `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name           string              `gorm:"size:255;not null;uniqueIndex:idx_hospitals_location,priority:1" json:"name"`
	HospitalType   string              `gorm:"size:20;not null" json:"hospital_type"`
	State          string              `gorm:"size:100;not null;uniqueIndex:idx_hospitals_location,priority:2" json:"state"`
	City           string              `gorm:"size:100;not null;uniqueIndex:idx_hospitals_location,priority:3" json:"city"`
	IsActive       bool                `gorm:"not null" json:"is_active"`
	Latitude       decimal.NullDecimal `gorm:"type:numeric(9,6)" json:"latitude"`
	Longitude      decimal.NullDecimal `gorm:"type:numeric(9,6)" json:"longitude"`
	TotalBeds      int                 `gorm:"not null;check:chk_hospitals_total_beds,total_beds >= 0" json:"total_beds"`
	OccupiedBeds   int                 `gorm:"not null;check:chk_hospitals_occupied_beds,occupied_beds <= total_beds" json:"occupied_beds"`
	HasEmergency   bool                `gorm:"not null" json:"has_emergency"`
	HasOxygen      bool                `gorm:"not null" json:"has_oxygen"`
	HasVentilators bool                `gorm:"not null" json:"has_ventilators"`
	HasAmbulance   bool                `gorm:"not null" json:"has_ambulance"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

func (h *Hospital) BeforeCreate(*gorm.DB) error {
	h.ID = newID(h.ID)
	return nil
}

// CreateHospitalRequest is the payload for creating or fully replacing a hospital
type CreateHospitalRequest struct {
	Name           string              `json:"name" validate:"min=2,max=255"`
	HospitalType   string              `json:"hospital_type" validate:"oneof=PUBLIC PRIVATE"`
	State          string              `json:"state" validate:"min=2,max=100"`
	City           string              `json:"city" validate:"min=2,max=100"`
	IsActive       *bool               `json:"is_active"`
	Latitude       decimal.NullDecimal `json:"latitude" validate:"omitempty,latitude"`
	Longitude      decimal.NullDecimal `json:"longitude" validate:"omitempty,longitude"`
	TotalBeds      int                 `json:"total_beds" validate:"min=0"`
	OccupiedBeds   int                 `json:"occupied_beds" validate:"min=0"`
	HasEmergency   bool                `json:"has_emergency"`
	HasOxygen      bool                `json:"has_oxygen"`
	HasVentilators bool                `json:"has_ventilators"`
	HasAmbulance   bool                `json:"has_ambulance"`
}

// ToHospital maps the request onto a new record. Hospitals are active unless
// the request says otherwise.
func (r CreateHospitalRequest) ToHospital() *Hospital {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &Hospital{
		Name:           r.Name,
		HospitalType:   r.HospitalType,
		State:          r.State,
		City:           r.City,
		IsActive:       active,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		TotalBeds:      r.TotalBeds,
		OccupiedBeds:   r.OccupiedBeds,
		HasEmergency:   r.HasEmergency,
		HasOxygen:      r.HasOxygen,
		HasVentilators: r.HasVentilators,
		HasAmbulance:   r.HasAmbulance,
	}
}
