package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visit statuses known to clients. Only VisitStatusPending is written;
// no transitions between them are implemented.
const (
	VisitStatusPending    = "PENDING"
	VisitStatusInProgress = "IN_PROGRESS"
	VisitStatusCompleted  = "COMPLETED"
	VisitStatusCancelled  = "CANCELLED"
)

// Visit links a patient to the staff member seeing them in a hospital
type Visit struct {
	ID         uuid.UUID  `gorm:"type:varchar(36);primaryKey" json:"id"`
	HospitalID uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"hospital_id"`
	PatientID  uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"patient_id"`
	StaffID    uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"staff_id"`
	Reason     string     `gorm:"type:text;not null" json:"reason"`
	Status     string     `gorm:"size:20;not null" json:"status"`
	StartTime  time.Time  `gorm:"not null" json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Hospital   *Hospital  `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
	Patient    *Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
	Staff      *Staff     `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Visit) TableName() string {
	return "visits"
}

func (v *Visit) BeforeCreate(*gorm.DB) error {
	v.ID = newID(v.ID)
	return nil
}

type CreateVisitRequest struct {
	HospitalID uuid.UUID `json:"hospital_id" validate:"required"`
	PatientID  uuid.UUID `json:"patient_id" validate:"required"`
	StaffID    uuid.UUID `json:"staff_id" validate:"required"`
	Reason     string    `json:"reason" validate:"min=3"`
	// StartTime is optional for walk-ins; appointments set it explicitly
	StartTime *time.Time `json:"start_time"`
}

// ToVisit maps the request onto a new pending visit starting at now
// unless a start time was given.
func (r CreateVisitRequest) ToVisit(now time.Time) *Visit {
	start := now
	if r.StartTime != nil {
		start = *r.StartTime
	}
	return &Visit{
		HospitalID: r.HospitalID,
		PatientID:  r.PatientID,
		StaffID:    r.StaffID,
		Reason:     r.Reason,
		Status:     VisitStatusPending,
		StartTime:  start.UTC(),
	}
}
