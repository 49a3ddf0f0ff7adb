package service

import (
	"context"

	"health-intel-backend/internal/models"

	"github.com/google/uuid"
)

// PatientStore is the storage PatientService needs
type PatientStore interface {
	hospitalScopedStore[models.Patient]
	ListRecent(ctx context.Context) ([]models.Patient, error)
}

type PatientService struct {
	validator Validator
	patients  PatientStore
}

func NewPatientService(validator Validator, patients PatientStore) *PatientService {
	return &PatientService{validator: validator, patients: patients}
}

func (s *PatientService) CreatePatient(ctx context.Context, req models.CreatePatientRequest) (*models.Patient, error) {
	return createRecord[models.Patient](ctx, s.validator, s.patients, req, req.ToPatient)
}

func (s *PatientService) GetPatientByID(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	return findRecord[models.Patient](ctx, s.patients, id, "Patient")
}

// GetPatients lists a hospital's patients, or the most recently registered
// patients when hospitalID is nil.
func (s *PatientService) GetPatients(ctx context.Context, hospitalID *uuid.UUID) ([]models.Patient, error) {
	if hospitalID == nil {
		return s.patients.ListRecent(ctx)
	}
	return s.patients.ListByHospital(ctx, *hospitalID)
}
