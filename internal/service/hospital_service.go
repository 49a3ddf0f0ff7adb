package service

import (
	"context"
	"fmt"

	"health-intel-backend/internal/apperror"
	"health-intel-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HospitalStore is the storage HospitalService needs
type HospitalStore interface {
	recordStore[models.Hospital]
	List(ctx context.Context) ([]models.Hospital, error)
	Update(ctx context.Context, id uuid.UUID, changes *models.Hospital) (*models.Hospital, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type HospitalService struct {
	validator Validator
	hospitals HospitalStore
	audit     AuditRecorder
}

func NewHospitalService(validator Validator, hospitals HospitalStore, audit AuditRecorder) *HospitalService {
	return &HospitalService{
		validator: validator,
		hospitals: hospitals,
		audit:     audit,
	}
}

// CreateHospital registers a new facility. actor is the signed-in admin, if any.
func (s *HospitalService) CreateHospital(ctx context.Context, req models.CreateHospitalRequest, actor *uuid.UUID) (*models.Hospital, error) {
	hospital, err := createRecord[models.Hospital](ctx, s.validator, s.hospitals, req, req.ToHospital)
	if err != nil {
		return nil, err
	}

	s.record(ctx, actor, models.AuditHospitalCreate, fmt.Sprintf("Hospital %s created (%s)", hospital.Name, hospital.ID))
	return hospital, nil
}

// GetAllHospitals retrieves every hospital, newest first
func (s *HospitalService) GetAllHospitals(ctx context.Context) ([]models.Hospital, error) {
	return s.hospitals.List(ctx)
}

func (s *HospitalService) GetHospitalByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	return findRecord[models.Hospital](ctx, s.hospitals, id, "Hospital")
}

// UpdateHospital replaces the facility's details with req
func (s *HospitalService) UpdateHospital(ctx context.Context, id uuid.UUID, req models.CreateHospitalRequest, actor *uuid.UUID) (*models.Hospital, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	hospital, err := s.hospitals.Update(ctx, id, req.ToHospital())
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, apperror.NotFound("Hospital not found")
	}

	s.record(ctx, actor, models.AuditHospitalUpdate, fmt.Sprintf("Hospital %s updated", hospital.ID))
	return hospital, nil
}

// DeleteHospital removes the facility along with its departments, staff,
// visits and equipment. Patients stay registered without a hospital.
func (s *HospitalService) DeleteHospital(ctx context.Context, id uuid.UUID, actor *uuid.UUID) error {
	deleted, err := s.hospitals.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.NotFound("Hospital not found")
	}

	s.record(ctx, actor, models.AuditHospitalDelete, fmt.Sprintf("Hospital %s deleted", id))
	return nil
}

// record writes an audit entry. A failure never fails the request.
func (s *HospitalService) record(ctx context.Context, actor *uuid.UUID, action, details string) {
	if err := s.audit.Create(ctx, actor, action, details); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("action", action).Msg("failed to write audit log")
	}
}
