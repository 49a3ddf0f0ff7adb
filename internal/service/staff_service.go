package service

import (
	"context"

	"health-intel-backend/internal/models"

	"github.com/google/uuid"
)

type StaffService struct {
	validator Validator
	staff     hospitalScopedStore[models.Staff]
}

func NewStaffService(validator Validator, staff hospitalScopedStore[models.Staff]) *StaffService {
	return &StaffService{validator: validator, staff: staff}
}

// CreateStaff adds an active staff member. Emails are unique across hospitals.
func (s *StaffService) CreateStaff(ctx context.Context, req models.CreateStaffRequest) (*models.Staff, error) {
	return createRecord[models.Staff](ctx, s.validator, s.staff, req, req.ToStaff)
}

func (s *StaffService) GetStaffByID(ctx context.Context, id uuid.UUID) (*models.Staff, error) {
	return findRecord[models.Staff](ctx, s.staff, id, "Staff member")
}

func (s *StaffService) GetStaffByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Staff, error) {
	return s.staff.ListByHospital(ctx, hospitalID)
}
