package service

import (
	"context"

	"health-intel-backend/internal/models"

	"github.com/google/uuid"
)

type DepartmentService struct {
	validator   Validator
	departments hospitalScopedStore[models.Department]
}

func NewDepartmentService(validator Validator, departments hospitalScopedStore[models.Department]) *DepartmentService {
	return &DepartmentService{validator: validator, departments: departments}
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, req models.CreateDepartmentRequest) (*models.Department, error) {
	return createRecord[models.Department](ctx, s.validator, s.departments, req, req.ToDepartment)
}

func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return findRecord[models.Department](ctx, s.departments, id, "Department")
}

// GetDepartmentsByHospital lists a hospital's departments by name
func (s *DepartmentService) GetDepartmentsByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Department, error) {
	return s.departments.ListByHospital(ctx, hospitalID)
}
