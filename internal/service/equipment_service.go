package service

import (
	"context"

	"health-intel-backend/internal/models"

	"github.com/google/uuid"
)

type EquipmentService struct {
	validator Validator
	equipment hospitalScopedStore[models.Equipment]
}

func NewEquipmentService(validator Validator, equipment hospitalScopedStore[models.Equipment]) *EquipmentService {
	return &EquipmentService{validator: validator, equipment: equipment}
}

// CreateEquipment registers a device. Serial numbers, when given, are unique.
func (s *EquipmentService) CreateEquipment(ctx context.Context, req models.CreateEquipmentRequest) (*models.Equipment, error) {
	return createRecord[models.Equipment](ctx, s.validator, s.equipment, req, req.ToEquipment)
}

func (s *EquipmentService) GetEquipmentByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	return findRecord[models.Equipment](ctx, s.equipment, id, "Equipment")
}

func (s *EquipmentService) GetEquipmentByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Equipment, error) {
	return s.equipment.ListByHospital(ctx, hospitalID)
}
