package repository

import (
	"context"

	"health-intel-backend/internal/database"
	"health-intel-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecentPatientsLimit caps the unfiltered patient listing
const RecentPatientsLimit = 100

type DepartmentRepository struct {
	resource[models.Department]
}

func NewDepartmentRepo(db *database.DB) *DepartmentRepository {
	return &DepartmentRepository{resource[models.Department]{db: db}}
}

func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	return r.create(ctx, department)
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return r.getByID(ctx, id)
}

// ListByHospital retrieves the hospital's departments ordered by name
func (r *DepartmentRepository) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Department, error) {
	return r.list(ctx, byHospital(hospitalID, "name ASC"))
}

type StaffRepository struct {
	resource[models.Staff]
}

func NewStaffRepo(db *database.DB) *StaffRepository {
	return &StaffRepository{resource[models.Staff]{db: db}}
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.create(ctx, staff)
}

func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Staff, error) {
	return r.getByID(ctx, id)
}

// ListByHospital retrieves the hospital's staff ordered by last name
func (r *StaffRepository) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Staff, error) {
	return r.list(ctx, byHospital(hospitalID, "last_name ASC"))
}

type PatientRepository struct {
	resource[models.Patient]
}

func NewPatientRepo(db *database.DB) *PatientRepository {
	return &PatientRepository{resource[models.Patient]{db: db}}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.create(ctx, patient)
}

func (r *PatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	return r.getByID(ctx, id)
}

// ListByHospital retrieves the patients registered with a hospital, newest first
func (r *PatientRepository) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Patient, error) {
	return r.list(ctx, byHospital(hospitalID, "created_at DESC"))
}

// ListRecent retrieves the most recently registered patients across all hospitals
func (r *PatientRepository) ListRecent(ctx context.Context) ([]models.Patient, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC").Limit(RecentPatientsLimit)
	})
}

type VisitRepository struct {
	resource[models.Visit]
}

func NewVisitRepo(db *database.DB) *VisitRepository {
	return &VisitRepository{resource[models.Visit]{db: db}}
}

func (r *VisitRepository) Create(ctx context.Context, visit *models.Visit) error {
	return r.create(ctx, visit)
}

func (r *VisitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Visit, error) {
	return r.getByID(ctx, id)
}

// ListByHospital retrieves the hospital's visits, latest start first
func (r *VisitRepository) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Visit, error) {
	return r.list(ctx, byHospital(hospitalID, "start_time DESC"))
}

type EquipmentRepository struct {
	resource[models.Equipment]
}

func NewEquipmentRepo(db *database.DB) *EquipmentRepository {
	return &EquipmentRepository{resource[models.Equipment]{db: db}}
}

func (r *EquipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	return r.create(ctx, equipment)
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	return r.getByID(ctx, id)
}

// ListByHospital retrieves the hospital's equipment ordered by name
func (r *EquipmentRepository) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]models.Equipment, error) {
	return r.list(ctx, byHospital(hospitalID, "name ASC"))
}
