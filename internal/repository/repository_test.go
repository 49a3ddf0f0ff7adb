package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"health-intel-backend/internal/apperror"
	"health-intel-backend/internal/database"
	"health-intel-backend/internal/database/dbtest"
	"health-intel-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHospital(name string) *models.Hospital {
	return &models.Hospital{
		Name:         name,
		HospitalType: models.HospitalTypePublic,
		State:        "Lagos",
		City:         "Ikeja",
		IsActive:     true,
		TotalBeds:    50,
		OccupiedBeds: 5,
	}
}

func seedHospital(t *testing.T, db *database.DB, name string) *models.Hospital {
	t.Helper()
	h := newHospital(name)
	require.NoError(t, NewHospitalRepo(db).Create(context.Background(), h))
	return h
}

func TestHospitalRepository_CreateAndGet(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()

	h := newHospital("General Hospital")
	h.IsActive = false
	h.Latitude = decimal.NewNullDecimal(decimal.RequireFromString("6.601838"))
	require.NoError(t, repo.Create(ctx, h))
	assert.NotEqual(t, uuid.Nil, h.ID)
	assert.False(t, h.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "General Hospital", got.Name)
	assert.False(t, got.IsActive)
	assert.True(t, got.Latitude.Valid)
	assert.True(t, got.Latitude.Decimal.Equal(decimal.RequireFromString("6.601838")))
	assert.False(t, got.Longitude.Valid)

	missing, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHospitalRepository_DuplicateIsConflict(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newHospital("General Hospital")))

	err := repo.Create(ctx, newHospital("General Hospital"))
	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
	assert.Equal(t, apperror.MsgDuplicate, appErr.Message)

	// same name elsewhere is a different facility
	other := newHospital("General Hospital")
	other.City = "Yaba"
	assert.NoError(t, repo.Create(ctx, other))
}

func TestHospitalRepository_CheckConstraintIsBadRequest(t *testing.T) {
	db := dbtest.Open(t)
	h := newHospital("Overbooked Hospital")
	h.OccupiedBeds = h.TotalBeds + 1

	err := NewHospitalRepo(db).Create(context.Background(), h)
	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindBadRequest, appErr.Kind)
	assert.Equal(t, apperror.MsgConstraint, appErr.Message)
}

func TestHospitalRepository_ListNewestFirst(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewHospitalRepo(db)

	empty, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := seedHospital(t, db, "First Hospital")
	time.Sleep(5 * time.Millisecond)
	second := seedHospital(t, db, "Second Hospital")

	hospitals, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, hospitals, 2)
	assert.Equal(t, second.ID, hospitals[0].ID)
	assert.Equal(t, first.ID, hospitals[1].ID)
}

func TestHospitalRepository_Update(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()
	h := seedHospital(t, db, "General Hospital")

	changes := newHospital("Renamed Hospital")
	changes.IsActive = false
	changes.HasOxygen = true
	updated, err := repo.Update(ctx, h.ID, changes)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, h.ID, updated.ID)
	assert.Equal(t, "Renamed Hospital", updated.Name)
	assert.False(t, updated.IsActive)
	assert.True(t, updated.HasOxygen)
	assert.WithinDuration(t, h.CreatedAt, updated.CreatedAt, time.Millisecond)

	missing, err := repo.Update(ctx, uuid.New(), newHospital("Nowhere"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHospitalRepository_UpdateIntoDuplicateIsConflict(t *testing.T) {
	db := dbtest.Open(t)
	seedHospital(t, db, "General Hospital")
	h := seedHospital(t, db, "Other Hospital")

	_, err := NewHospitalRepo(db).Update(context.Background(), h.ID, newHospital("General Hospital"))
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestHospitalRepository_DeleteCascades(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	h := seedHospital(t, db, "General Hospital")

	departments := NewDepartmentRepo(db)
	dept := &models.Department{HospitalID: h.ID, Name: "Cardiology", DepartmentType: models.DepartmentTypeMedical}
	require.NoError(t, departments.Create(ctx, dept))

	patients := NewPatientRepo(db)
	patient := &models.Patient{HospitalID: &h.ID, FirstName: "John", LastName: "Doe", DateOfBirth: models.NewDate(1990, time.May, 2), Gender: models.GenderMale}
	require.NoError(t, patients.Create(ctx, patient))

	deleted, err := NewHospitalRepo(db).Delete(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	gone, err := departments.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := patients.GetByID(ctx, patient.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Nil(t, kept.HospitalID)

	deleted, err = NewHospitalRepo(db).Delete(ctx, h.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestDepartmentRepository_ListByHospitalOrderedByName(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	h := seedHospital(t, db, "General Hospital")
	other := seedHospital(t, db, "Other Hospital")
	repo := NewDepartmentRepo(db)

	for _, name := range []string{"Radiology", "Cardiology", "Pediatrics"} {
		require.NoError(t, repo.Create(ctx, &models.Department{HospitalID: h.ID, Name: name, DepartmentType: models.DepartmentTypeMedical}))
	}
	require.NoError(t, repo.Create(ctx, &models.Department{HospitalID: other.ID, Name: "Admissions", DepartmentType: models.DepartmentTypeAdmin}))

	list, err := repo.ListByHospital(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Cardiology", list[0].Name)
	assert.Equal(t, "Pediatrics", list[1].Name)
	assert.Equal(t, "Radiology", list[2].Name)

	dup := repo.Create(ctx, &models.Department{HospitalID: h.ID, Name: "Cardiology", DepartmentType: models.DepartmentTypeMedical})
	assert.True(t, apperror.IsKind(dup, apperror.KindConflict))
}

func TestStaffRepository_MissingHospitalIsInternal(t *testing.T) {
	db := dbtest.Open(t)

	err := NewStaffRepo(db).Create(context.Background(), &models.Staff{
		HospitalID:   uuid.New(),
		DepartmentID: uuid.New(),
		FirstName:    "Ada",
		LastName:     "Obi",
		Role:         models.StaffRoleDoctor,
		IsActive:     true,
	})
	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindInternal, appErr.Kind)
	assert.Equal(t, apperror.MsgStorage, appErr.Message)
}

func TestPatientRepository_ListRecentIsBounded(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	repo := NewPatientRepo(db)

	var last *models.Patient
	for i := 0; i < RecentPatientsLimit+5; i++ {
		last = &models.Patient{
			FirstName:   fmt.Sprintf("Patient%03d", i),
			LastName:    "Doe",
			DateOfBirth: models.NewDate(1990, time.January, 1),
			Gender:      models.GenderOther,
		}
		require.NoError(t, repo.Create(ctx, last))
	}

	recent, err := repo.ListRecent(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, RecentPatientsLimit)
	assert.Equal(t, last.ID, recent[0].ID)
	assert.Equal(t, "1990-01-01", recent[0].DateOfBirth.String())
}

func TestVisitRepository_ListByHospitalLatestFirst(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	h := seedHospital(t, db, "General Hospital")

	dept := &models.Department{HospitalID: h.ID, Name: "Cardiology", DepartmentType: models.DepartmentTypeMedical}
	require.NoError(t, NewDepartmentRepo(db).Create(ctx, dept))
	staff := &models.Staff{HospitalID: h.ID, DepartmentID: dept.ID, FirstName: "Ada", LastName: "Obi", Role: models.StaffRoleDoctor, IsActive: true}
	require.NoError(t, NewStaffRepo(db).Create(ctx, staff))
	patient := &models.Patient{FirstName: "John", LastName: "Doe", DateOfBirth: models.NewDate(1990, time.May, 2), Gender: models.GenderMale}
	require.NoError(t, NewPatientRepo(db).Create(ctx, patient))

	repo := NewVisitRepo(db)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, reason := range []string{"Checkup", "Follow-up"} {
		v := models.CreateVisitRequest{
			HospitalID: h.ID, PatientID: patient.ID, StaffID: staff.ID, Reason: reason,
		}.ToVisit(base.Add(time.Duration(i) * time.Hour))
		require.NoError(t, repo.Create(ctx, v))
	}

	visits, err := repo.ListByHospital(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "Follow-up", visits[0].Reason)
	assert.Equal(t, models.VisitStatusPending, visits[1].Status)
}

func TestEquipmentRepository_SerialNumberUnique(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	h := seedHospital(t, db, "General Hospital")
	repo := NewEquipmentRepo(db)
	serial := "SN-001"

	require.NoError(t, repo.Create(ctx, &models.Equipment{HospitalID: h.ID, Name: "Ventilator", SerialNumber: &serial, Condition: models.ConditionNew, IsOperational: true}))
	// equipment without a serial number never collides
	require.NoError(t, repo.Create(ctx, &models.Equipment{HospitalID: h.ID, Name: "Bed", Condition: models.ConditionGood}))
	require.NoError(t, repo.Create(ctx, &models.Equipment{HospitalID: h.ID, Name: "Another Bed", Condition: models.ConditionGood}))

	err := repo.Create(ctx, &models.Equipment{HospitalID: h.ID, Name: "Monitor", SerialNumber: &serial, Condition: models.ConditionGood})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	list, err := repo.ListByHospital(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Another Bed", list[0].Name)
}

func TestAdminRepository_FindByEmail(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	repo := NewAdminRepo(db)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	admin := &models.AdminUser{Email: "admin@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, admin))

	found, err := repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, admin.ID, found.ID)

	byID, err := repo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", byID.Email)
}

func TestAuditRepository_Create(t *testing.T) {
	db := dbtest.Open(t)
	adminID := uuid.New()

	require.NoError(t, NewAuditRepo(db).Create(context.Background(), &adminID, models.AuditAdminLogin, "login from test"))

	var entries []models.AuditLog
	require.NoError(t, db.Gorm().Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, adminID, *entries[0].AdminID)
	assert.Equal(t, models.AuditAdminLogin, entries[0].Action)
}
