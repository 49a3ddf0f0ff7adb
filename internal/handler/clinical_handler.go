package handler

import (
	"health-intel-backend/internal/apperror"
	"health-intel-backend/internal/models"
	"health-intel-backend/internal/service"
	"health-intel-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req models.CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, department, "Department created")
}

func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := pathID(c, "department")
	if !ok {
		return
	}

	department, err := h.departmentService.GetDepartmentByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, department, "")
}

// GetDepartments lists one hospital's departments
func (h *DepartmentHandler) GetDepartments(c *gin.Context) {
	hospitalID, ok := hospitalScope(c)
	if !ok {
		return
	}

	departments, err := h.departmentService.GetDepartmentsByHospital(c.Request.Context(), hospitalID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.ListResponse(c, departments)
}

type StaffHandler struct {
	staffService *service.StaffService
}

func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req models.CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, staff, "Staff member created")
}

func (h *StaffHandler) GetStaffMember(c *gin.Context) {
	id, ok := pathID(c, "staff")
	if !ok {
		return
	}

	staff, err := h.staffService.GetStaffByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, staff, "")
}

// GetStaff lists one hospital's staff by last name
func (h *StaffHandler) GetStaff(c *gin.Context) {
	hospitalID, ok := hospitalScope(c)
	if !ok {
		return
	}

	staff, err := h.staffService.GetStaffByHospital(c.Request.Context(), hospitalID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.ListResponse(c, staff)
}

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req models.CreatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, patient, "Patient created successfully")
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, ok := pathID(c, "patient")
	if !ok {
		return
	}

	patient, err := h.patientService.GetPatientByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, patient, "")
}

// GetPatients lists patients, optionally filtered by hospital_id
func (h *PatientHandler) GetPatients(c *gin.Context) {
	var hospitalID *uuid.UUID
	if raw := c.Query("hospital_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.ErrorResponse(c, apperror.BadRequest("Invalid hospital ID"))
			return
		}
		hospitalID = &id
	}

	patients, err := h.patientService.GetPatients(c.Request.Context(), hospitalID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.ListResponse(c, patients)
}

type VisitHandler struct {
	visitService *service.VisitService
}

func NewVisitHandler(visitService *service.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

func (h *VisitHandler) ScheduleVisit(c *gin.Context) {
	var req models.CreateVisitRequest
	if !bindJSON(c, &req) {
		return
	}

	visit, err := h.visitService.ScheduleVisit(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, visit, "Visit scheduled successfully")
}

func (h *VisitHandler) GetVisit(c *gin.Context) {
	id, ok := pathID(c, "visit")
	if !ok {
		return
	}

	visit, err := h.visitService.GetVisitByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, visit, "")
}

// GetVisits lists one hospital's visits, latest first
func (h *VisitHandler) GetVisits(c *gin.Context) {
	hospitalID, ok := hospitalScope(c)
	if !ok {
		return
	}

	visits, err := h.visitService.GetVisitsByHospital(c.Request.Context(), hospitalID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.ListResponse(c, visits)
}

type EquipmentHandler struct {
	equipmentService *service.EquipmentService
}

func NewEquipmentHandler(equipmentService *service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req models.CreateEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.equipmentService.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, item, "Equipment registered")
}

func (h *EquipmentHandler) GetEquipmentItem(c *gin.Context) {
	id, ok := pathID(c, "equipment")
	if !ok {
		return
	}

	item, err := h.equipmentService.GetEquipmentByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, item, "")
}

// GetEquipment lists one hospital's equipment by name
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	hospitalID, ok := hospitalScope(c)
	if !ok {
		return
	}

	items, err := h.equipmentService.GetEquipmentByHospital(c.Request.Context(), hospitalID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.ListResponse(c, items)
}
