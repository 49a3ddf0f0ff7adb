package handler

import (
	"health-intel-backend/internal/middleware"
	"health-intel-backend/internal/models"
	"health-intel-backend/internal/service"
	"health-intel-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// DeleteResult confirms a removal
type DeleteResult struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// GetAllHospitals lists every hospital, newest first
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.GetAllHospitals(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.ListResponse(c, hospitals)
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, ok := pathID(c, "hospital")
	if !ok {
		return
	}

	hospital, err := h.hospitalService.GetHospitalByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, hospital, "")
}

func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req models.CreateHospitalRequest
	if !bindJSON(c, &req) {
		return
	}

	hospital, err := h.hospitalService.CreateHospital(c.Request.Context(), req, middleware.Actor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, hospital, "Hospital created successfully")
}

// UpdateHospital replaces an existing hospital's details
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, ok := pathID(c, "hospital")
	if !ok {
		return
	}

	var req models.CreateHospitalRequest
	if !bindJSON(c, &req) {
		return
	}

	hospital, err := h.hospitalService.UpdateHospital(c.Request.Context(), id, req, middleware.Actor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, hospital, "Hospital updated successfully")
}

func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id, ok := pathID(c, "hospital")
	if !ok {
		return
	}

	if err := h.hospitalService.DeleteHospital(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, DeleteResult{ID: id, Deleted: true}, "Hospital deleted successfully")
}
