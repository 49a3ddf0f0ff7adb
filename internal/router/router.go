package router

import (
	"health-intel-backend/internal/apperror"
	"health-intel-backend/internal/config"
	"health-intel-backend/internal/database"
	"health-intel-backend/internal/handler"
	"health-intel-backend/internal/middleware"
	"health-intel-backend/internal/repository"
	"health-intel-backend/internal/service"
	"health-intel-backend/internal/validation"
	"health-intel-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers groups everything the route table dispatches to
type Handlers struct {
	Auth       *handler.AuthHandler
	Hospital   *handler.HospitalHandler
	Department *handler.DepartmentHandler
	Staff      *handler.StaffHandler
	Patient    *handler.PatientHandler
	Visit      *handler.VisitHandler
	Equipment  *handler.EquipmentHandler
	Health     *handler.HealthHandler
}

// Setup builds repositories, services and handlers on top of db and
// returns the ready HTTP engine.
func Setup(cfg config.Config, db *database.DB, log zerolog.Logger) (*gin.Engine, error) {
	validator, err := validation.New()
	if err != nil {
		return nil, err
	}
	tokens := utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	// Repositories
	adminRepo := repository.NewAdminRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	visitRepo := repository.NewVisitRepo(db)
	equipmentRepo := repository.NewEquipmentRepo(db)

	// Services
	authService := service.NewAuthService(validator, adminRepo, auditRepo, tokens)
	hospitalService := service.NewHospitalService(validator, hospitalRepo, auditRepo)
	departmentService := service.NewDepartmentService(validator, departmentRepo)
	staffService := service.NewStaffService(validator, staffRepo)
	patientService := service.NewPatientService(validator, patientRepo)
	visitService := service.NewVisitService(validator, visitRepo)
	equipmentService := service.NewEquipmentService(validator, equipmentRepo)

	handlers := Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Hospital:   handler.NewHospitalHandler(hospitalService),
		Department: handler.NewDepartmentHandler(departmentService),
		Staff:      handler.NewStaffHandler(staffService),
		Patient:    handler.NewPatientHandler(patientService),
		Visit:      handler.NewVisitHandler(visitService),
		Equipment:  handler.NewEquipmentHandler(equipmentService),
		Health:     handler.NewHealthHandler(db, cfg.Database.AcquireTimeout),
	}

	return New(cfg, log, authService, handlers), nil
}

// New registers the route table
func New(cfg config.Config, log zerolog.Logger, auth middleware.Authenticator, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.ErrorResponse(c, apperror.Internal(panicError{recovered}))
	}))
	r.Use(middleware.CORS(cfg.CORS))

	r.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, apperror.NotFound("Route not found"))
	})

	// Health check endpoint
	r.GET("/health", h.Health.HealthCheck)

	api := r.Group("/api/v1")
	api.Use(middleware.IdentifyAdmin(auth))
	{
		api.GET("/health", h.Health.HealthCheck)

		// Auth routes
		api.POST("/login", h.Auth.Login)
		api.GET("/me", middleware.RequireAdmin(), h.Auth.Me)

		hospitals := api.Group("/hospitals")
		{
			hospitals.POST("", h.Hospital.CreateHospital)
			hospitals.GET("", h.Hospital.GetAllHospitals)
			hospitals.GET("/:id", h.Hospital.GetHospital)
			hospitals.PUT("/:id", h.Hospital.UpdateHospital)
			hospitals.DELETE("/:id", h.Hospital.DeleteHospital)

			hospitals.GET("/:id/departments", h.Department.GetDepartments)
			hospitals.GET("/:id/staff", h.Staff.GetStaff)
			hospitals.GET("/:id/visits", h.Visit.GetVisits)
			hospitals.GET("/:id/equipment", h.Equipment.GetEquipment)
		}

		api.POST("/departments", h.Department.CreateDepartment)
		api.GET("/departments", h.Department.GetDepartments)
		api.GET("/departments/:id", h.Department.GetDepartment)

		api.POST("/staff", h.Staff.CreateStaff)
		api.GET("/staff", h.Staff.GetStaff)
		api.GET("/staff/:id", h.Staff.GetStaffMember)

		api.POST("/patients", h.Patient.CreatePatient)
		api.GET("/patients", h.Patient.GetPatients)
		api.GET("/patients/:id", h.Patient.GetPatient)

		api.POST("/visits", h.Visit.ScheduleVisit)
		api.GET("/visits", h.Visit.GetVisits)
		api.GET("/visits/:id", h.Visit.GetVisit)

		api.POST("/equipment", h.Equipment.CreateEquipment)
		api.GET("/equipment", h.Equipment.GetEquipment)
		api.GET("/equipment/:id", h.Equipment.GetEquipmentItem)
	}

	return r
}
