package handler

import (
	"health-intel-backend/internal/apperror"
	"health-intel-backend/internal/middleware"
	"health-intel-backend/internal/models"
	"health-intel-backend/internal/service"
	"health-intel-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles admin authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, response, "Login successful")
}

// Me returns the signed-in admin's profile
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.AdminID(c)
	if !ok {
		utils.ErrorResponse(c, apperror.Unauthorized(""))
		return
	}

	admin, err := h.authService.Me(c.Request.Context(), adminID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, admin, "")
}
