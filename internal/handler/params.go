package handler

import (
	"health-intel-backend/internal/apperror"
	"health-intel-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON decodes the request body into req. A malformed body is answered
// with a BadRequest and false.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponse(c, &apperror.Error{
			Kind:    apperror.KindBadRequest,
			Message: "Invalid request body",
			Err:     err,
		})
		return false
	}
	return true
}

// pathID parses the :id path parameter
func pathID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, apperror.BadRequest("Invalid "+entity+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// hospitalScope returns the hospital a list request is about, taken from the
// /hospitals/:id path or else the required hospital_id query parameter.
func hospitalScope(c *gin.Context) (uuid.UUID, bool) {
	if c.Param("id") != "" {
		return pathID(c, "hospital")
	}

	raw, ok := c.GetQuery("hospital_id")
	if !ok || raw == "" {
		utils.ErrorResponse(c, apperror.BadRequest("hospital_id query parameter is required"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.ErrorResponse(c, apperror.BadRequest("Invalid hospital ID"))
		return uuid.Nil, false
	}
	return id, true
}
