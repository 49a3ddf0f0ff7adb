package middleware

import (
	"strings"

	"health-intel-backend/internal/apperror"
	"health-intel-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	adminIDKey   = "adminID"
	authErrorKey = "authError"
)

// Authenticator resolves a bearer token to the admin it was issued for
type Authenticator interface {
	Authenticate(token string) (uuid.UUID, error)
}

// IdentifyAdmin reads an optional bearer token. It never rejects a request:
// a missing, malformed, forged or expired token leaves the request anonymous
// and the reason is kept for RequireAdmin.
func IdentifyAdmin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Check Bearer prefix
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.Set(authErrorKey, apperror.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
			c.Next()
			return
		}

		adminID, err := auth.Authenticate(token)
		if err != nil {
			c.Set(authErrorKey, err)
			c.Next()
			return
		}

		c.Set(adminIDKey, adminID)
		c.Next()
	}
}

// RequireAdmin rejects requests that did not present a valid token
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := AdminID(c); ok {
			c.Next()
			return
		}
		if err, ok := c.Get(authErrorKey); ok {
			utils.ErrorResponse(c, err.(error))
			return
		}
		utils.ErrorResponse(c, apperror.Unauthorized("Authorization header required"))
	}
}

// AdminID returns the id of the admin identified for this request
func AdminID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(adminIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// Actor is AdminID as an optional value, nil for anonymous requests
func Actor(c *gin.Context) *uuid.UUID {
	if id, ok := AdminID(c); ok {
		return &id
	}
	return nil
}
