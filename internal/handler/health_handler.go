package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const serviceName = "health-intel-backend"

// Pinger performs a storage round-trip
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness outside the API envelope
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(db Pinger, timeout time.Duration) *HealthHandler {
	return &HealthHandler{db: db, timeout: timeout}
}

// HealthCheck answers 200 while storage responds and 503 otherwise
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status, database, code := "ok", "connected", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("health check failed")
		status, database, code = "unavailable", "disconnected", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"service":   serviceName,
		"database":  database,
		"timestamp": time.Now().Unix(),
	})
}
