package middleware

import (
	"net/http"
	"slices"

	"health-intel-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS answers cross-origin requests from the configured origins.
// A "*" entry allows any other origin without credentials.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	allowAny := slices.Contains(cfg.AllowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		header := c.Writer.Header()

		switch {
		case origin == "":
		case slices.Contains(cfg.AllowedOrigins, origin):
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Add("Vary", "Origin")
			setCORSHeaders(header)
		case allowAny:
			header.Set("Access-Control-Allow-Origin", "*")
			setCORSHeaders(header)
		}

		// Handle preflight OPTIONS request
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func setCORSHeaders(header http.Header) {
	header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
	header.Set("Access-Control-Max-Age", "86400")
}
