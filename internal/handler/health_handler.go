package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports service liveness and database connectivity.
// GET /health
func (s *Server) Health(c *gin.Context) {
	status := "healthy"
	database := "ok"
	httpStatus := http.StatusOK

	if s.DB != nil {
		sqlDB, err := s.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status = "unhealthy"
			database = "error"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	payload := gin.H{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if startTime, exists := c.Get("serverStartTime"); exists {
		if t, ok := startTime.(time.Time); ok {
			payload["uptime"] = time.Since(t).String()
		}
	}

	c.JSON(httpStatus, payload)
}
