package api

import (
	"context"
	"net/http"
	"time"

	"cleanresponse/internal/api/types"
	"cleanresponse/pkg/response"

	"github.com/gin-gonic/gin"
)

// Pinger is the part of the storage layer the health endpoint needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler manages public endpoints.
//
// It provides system-level information suitable for health checks,
// liveness probes, and basic diagnostics.
type Handler struct {
	db        Pinger
	startTime time.Time
}

// NewHandler initializes a new public API handler.
//
// db may be nil, in which case the database is reported unhealthy.
func NewHandler(db Pinger) *Handler {
	return &Handler{
		db:        db,
		startTime: time.Now(),
	}
}

// Ping handles GET /api/ping
//
// Response:
//   - 200 OK with a success envelope holding {"message": "pong"}
func (h *Handler) Ping(c *gin.Context) {
	types.JSON(c, http.StatusOK, response.Success(gin.H{"message": "pong"}, "", types.Options(c)...))
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status         string `json:"status"`
	Uptime         string `json:"uptime"`
	Database       string `json:"database"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

// Health handles GET /api/health
//
// Overall status is "healthy" only if the database answers a ping.
//
// Response:
//   - 200 OK with a success envelope holding the health report
//   - 503 Service Unavailable with the same report in details otherwise
func (h *Handler) Health(c *gin.Context) {
	dbStatus, responseTime := h.checkDatabaseHealth(c.Request.Context())

	status := HealthStatus{
		Status:         "healthy",
		Uptime:         time.Since(h.startTime).Round(time.Second).String(),
		Database:       dbStatus,
		ResponseTimeMs: responseTime,
	}

	if dbStatus != "healthy" {
		status.Status = "unhealthy"
		types.AbortWithError(c, response.ServiceUnavailable("", types.Options(c, response.WithDetails(map[string]any{
			"status":           status.Status,
			"uptime":           status.Uptime,
			"database":         status.Database,
			"response_time_ms": status.ResponseTimeMs,
		}))...))
		return
	}

	types.JSON(c, http.StatusOK, response.Success(status, "Service healthy", types.Options(c)...))
}

// checkDatabaseHealth pings the database and measures the round trip.
func (h *Handler) checkDatabaseHealth(ctx context.Context) (string, int64) {
	if h.db == nil {
		return "unhealthy", 0
	}

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()
	if err != nil {
		return "unhealthy", responseTime
	}

	return "healthy", responseTime
}
