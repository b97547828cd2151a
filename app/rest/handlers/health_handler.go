package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portal-service/app/port"
)

var startTime = time.Now()

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	portal   string
	identity port.IdentityProvider
	dbPing   func() error
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(portal string, identity port.IdentityProvider, dbPing func() error, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		portal:   portal,
		identity: identity,
		dbPing:   dbPing,
		logger:   logger.With("component", "health_handler"),
	}
}

// HealthResponse is the basic health payload
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Portal    string    `json:"portal"`
	Uptime    string    `json:"uptime"`
}

// HealthStatus is the state of one dependency
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse aggregates dependency checks
type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Checks    map[string]HealthStatus `json:"checks"`
}

// HealthCheck handles GET /api/health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "portal-service",
		Portal:    h.portal,
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck handles GET /api/ready. It verifies the database and the
// identity provider are reachable.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	checks := make(map[string]HealthStatus)
	allHealthy := true

	if err := h.dbPing(); err != nil {
		checks["database"] = HealthStatus{Status: "unhealthy", Message: err.Error()}
		allHealthy = false
	} else {
		checks["database"] = HealthStatus{Status: "healthy"}
	}

	if err := h.identity.Health(c.Request().Context()); err != nil {
		checks["identity_provider"] = HealthStatus{Status: "unhealthy", Message: err.Error()}
		allHealthy = false
	} else {
		checks["identity_provider"] = HealthStatus{Status: "healthy"}
	}

	status := http.StatusOK
	overall := "ready"
	if !allHealthy {
		status = http.StatusServiceUnavailable
		overall = "not ready"
		h.logger.Warn("readiness check failed", "checks", checks)
	}

	return c.JSON(status, ReadinessResponse{
		Status:    overall,
		Timestamp: time.Now(),
		Checks:    checks,
	})
}

// LivenessCheck handles GET /api/live
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}
