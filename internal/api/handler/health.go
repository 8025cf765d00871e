package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger checks that a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Dependency is a named store checked by the readiness probe.
type Dependency struct {
	Name   string
	Pinger Pinger
}

// HealthHandler serves GET /api/health and GET /api/health/ready.
type HealthHandler struct {
	env     string
	db      Pinger
	deps    []Dependency
	timeout time.Duration
	now     func() time.Time
}

// NewHealthHandler builds the handler. db backs the database field of the
// health payload; deps are all checked by Readiness.
func NewHealthHandler(env string, db Pinger, deps ...Dependency) *HealthHandler {
	return &HealthHandler{
		env:     env,
		db:      db,
		deps:    deps,
		timeout: 3 * time.Second,
		now:     time.Now,
	}
}

type healthResponse struct {
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
}

// Health reports liveness plus the current database connectivity. It always
// answers 200.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	database := "Connected"
	if h.db == nil || h.db.Ping(ctx) != nil {
		database = "Disconnected"
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:      "OK",
		Message:     "Server is running!",
		Timestamp:   h.now().UTC(),
		Environment: h.env,
		Database:    database,
	})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness checks every configured dependency before declaring the service ready.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.deps))
	healthy := true

	for _, d := range h.deps {
		if err := d.Pinger.Ping(ctx); err != nil {
			deps[d.Name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[d.Name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
