package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Pinger reports whether an upstream dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness answers as long as the process is running.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDependenciesHandler probes the session store and the backend.
type HealthDependenciesHandler struct {
	rdb     *redis.Client
	backend Pinger
}

func NewHealthDependenciesHandler(rdb *redis.Client, backend Pinger) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{rdb: rdb, backend: backend}
}

// Readiness reports per-dependency status, 503 when any is down.
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	deps := map[string]string{"redis": "ok", "backend": "ok"}
	code := http.StatusOK

	if err := h.rdb.Ping(ctx).Err(); err != nil {
		deps["redis"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := h.backend.Ping(ctx); err != nil {
		deps["backend"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, deps)
}
