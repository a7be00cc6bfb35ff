package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	service string
	version string
	started time.Time
}

func NewHealthHandler(service, version string) *HealthHandler {
	return &HealthHandler{service: service, version: version, started: time.Now().UTC()}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": h.service,
		"version": h.version,
		"status":  "ok",
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
