package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"feedboard/internal/logger"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
}

// Healthz reports liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} statusResponse
// @Failure 503 {object} errorResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c echo.Context) error {
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		logger.Error("health check failed", "module", "handler", "error", err)
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable"})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}
