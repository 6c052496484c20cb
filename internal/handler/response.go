package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"feedboard/internal/logger"
	"feedboard/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// writeServiceError converts a service/storage error into a JSON response.
// Validation failures carry their message to the client; everything else is
// a storage or internal failure whose detail is logged, not leaked.
func writeServiceError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrInvalid) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	logger.Error("request failed",
		"module", "handler",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
