package handlers

import (
	"net/http"
	"os"
	"time"

	"cashflow-report/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	exportPath string
}

// NewHealthCheckHandler creates a health check that requires the transaction export to be readable
func NewHealthCheckHandler(exportPath string) *HealthCheckHandler {
	return &HealthCheckHandler{exportPath: exportPath}
}

// HealthCheck reports whether the transaction export can be served
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Transaction export missing or unreadable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	info, err := os.Stat(h.exportPath)
	if err != nil || info.IsDir() {
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceIDFromContext(c),
			errors.WithDetails("Transaction export is not readable"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":     "healthy",
		"time":       time.Now().UTC().Format(time.RFC3339),
		"lastImport": info.ModTime().UTC().Format(time.RFC3339),
	})
}
