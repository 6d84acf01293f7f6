package handlers

import (
	"net/http"

	"customer-pipeline/internal/dto"
	"customer-pipeline/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const ServiceName = "pipeline-service"

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports healthy only while the store answers a ping
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /api/health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}
