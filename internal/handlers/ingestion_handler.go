package handlers

import (
	"errors"
	"net/http"

	"customer-pipeline/internal/dto"
	apierrors "customer-pipeline/internal/errors"
	"customer-pipeline/internal/models"
	"customer-pipeline/internal/services"

	"github.com/labstack/echo/v4"
)

// IngestionHandler triggers ingestion runs
type IngestionHandler struct {
	ingestionService services.IngestionServiceInterface
}

// NewIngestionHandler creates a new ingestion handler
func NewIngestionHandler(ingestionService services.IngestionServiceInterface) *IngestionHandler {
	return &IngestionHandler{
		ingestionService: ingestionService,
	}
}

// Ingest runs a full ingestion and reports how many records were upserted
// @Summary Run ingestion
// @Tags Ingestion
// @Produce json
// @Success 200 {object} dto.IngestResponse "Ingestion committed"
// @Failure 422 {object} errors.ErrorResponse "INGEST_003 - Source returned an unstorable record"
// @Failure 500 {object} errors.ErrorResponse "INGEST_002 - Write failed and was rolled back"
// @Failure 502 {object} errors.ErrorResponse "INGEST_001 - Source unavailable"
// @Router /api/ingest [post]
func (h *IngestionHandler) Ingest(c echo.Context) error {
	result, err := h.ingestionService.Run(requestContext(c))
	if err != nil {
		code := ingestionErrorCode(err)
		if code == apierrors.SystemInternalError {
			return SendSystemError(c, err)
		}
		return SendError(c, code, apierrors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.IngestResponse{
		Status:           models.IngestionStatusSuccess,
		RecordsProcessed: result.RecordsProcessed,
	})
}

func ingestionErrorCode(err error) apierrors.ErrorCode {
	switch {
	case errors.Is(err, services.ErrSourceUnavailable):
		return apierrors.IngestSourceUnavailable
	case errors.Is(err, services.ErrInvalidRecord):
		return apierrors.IngestInvalidRecord
	case errors.Is(err, services.ErrWriteFailure):
		return apierrors.IngestWriteFailed
	default:
		return apierrors.SystemInternalError
	}
}
