package services

import (
	"context"
	"log/slog"
	"time"

	"customer-pipeline/internal/models"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID attaches the HTTP trace ID to a context so ingestion events can be correlated
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// IngestionLogger provides structured logging for ingestion runs
type IngestionLogger struct {
	logger *slog.Logger
}

// NewIngestionLogger creates a new ingestion logger
func NewIngestionLogger(logger *slog.Logger) IngestionLoggerInterface {
	return &IngestionLogger{
		logger: logger,
	}
}

// LogRunStarted logs the start of an ingestion run
func (il *IngestionLogger) LogRunStarted(ctx context.Context, runID uuid.UUID) {
	il.logger.InfoContext(ctx, "ingestion started",
		slog.String("event_type", "ingestion_started"),
		slog.String("run_id", runID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogStageChanged logs a transition between ingestion stages
func (il *IngestionLogger) LogStageChanged(ctx context.Context, runID uuid.UUID, from, to models.IngestionState) {
	il.logger.DebugContext(ctx, "ingestion stage changed",
		slog.String("event_type", "ingestion_stage_changed"),
		slog.String("run_id", runID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogPageFetched logs one page retrieved from the upstream source
func (il *IngestionLogger) LogPageFetched(ctx context.Context, page, records, accumulated, total int) {
	il.logger.DebugContext(ctx, "source page fetched",
		slog.String("event_type", "source_page_fetched"),
		slog.Int("page", page),
		slog.Int("records", records),
		slog.Int("accumulated", accumulated),
		slog.Int("total", total),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogFieldNulled logs an optional field whose raw value could not be normalized
func (il *IngestionLogger) LogFieldNulled(ctx context.Context, runID uuid.UUID, customerID, field string) {
	il.logger.WarnContext(ctx, "malformed field stored as null",
		slog.String("event_type", "field_nulled"),
		slog.String("run_id", runID.String()),
		slog.String("customer_id", customerID),
		slog.String("field", field),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogRunCompleted logs a successful ingestion run
func (il *IngestionLogger) LogRunCompleted(ctx context.Context, result *models.IngestionResult) {
	il.logger.InfoContext(ctx, "ingestion completed",
		slog.String("event_type", "ingestion_completed"),
		slog.String("run_id", result.RunID.String()),
		slog.Int("records_fetched", result.RecordsFetched),
		slog.Int("records_processed", result.RecordsProcessed),
		slog.Int("nulled_fields", result.NulledFields),
		slog.Int64("duration_ms", result.Duration().Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogRunFailed logs a failed ingestion run along with the stage it failed in
func (il *IngestionLogger) LogRunFailed(ctx context.Context, runID uuid.UUID, stage models.IngestionState, errorMsg string, durationMs int64) {
	il.logger.ErrorContext(ctx, "ingestion failed",
		slog.String("event_type", "ingestion_failed"),
		slog.String("run_id", runID.String()),
		slog.String("stage", string(stage)),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}
