package services

import (
	"context"
	"time"

	"customer-pipeline/internal/dto"
	"customer-pipeline/internal/models"

	"github.com/google/uuid"
)

// CustomerSourceServiceInterface retrieves raw customer records from the upstream paginated API
type CustomerSourceServiceInterface interface {
	// FetchAll walks every page and returns the records in source order.
	// Any failure aborts the walk and no partial result is returned.
	FetchAll(ctx context.Context) ([]dto.RawCustomer, error)
	FetchPage(ctx context.Context, page, limit int) (*dto.SourcePage, error)
}

// IngestionServiceInterface runs one complete fetch, normalize and upsert cycle
type IngestionServiceInterface interface {
	Run(ctx context.Context) (*models.IngestionResult, error)
}

// CustomerQueryServiceInterface serves the read side of the store
type CustomerQueryServiceInterface interface {
	ListCustomers(ctx context.Context, page, limit int) (*dto.ListCustomersResponse, error)
	GetCustomer(ctx context.Context, customerID string) (*dto.CustomerResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddToCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type IngestionLoggerInterface interface {
	LogRunStarted(ctx context.Context, runID uuid.UUID)
	LogStageChanged(ctx context.Context, runID uuid.UUID, from, to models.IngestionState)
	LogPageFetched(ctx context.Context, page, records, accumulated, total int)
	LogFieldNulled(ctx context.Context, runID uuid.UUID, customerID, field string)
	LogRunCompleted(ctx context.Context, result *models.IngestionResult)
	LogRunFailed(ctx context.Context, runID uuid.UUID, stage models.IngestionState, errorMsg string, durationMs int64)
}
