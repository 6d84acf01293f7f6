package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"customer-pipeline/internal/models"
	"customer-pipeline/internal/normalize"
	"customer-pipeline/internal/repositories"
	"customer-pipeline/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrSourceUnavailable = errors.New("customer source unavailable")
	ErrInvalidRecord     = errors.New("invalid customer record")
	ErrWriteFailure      = errors.New("failed to write customers")
)

// IngestionService runs the fetch, normalize and upsert stages of one ingestion
type IngestionService struct {
	source    CustomerSourceServiceInterface
	repo      repositories.CustomerRepositoryInterface
	validator *validation.Validator
	events    IngestionLoggerInterface
	logger    *slog.Logger
	metrics   MetricsRecorderInterface
	now       func() time.Time
}

// NewIngestionService creates a new ingestion orchestrator
func NewIngestionService(
	source CustomerSourceServiceInterface,
	repo repositories.CustomerRepositoryInterface,
	validator *validation.Validator,
	events IngestionLoggerInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) IngestionServiceInterface {
	return &IngestionService{
		source:    source,
		repo:      repo,
		validator: validator,
		events:    events,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

type ingestionRun struct {
	id      uuid.UUID
	state   models.IngestionState
	started time.Time
}

// Run executes a single ingestion. It either commits every fetched record and returns the
// processed count, or fails with one of ErrSourceUnavailable, ErrInvalidRecord or
// ErrWriteFailure and leaves the store untouched.
func (s *IngestionService) Run(ctx context.Context) (*models.IngestionResult, error) {
	run := &ingestionRun{
		id:      uuid.New(),
		state:   models.IngestionStateIdle,
		started: s.now(),
	}
	s.events.LogRunStarted(ctx, run.id)

	s.transition(ctx, run, models.IngestionStateFetching)
	raw, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, run, "source_unavailable", fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}

	s.transition(ctx, run, models.IngestionStateNormalizing)
	customers := make([]models.Customer, 0, len(raw))
	positions := make(map[string]int, len(raw))
	nulledFields := 0

	for i, record := range raw {
		customer, nulled := normalize.Customer(record)
		for _, field := range nulled {
			nulledFields++
			s.events.LogFieldNulled(ctx, run.id, customer.CustomerID, field)
			s.metrics.IncrementCounter("field_nulled", map[string]string{"field": field})
		}

		if err := s.validator.ValidateCustomer(customer); err != nil {
			return nil, s.fail(ctx, run, "invalid_record",
				fmt.Errorf("%w: record %d (customer_id %q): %w", ErrInvalidRecord, i, customer.CustomerID, err))
		}

		// a repeated customer_id replaces the earlier occurrence so one statement never
		// touches the same row twice
		if pos, seen := positions[customer.CustomerID]; seen {
			s.logger.WarnContext(ctx, "duplicate customer_id in source batch",
				"run_id", run.id.String(),
				"customer_id", customer.CustomerID,
			)
			customers[pos] = *customer
			continue
		}
		positions[customer.CustomerID] = len(customers)
		customers = append(customers, *customer)
	}

	s.transition(ctx, run, models.IngestionStateWriting)
	written, err := s.repo.UpsertBatch(ctx, customers)
	if err != nil {
		return nil, s.fail(ctx, run, "write_failure", fmt.Errorf("%w: %w", ErrWriteFailure, err))
	}

	s.transition(ctx, run, models.IngestionStateSucceeded)

	result := &models.IngestionResult{
		RunID:            run.id,
		RecordsFetched:   len(raw),
		RecordsProcessed: written,
		NulledFields:     nulledFields,
		StartedAt:        run.started,
		FinishedAt:       s.now(),
	}

	s.metrics.IncrementCounter("ingestion_run", map[string]string{"status": models.IngestionStatusSuccess})
	s.metrics.RecordProcessingTime("ingestion_run", result.Duration())
	s.metrics.AddToCounter("records_processed", float64(written), nil)
	if total, err := s.repo.Count(ctx); err == nil {
		s.metrics.RecordGauge("customers_stored", float64(total), nil)
	}
	s.events.LogRunCompleted(ctx, result)

	return result, nil
}

func (s *IngestionService) transition(ctx context.Context, run *ingestionRun, to models.IngestionState) {
	s.events.LogStageChanged(ctx, run.id, run.state, to)
	s.metrics.IncrementCounter("ingestion_stage", map[string]string{"stage": string(to)})
	run.state = to
}

func (s *IngestionService) fail(ctx context.Context, run *ingestionRun, status string, err error) error {
	stage := run.state
	s.transition(ctx, run, models.IngestionStateFailed)

	duration := s.now().Sub(run.started)
	s.metrics.IncrementCounter("ingestion_run", map[string]string{"status": status})
	s.metrics.RecordProcessingTime("ingestion_run", duration)
	s.events.LogRunFailed(ctx, run.id, stage, err.Error(), duration.Milliseconds())

	return err
}
