package models

import (
	"time"

	"github.com/google/uuid"
)

// IngestionState is a stage of a single ingestion run
type IngestionState string

const (
	IngestionStateIdle        IngestionState = "idle"
	IngestionStateFetching    IngestionState = "fetching"
	IngestionStateNormalizing IngestionState = "normalizing"
	IngestionStateWriting     IngestionState = "writing"
	IngestionStateSucceeded   IngestionState = "succeeded"
	IngestionStateFailed      IngestionState = "failed"
)

const IngestionStatusSuccess = "success"

// IngestionResult summarizes a successful ingestion run
type IngestionResult struct {
	RunID            uuid.UUID
	RecordsFetched   int
	RecordsProcessed int
	NulledFields     int
	StartedAt        time.Time
	FinishedAt       time.Time
}

// Duration returns the wall time spent in the run
func (r *IngestionResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
