package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"customer-pipeline/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	buf.Reset()
	return entry
}

func TestIngestionLogger_EventsCarryTypeAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewIngestionLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := WithRequestID(context.Background(), "trace-123")
	runID := uuid.New()

	logger.LogRunStarted(ctx, runID)
	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "ingestion_started", entry["event_type"])
	assert.Equal(t, runID.String(), entry["run_id"])
	assert.Equal(t, "trace-123", entry["request_id"])

	logger.LogFieldNulled(ctx, runID, "CUST-001", "date_of_birth")
	entry = decodeLogLine(t, &buf)
	assert.Equal(t, "field_nulled", entry["event_type"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "date_of_birth", entry["field"])

	logger.LogRunFailed(ctx, runID, models.IngestionStateWriting, "boom", 42)
	entry = decodeLogLine(t, &buf)
	assert.Equal(t, "ingestion_failed", entry["event_type"])
	assert.Equal(t, "writing", entry["stage"])
	assert.Equal(t, float64(42), entry["duration_ms"])
}

func TestIngestionLogger_RunCompleted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewIngestionLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	logger.LogRunCompleted(context.Background(), &models.IngestionResult{
		RunID:            uuid.New(),
		RecordsFetched:   250,
		RecordsProcessed: 250,
		StartedAt:        started,
		FinishedAt:       started.Add(1500 * time.Millisecond),
	})

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "ingestion_completed", entry["event_type"])
	assert.Equal(t, float64(250), entry["records_processed"])
	assert.Equal(t, float64(1500), entry["duration_ms"])
	assert.Equal(t, "", entry["request_id"])
}
