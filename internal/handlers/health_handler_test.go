package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-pipeline/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Healthy(t *testing.T) {
	db := database.SetupTestDB(t)
	handler := NewHealthCheckHandler(db.DB)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HealthCheck(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"pipeline-service"}`, rec.Body.String())
}

func TestHealthCheck_DatabaseUnavailable(t *testing.T) {
	db := database.SetupTestDB(t)
	require.NoError(t, db.Close())
	handler := NewHealthCheckHandler(db.DB)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-health")

	require.NoError(t, handler.HealthCheck(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var errorResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorResp))
	assert.Equal(t, "SYSTEM_003", errorResp.Error.Code)
	assert.Equal(t, "trace-health", errorResp.Error.TraceID)
}
