package handlers

import (
	"log/slog"
	"net/http"

	"customer-pipeline/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers answer failures through SendError (known codes, client-facing details)
// or SendSystemError (anything unexpected; the cause is logged, never returned).

// TraceIDContextKey matches the key set by middleware.RequestID
const TraceIDContextKey = "trace_id"

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the envelope for code with the status registered for it
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(resp.GetHTTPStatus(), resp)
}

// SendSystemError logs err and answers 500 SYSTEM_001 without exposing it
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	resp, cause := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "Request failed with system error",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", cause,
	)
	return c.JSON(http.StatusInternalServerError, resp)
}
