package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"customer-pipeline/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a logged 500 SYSTEM_001 response.
// A nil logger falls back to slog.Default().
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				req := c.Request()
				logger.ErrorContext(req.Context(), "Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprint(r),
					"stack_trace", string(debug.Stack()),
					"path", req.URL.Path,
					"method", req.Method,
				)

				if c.Response().Committed {
					return
				}
				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
					logger.Error("Failed to send panic recovery response", "trace_id", traceID, "error", err)
				}
			}()

			return next(c)
		}
	}
}
