package handlers

import (
	"context"

	"customer-pipeline/internal/services"

	"github.com/labstack/echo/v4"
)

// requestContext returns the request context tagged with the trace ID so service logs can be correlated
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if traceID := getTraceID(c); traceID != "" {
		ctx = services.WithRequestID(ctx, traceID)
	}
	return ctx
}
