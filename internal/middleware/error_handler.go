package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"customer-pipeline/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

const unmatchedRoute = "unmatched"

// NewHTTPErrorHandler returns an echo error handler that renders every error as the standard
// envelope, logs it with the request's trace ID and counts it in api_errors_total.
// Errors reaching it are either echo.HTTPError (routing, binding), validator.ValidationErrors
// (query DTOs) or anything else, which is hidden behind SYSTEM_001.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse := buildErrorResponse(err, traceID)
		httpStatus := errorResponse.GetHTTPStatus()
		var echoErr *echo.HTTPError
		if stderrors.As(err, &echoErr) {
			httpStatus = echoErr.Code
		}

		logLevel := slog.LevelWarn
		if httpStatus >= http.StatusInternalServerError {
			logLevel = slog.LevelError
		}
		logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		endpoint := c.Path()
		if endpoint == "" {
			endpoint = unmatchedRoute
		}
		apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, endpoint, strconv.Itoa(httpStatus)).Inc()

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(httpStatus)
		} else {
			err = c.JSON(httpStatus, errorResponse)
		}
		if err != nil {
			logger.Error("Failed to send error response", "trace_id", traceID, "error", err.Error())
		}
	}
}

func buildErrorResponse(err error, traceID string) *errors.ErrorResponse {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		code := mapHTTPStatusToErrorCode(echoErr.Code)
		message := fmt.Sprintf("%v", echoErr.Message)
		if message == http.StatusText(echoErr.Code) {
			return errors.NewErrorResponse(code, traceID)
		}
		return errors.NewErrorResponse(code, traceID, errors.WithDetails(message))
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
		}
		return errors.NewValidationError(fieldErrors, traceID)
	}

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse
}

// mapHTTPStatusToErrorCode picks the envelope code for errors raised by echo itself
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity,
		http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusBadGateway:
		return errors.IngestSourceUnavailable
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
