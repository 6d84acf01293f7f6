package errors

import "net/http"

// ErrorCode is a stable, documented identifier returned in every error envelope
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound  ErrorCode = "CUSTOMER_001"
	CustomerInvalidID ErrorCode = "CUSTOMER_004"
)

// Ingestion error codes (INGEST_*). Each one means the run wrote nothing.
const (
	IngestSourceUnavailable ErrorCode = "INGEST_001"
	IngestWriteFailed       ErrorCode = "INGEST_002"
	IngestInvalidRecord     ErrorCode = "INGEST_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

const unknownCodeMessage = "An error occurred"

type codeEntry struct {
	status  int
	message string
}

// registry is the single source of truth for each code's HTTP status and default message
var registry = map[ErrorCode]codeEntry{
	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Field value is out of allowed range"},

	CustomerNotFound:  {http.StatusNotFound, "Customer not found"},
	CustomerInvalidID: {http.StatusBadRequest, "Invalid customer ID format"},

	IngestSourceUnavailable: {http.StatusBadGateway, "Customer source is unavailable; nothing was written"},
	IngestWriteFailed:       {http.StatusInternalServerError, "Failed to write customers; the batch was rolled back"},
	IngestInvalidRecord:     {http.StatusUnprocessableEntity, "Source returned a record that cannot be stored; nothing was written"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Database connection error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemConfigurationError: {http.StatusInternalServerError, "System configuration error"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "Requested resource does not exist"},
}

// GetErrorMessage returns the default message for a code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if entry, ok := registry[code]; ok {
		return entry.message
	}
	return unknownCodeMessage
}

// GetHTTPStatus returns the status a code is served with; unknown codes are 500
func GetHTTPStatus(code ErrorCode) int {
	if entry, ok := registry[code]; ok {
		return entry.status
	}
	return http.StatusInternalServerError
}

// IsValidErrorCode reports whether code is registered
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}

// Codes returns every registered code
func Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
