// Package errors provides standardized error handling for HTTP handlers.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidOfferID    ErrorCode = "INVALID_OFFER_ID"
	ErrCodeOfferNotFound     ErrorCode = "OFFER_NOT_FOUND"
	ErrCodeInvalidPartnerURL ErrorCode = "INVALID_PARTNER_URL"
	ErrCodeClickRecordFailed ErrorCode = "CLICK_RECORD_FAILED"
	ErrCodeRateLimited       ErrorCode = "RATE_LIMITED"

	ErrCodeOrganizationNotFound ErrorCode = "ORGANIZATION_NOT_FOUND"
	ErrCodeInvalidRequest       ErrorCode = "INVALID_REQUEST"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"
	ErrCodeCacheUnavailable         ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying error, if any.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata attaches a key to the error and returns it.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidOfferIDError creates a non-retryable validation error.
func NewInvalidOfferIDError(offerID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidOfferID,
		Message:   "Invalid offer id",
		Details:   fmt.Sprintf("offerId: %q", offerID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOfferNotFoundError creates a non-retryable lookup error.
func NewOfferNotFoundError(offerID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOfferNotFound,
		Message:   "Offer not found",
		Details:   fmt.Sprintf("offerId: %s", offerID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewOrganizationNotFoundError(slug string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOrganizationNotFound,
		Message:   "Organization not found",
		Details:   fmt.Sprintf("slug: %s", slug),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError reports a request the server could not parse.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidPartnerURLError(offerID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPartnerURL,
		Message:   "Invalid partner URL",
		Details:   fmt.Sprintf("offerId: %s, error: %s", offerID, errString(err)),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewClickRecordFailedError creates a retryable insert error.
func NewClickRecordFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeClickRecordFailed,
		Message:   "Failed to record click",
		Details:   errString(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewRateLimitedError(key string, limit int) *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   "Too many requests",
		Details:   fmt.Sprintf("key: %s, limit: %d", key, limit),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   errString(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(queryType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("queryType: %s, error: %s", queryType, errString(err)),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(queryType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("queryType: %s", queryType),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError reports a Redis failure the request survived.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Cache unavailable",
		Details:   errString(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewSchemaValidationFailedError reports a document that does not match
// its JSON schema.
func NewSchemaValidationFailedError(schema string, problems []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   fmt.Sprintf("Document does not match schema %s", schema),
		Details:   strings.Join(problems, "; "),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal Server Error",
		Details:   errString(err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to response status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeInvalidOfferID:           http.StatusBadRequest,
	ErrCodeOfferNotFound:            http.StatusNotFound,
	ErrCodeInvalidPartnerURL:        http.StatusInternalServerError,
	ErrCodeClickRecordFailed:        http.StatusInternalServerError,
	ErrCodeRateLimited:              http.StatusTooManyRequests,
	ErrCodeOrganizationNotFound:     http.StatusNotFound,
	ErrCodeInvalidRequest:           http.StatusBadRequest,
	ErrCodeDatabaseConnectionFailed: http.StatusServiceUnavailable,
	ErrCodeQueryExecutionFailed:     http.StatusInternalServerError,
	ErrCodeQueryTimeout:             http.StatusGatewayTimeout,
	ErrCodeCacheUnavailable:         http.StatusServiceUnavailable,
	ErrCodeSchemaValidationFailed:   http.StatusInternalServerError,
	ErrCodeInternal:                 http.StatusInternalServerError,
}

// HTTPStatus returns the mapped status, or 500 for unknown codes.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// AsStandardError finds a StandardError in err's chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// ==========================
// 4. Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeClickRecordFailed,
		ErrCodeCacheUnavailable:
		return 3

	case ErrCodeQueryTimeout:
		return 2

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// IsRetryable reports whether err carries a retryable StandardError.
func IsRetryable(err error) bool {
	stdErr, ok := AsStandardError(err)
	return ok && stdErr.Retryable
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "OFFER") || strings.Contains(codeStr, "PARTNER") || strings.Contains(codeStr, "CLICK"):
		return "TRACKING"
	case strings.Contains(codeStr, "ORGANIZATION"):
		return "CATALOG"
	case strings.Contains(codeStr, "RATE_LIMITED"):
		return "THROTTLING"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "SCHEMA") || strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "REQUEST"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
