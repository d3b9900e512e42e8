package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helpers
// ==========================

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"warn", msg, fields})
}

func (l *testLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"error", msg, fields})
}

// ==========================
// Status Mapping
// ==========================

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    *StandardError
		status int
	}{
		{NewInvalidOfferIDError("x"), http.StatusBadRequest},
		{NewOfferNotFoundError("offer-1"), http.StatusNotFound},
		{NewInvalidPartnerURLError("offer-1", fmt.Errorf("bad")), http.StatusInternalServerError},
		{NewRateLimitedError("ip", 30), http.StatusTooManyRequests},
		{NewInvalidRequestError("malformed form"), http.StatusBadRequest},
		{NewQueryTimeoutError("offer_url"), http.StatusGatewayTimeout},
		{NewDatabaseConnectionFailedError(fmt.Errorf("refused")), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err.Code))
		})
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus("SOMETHING_ELSE"))
}

func TestStandardError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	wrapped := fmt.Errorf("record click: %w", NewClickRecordFailedError(cause))

	stdErr, ok := AsStandardError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeClickRecordFailed, stdErr.Code)
	assert.True(t, stderrors.Is(wrapped, cause))
	assert.True(t, IsRetryable(wrapped))
	assert.False(t, IsRetryable(cause))
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "TRACKING", GetErrorCategory(ErrCodeOfferNotFound))
	assert.Equal(t, "TRACKING", GetErrorCategory(ErrCodeInvalidPartnerURL))
	assert.Equal(t, "THROTTLING", GetErrorCategory(ErrCodeRateLimited))
	assert.Equal(t, "CATALOG", GetErrorCategory(ErrCodeOrganizationNotFound))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeQueryTimeout))
	assert.Equal(t, "CACHE", GetErrorCategory(ErrCodeCacheUnavailable))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeSchemaValidationFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidRequest))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestRetryCounts(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeDatabaseConnectionFailed))
	assert.Equal(t, 2, GetRetryCount(ErrCodeQueryTimeout))
	assert.False(t, IsRetryableErrorCode(ErrCodeOfferNotFound))
}

// ==========================
// HTTP Error Handler
// ==========================

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		body      string
		wantLevel string
	}{
		{"client error", NewInvalidOfferIDError("abc"), http.StatusBadRequest, "Invalid offer id", "warn"},
		{"not found", NewOfferNotFoundError("offer-00001"), http.StatusNotFound, "Offer not found", "warn"},
		{"organization not found", NewOrganizationNotFoundError("nope"), http.StatusNotFound, "Organization not found", "warn"},
		{"wrapped", fmt.Errorf("lookup: %w", NewInvalidPartnerURLError("offer-00001", nil)), http.StatusInternalServerError, "Invalid partner URL", "error"},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError, "Internal Server Error", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &testLogger{}
			h := NewErrorHandler(log)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/go/abc", nil)

			h.HandleHTTPError(rec, req, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"error": tt.body}, body)

			require.Len(t, log.entries, 1)
			assert.Equal(t, tt.wantLevel, log.entries[0].level)
			assert.Equal(t, "/go/abc", log.entries[0].fields["path"])
		})
	}
}

func TestWithMetadata(t *testing.T) {
	err := NewOfferNotFoundError("offer-1").WithMetadata("ip", "10.0.0.1")
	assert.Equal(t, "10.0.0.1", err.Metadata["ip"])
}
