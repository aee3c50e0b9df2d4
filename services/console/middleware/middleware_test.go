package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seoscope/audit-console/pkg/interfaces"
)

// TestLogger implements the Logger interface for testing
type TestLogger struct {
	InfoCalls  []LogCall
	ErrorCalls []LogCall
	mu         sync.Mutex
}

type LogCall struct {
	Message string
	Args    []any
}

func (t *TestLogger) Debug(msg string, args ...any) {}

func (t *TestLogger) Info(msg string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.InfoCalls = append(t.InfoCalls, LogCall{Message: msg, Args: args})
}

func (t *TestLogger) Warn(msg string, args ...any) {}

func (t *TestLogger) Error(msg string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ErrorCalls = append(t.ErrorCalls, LogCall{Message: msg, Args: args})
}

func (t *TestLogger) With(args ...any) interfaces.Logger {
	return t
}

// TestMetricsCollector implements the MetricsCollector interface for testing
type TestMetricsCollector struct {
	RequestCalls []RequestMetricsCall
	mu           sync.Mutex
}

type RequestMetricsCall struct {
	Method     string
	Path       string
	StatusCode int
	Duration   float64
}

func (m *TestMetricsCollector) RecordRequest(method, path string, statusCode int, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCalls = append(m.RequestCalls, RequestMetricsCall{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Duration:   duration,
	})
}

func (m *TestMetricsCollector) RecordSubmission(status string, duration float64) {}
func (m *TestMetricsCollector) RecordValidationFailure(field string)             {}

func TestRequestIDGeneratesID(t *testing.T) {
	var capturedID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := r.Context().Value("request_id").(string)
		assert.True(t, ok)
		capturedID = id
	}))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.NotEmpty(t, capturedID)
	_, err := uuid.Parse(capturedID)
	assert.NoError(t, err)
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPreservesIncomingID(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value("request_id").(string)
		assert.Equal(t, "incoming-123", id)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "incoming-123")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "incoming-123", w.Header().Get("X-Request-ID"))
}

func TestLoggingRecordsCompletion(t *testing.T) {
	logger := &TestLogger{}

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("POST", "/api/v1/submissions", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Len(t, logger.InfoCalls, 1)
	assert.Equal(t, "Request completed", logger.InfoCalls[0].Message)

	// status appears among the logged key/value pairs
	args := logger.InfoCalls[0].Args
	found := false
	for i := 0; i < len(args)-1; i += 2 {
		if args[i] == "status" {
			assert.Equal(t, http.StatusTeapot, args[i+1])
			found = true
		}
	}
	assert.True(t, found, "status not logged")
}

func TestMetricsRecordsRequest(t *testing.T) {
	collector := &TestMetricsCollector{}

	handler := Metrics(collector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	req := httptest.NewRequest("POST", "/api/v1/submissions", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Len(t, collector.RequestCalls, 1)
	call := collector.RequestCalls[0]
	assert.Equal(t, "POST", call.Method)
	assert.Equal(t, "/api/v1/submissions", call.Path)
	assert.Equal(t, http.StatusBadRequest, call.StatusCode)
	assert.GreaterOrEqual(t, call.Duration, 0.0)
}

func TestRecoveryCatchesPanic(t *testing.T) {
	logger := &TestLogger{}

	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, logger.ErrorCalls, 1)
	assert.Equal(t, "Panic recovered", logger.ErrorCalls[0].Message)
}

func TestCORSHeaders(t *testing.T) {
	handler := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSPreflight(t *testing.T) {
	called := false
	handler := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("OPTIONS", "/api/v1/submissions", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called, "preflight must short-circuit")
}

func TestResponseWriterCapturesStatus(t *testing.T) {
	recorder := httptest.NewRecorder()
	wrapped := &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}

	wrapped.WriteHeader(http.StatusNotFound)
	wrapped.WriteHeader(http.StatusOK) // second call ignored

	assert.Equal(t, http.StatusNotFound, wrapped.statusCode)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestResponseWriterDefaultsOnWrite(t *testing.T) {
	recorder := httptest.NewRecorder()
	wrapped := &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}

	_, err := wrapped.Write([]byte("body"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, wrapped.statusCode)
	assert.Equal(t, "body", recorder.Body.String())
}
