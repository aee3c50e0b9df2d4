package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seoscope/audit-console/pkg/interfaces"
	"github.com/seoscope/audit-console/pkg/mocks"
)

func newQuietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	return mockLogger
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	timeout := 30 * time.Second
	client := New(timeout, newQuietLogger(ctrl))

	assert.NotNil(t, client)
	assert.NotNil(t, client.client)
	assert.Equal(t, timeout, client.timeout)
	assert.Equal(t, timeout, client.client.Timeout)

	var _ interfaces.HTTPClient = client
}

func TestClientGetSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AuditConsole/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer server.Close()

	client := New(10*time.Second, newQuietLogger(ctrl))

	response, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, `{"status":"healthy"}`, string(response.Body))
	assert.Equal(t, "application/json", response.Headers.Get("Content-Type"))
}

func TestClientPostJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type payload struct {
		Name string `json:"name"`
		Days int    `json:"days"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, payload{Name: "audit", Days: 30}, got)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(10*time.Second, newQuietLogger(ctrl))

	response, err := client.PostJSON(context.Background(), server.URL, payload{Name: "audit", Days: 30})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, response.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(response.Body))
}

func TestClientPostJSONForwardsRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-123", r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(10*time.Second, newQuietLogger(ctrl))
	ctx := context.WithValue(context.Background(), "request_id", "req-123")

	_, err := client.PostJSON(ctx, server.URL, map[string]string{"k": "v"})

	require.NoError(t, err)
}

func TestClientPostJSONUnmarshalableBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := New(10*time.Second, newQuietLogger(ctrl))

	_, err := client.PostJSON(context.Background(), "http://localhost", func() {})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal request body")
}

func TestClientGetNetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(10*time.Second, newQuietLogger(ctrl))

	_, err := client.Get(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientGetContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	client := New(10*time.Second, newQuietLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, server.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
