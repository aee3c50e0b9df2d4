package interfaces

import (
	"context"

	"github.com/seoscope/audit-console/pkg/models"
)

// AnalysisClient defines the contract for calling the remote analysis service.
// The console depends on this abstraction so the transport can be mocked in tests.
type AnalysisClient interface {
	Analyze(ctx context.Context, input models.AuditInput) (*models.AnalysisResult, error)
	CheckHealth(ctx context.Context) error
}

// HTTPClient defines the contract for low-level HTTP operations.
type HTTPClient interface {
	Get(ctx context.Context, url string) (*models.HTTPResponse, error)
	PostJSON(ctx context.Context, url string, body any) (*models.HTTPResponse, error)
}

// Logger defines the contract for logging operations.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// MetricsCollector defines the contract for metrics collection.
type MetricsCollector interface {
	RecordRequest(method, path string, statusCode int, duration float64)
	RecordSubmission(status string, duration float64)
	RecordValidationFailure(field string)
}
