package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/seoscope/audit-console/pkg/interfaces"
	"github.com/seoscope/audit-console/pkg/models"
	"github.com/seoscope/audit-console/pkg/submission"
)

// HTTPAnalysisClient talks to the remote analysis service over its one
// endpoint contract: POST /analyze with the serialized audit input, answered
// by a {success, data, error} envelope.
type HTTPAnalysisClient struct {
	baseURL    string
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

func NewAnalysisClient(baseURL string, httpClient interfaces.HTTPClient, logger interfaces.Logger) interfaces.AnalysisClient {
	return &HTTPAnalysisClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Analyze issues exactly one request per call: no retries, no queueing.
// Error normalization follows the envelope contract:
//   - transport failure            -> wrapped network error
//   - non-2xx status               -> ServerError, body message when parsable
//   - success:false                -> ServerError with the server message
//   - unparsable body              -> wrapped decode error
//   - success:true without data    -> ErrMissingData
func (c *HTTPAnalysisClient) Analyze(ctx context.Context, input models.AuditInput) (*models.AnalysisResult, error) {
	endpoint := c.baseURL + "/analyze"

	c.logger.Debug("Calling analysis service",
		"endpoint", endpoint,
		"url", input.URL,
		"root_domain", input.RootDomain,
		"date_range", input.DateRange,
	)

	start := time.Now()
	resp, err := c.httpClient.PostJSON(ctx, endpoint, input)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error("Analysis service call failed",
			"error", err,
			"endpoint", endpoint,
			"duration", duration,
		)
		return nil, fmt.Errorf("analysis service unreachable: %w", err)
	}

	c.logger.Debug("Analysis service responded",
		"status_code", resp.StatusCode,
		"duration", duration,
		"content_length", len(resp.Body),
	)

	if resp.StatusCode != http.StatusOK {
		// Surface the server's own message when the error body parses.
		var envelope models.AnalysisEnvelope
		if err := json.Unmarshal(resp.Body, &envelope); err == nil && envelope.Error != "" {
			return nil, &submission.ServerError{StatusCode: resp.StatusCode, Message: envelope.Error}
		}
		return nil, &submission.ServerError{StatusCode: resp.StatusCode}
	}

	var envelope models.AnalysisEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		c.logger.Error("Failed to parse analysis response",
			"error", err,
			"content_length", len(resp.Body),
		)
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	if !envelope.Success {
		return nil, &submission.ServerError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if envelope.Data == nil {
		return nil, submission.ErrMissingData
	}

	c.logger.Info("Analysis completed",
		"url", envelope.Data.URL,
		"word_count", envelope.Data.WordCount,
		"language", envelope.Data.Language,
		"duration", duration,
	)

	return envelope.Data, nil
}

// CheckHealth probes the analysis service health endpoint.
func (c *HTTPAnalysisClient) CheckHealth(ctx context.Context) error {
	endpoint := c.baseURL + "/health"

	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Analysis service health check failed",
			"status_code", resp.StatusCode,
			"response_body", string(resp.Body),
		)
		return fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}

	return nil
}
