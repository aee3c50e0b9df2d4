package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/seoscope/audit-console/pkg/interfaces"
	"github.com/seoscope/audit-console/pkg/models"
)

// Responses larger than this are truncated on read.
const maxBodySize = 5 * 1024 * 1024

// Client implements the HTTPClient interface
type Client struct {
	client  *http.Client
	logger  interfaces.Logger
	timeout time.Duration
}

func New(timeout time.Duration, logger interfaces.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout, // overall request deadline (includes headers + body)
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   2 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:          20,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       60 * time.Second,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger:  logger,
		timeout: timeout,
	}
}

// Get performs an HTTP GET request
func (c *Client) Get(ctx context.Context, url string) (*models.HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "AuditConsole/1.0")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// PostJSON performs an HTTP POST request with a JSON-encoded body
func (c *Client) PostJSON(ctx context.Context, url string, body any) (*models.HTTPResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "AuditConsole/1.0")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*models.HTTPResponse, error) {
	c.logger.Debug("Making HTTP request",
		"method", req.Method,
		"url", req.URL.String(),
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("HTTP request failed",
			"url", req.URL.String(),
			"error", err,
			"duration", time.Since(start),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	limitedReader := io.LimitReader(resp.Body, maxBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		c.logger.Error("Failed to read response body",
			"url", req.URL.String(),
			"error", err,
		)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("HTTP response received",
		"url", req.URL.String(),
		"status_code", resp.StatusCode,
		"content_length", len(body),
		"duration", time.Since(start),
	)

	return &models.HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}, nil
}

// Ensure Client implements interfaces.HTTPClient
var _ interfaces.HTTPClient = (*Client)(nil)
