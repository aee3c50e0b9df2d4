package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/seoscope/audit-console/pkg/interfaces"
	"github.com/seoscope/audit-console/pkg/models"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	serviceName    string
	analysisClient interfaces.AnalysisClient
	startTime      time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(serviceName string, analysisClient interfaces.AnalysisClient) *HealthHandler {
	return &HealthHandler{
		serviceName:    serviceName,
		analysisClient: analysisClient,
		startTime:      time.Now(),
	}
}

// Health handles the health check endpoint
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)

	if err := h.analysisClient.CheckHealth(ctx); err != nil {
		checks["analysis_service"] = "unhealthy: " + err.Error()
	} else {
		checks["analysis_service"] = "healthy"
	}

	status := "healthy"
	for _, check := range checks {
		if check != "healthy" {
			status = "degraded"
			break
		}
	}

	response := models.HealthStatus{
		Status:    status,
		Service:   h.serviceName,
		Version:   getVersion(),
		Uptime:    formatDuration(time.Since(h.startTime)),
		Checks:    checks,
		Timestamp: time.Now(),
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// getVersion returns the service version
func getVersion() string {
	return "1.0.0"
}

// formatDuration formats a duration to a human-readable string
func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	} else if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
