package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/seoscope/audit-console/pkg/interfaces"
	"github.com/seoscope/audit-console/pkg/models"
	"github.com/seoscope/audit-console/pkg/submission"
)

// SubmissionHandler exposes the audit form submission endpoint. The
// controller owns the outcome state; this handler only translates HTTP.
type SubmissionHandler struct {
	controller *submission.Controller
	logger     interfaces.Logger
	metrics    interfaces.MetricsCollector
}

func NewSubmissionHandler(controller *submission.Controller, logger interfaces.Logger, metrics interfaces.MetricsCollector) *SubmissionHandler {
	return &SubmissionHandler{
		controller: controller,
		logger:     logger,
		metrics:    metrics,
	}
}

// SubmitResponse is the browser-facing reply to a successful submission.
type SubmitResponse struct {
	Status  string               `json:"status"`
	Summary models.ResultSummary `json:"summary"`
}

// Submit handles POST /api/v1/submissions.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form submission.FormValues
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.logger.Error("Failed to parse submission", "error", err)
		h.sendError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	start := time.Now()
	outcome, err := h.controller.Submit(ctx, form)
	duration := time.Since(start).Seconds()

	if err != nil {
		var validationErr *submission.ValidationFailedError
		switch {
		case errors.As(err, &validationErr):
			for _, field := range validationErr.Fields {
				h.metrics.RecordValidationFailure(field.Field)
			}
			h.metrics.RecordSubmission("rejected", duration)
			h.sendError(w, outcome.Message, http.StatusBadRequest)
		case errors.Is(err, submission.ErrSubmissionInFlight):
			h.sendError(w, "An audit is already in progress", http.StatusConflict)
		case errors.Is(err, context.DeadlineExceeded):
			h.metrics.RecordSubmission("timeout", duration)
			h.sendError(w, outcome.Message, http.StatusGatewayTimeout)
		default:
			h.metrics.RecordSubmission("failure", duration)
			h.sendError(w, outcome.Message, http.StatusBadGateway)
		}
		return
	}

	if outcome.Phase != submission.PhaseSuccess || outcome.Result == nil {
		// Defensive: a non-error completion must carry a result.
		h.metrics.RecordSubmission("failure", duration)
		h.sendError(w, submission.MsgAnalysisFailed, http.StatusBadGateway)
		return
	}

	h.metrics.RecordSubmission("success", duration)

	response := SubmitResponse{
		Status:  outcome.Phase.String(),
		Summary: outcome.Result.Summary(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// FullResults handles GET /results/full. The affordance exists in the form
// but has no defined behavior yet; it answers 501 until the full report view
// lands.
func (h *SubmissionHandler) FullResults(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Full results view requested", "remote_addr", r.RemoteAddr)
	h.sendError(w, "Full results view is not implemented", http.StatusNotImplemented)
}

// sendError sends an error response
func (h *SubmissionHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	response := models.ErrorResponse{
		Error:      message,
		StatusCode: statusCode,
		Timestamp:  time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
