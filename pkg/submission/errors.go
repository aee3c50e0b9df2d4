package submission

import (
	"errors"
	"fmt"

	"github.com/seoscope/audit-console/pkg/models"
)

// User-visible messages. Every failure collapses to a single message string
// rendered in the form's alert region.
const (
	MsgMissingFields  = "URL, root domain and account identifier are required"
	MsgAnalysisFailed = "Analysis failed, please try again"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission is still waiting on the analysis service.
var ErrSubmissionInFlight = errors.New("submission already in progress")

// ErrMissingData is returned when the service reports success without a
// result payload.
var ErrMissingData = errors.New("analysis service returned success without data")

// ValidationFailedError carries the rejected fields of a submission that
// never reached the network.
type ValidationFailedError struct {
	Fields []models.ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// ServerError represents a failure reported by the analysis service itself,
// either a non-2xx status or a success:false envelope. Message holds the
// server-supplied error text when the server provided one.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("analysis service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("analysis service returned status %d", e.StatusCode)
}

// FailureMessage maps a submission error to the message shown to the user.
// Server-supplied messages are surfaced verbatim; network faults and
// malformed responses collapse to the generic fallback.
func FailureMessage(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}
	return MsgAnalysisFailed
}
