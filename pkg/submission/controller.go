package submission

import (
	"context"
	"sync"

	"github.com/seoscope/audit-console/pkg/interfaces"
	"github.com/seoscope/audit-console/pkg/models"
)

// Phase is the lifecycle state of the current submission.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the tagged submission state. Exactly one phase holds at any
// time: Result is set only in PhaseSuccess, Message only in PhaseFailure.
type Outcome struct {
	Phase   Phase
	Result  *models.AnalysisResult
	Message string
}

// Controller owns the submission lifecycle: it validates the form, issues at
// most one in-flight call to the analysis service and maps the response or
// error into the current Outcome. Safe for concurrent use.
type Controller struct {
	client interfaces.AnalysisClient
	logger interfaces.Logger

	mu      sync.Mutex
	outcome Outcome
}

// NewController creates a controller in the idle state.
func NewController(client interfaces.AnalysisClient, logger interfaces.Logger) *Controller {
	return &Controller{
		client: client,
		logger: logger,
	}
}

// Outcome returns a snapshot of the current submission state.
func (c *Controller) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// Reset returns the controller to the idle state. A loading submission is
// left untouched; its completion will overwrite the state as usual.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.outcome.Phase != PhaseLoading {
		c.outcome = Outcome{}
	}
}

// Submit runs one submission end to end. Required fields are checked first;
// a validation failure never reaches the network. While a previous submission
// is loading, further calls are rejected with ErrSubmissionInFlight and issue
// no network call. Cancelling ctx cancels the in-flight request; the
// resulting error is mapped to a failure outcome like any other transport
// fault.
func (c *Controller) Submit(ctx context.Context, form FormValues) (Outcome, error) {
	input := form.Normalize()

	if fields := Validate(input); len(fields) > 0 {
		outcome := Outcome{Phase: PhaseFailure, Message: MsgMissingFields}
		c.mu.Lock()
		if c.outcome.Phase != PhaseLoading {
			c.outcome = outcome
		}
		c.mu.Unlock()
		c.logger.Warn("Submission rejected by validation", "fields", len(fields))
		return outcome, &ValidationFailedError{Fields: fields}
	}

	c.mu.Lock()
	if c.outcome.Phase == PhaseLoading {
		outcome := c.outcome
		c.mu.Unlock()
		c.logger.Warn("Submission ignored, previous one still in flight", "url", input.URL)
		return outcome, ErrSubmissionInFlight
	}
	// Entering the loading phase clears any prior result or error.
	c.outcome = Outcome{Phase: PhaseLoading}
	c.mu.Unlock()

	c.logger.Info("Submitting audit", "url", input.URL, "language", input.Language, "date_range", input.DateRange)

	result, err := c.client.Analyze(ctx, input)

	var outcome Outcome
	switch {
	case err != nil:
		outcome = Outcome{Phase: PhaseFailure, Message: FailureMessage(err)}
	case result == nil:
		err = ErrMissingData
		outcome = Outcome{Phase: PhaseFailure, Message: MsgAnalysisFailed}
	default:
		outcome = Outcome{Phase: PhaseSuccess, Result: result}
	}

	c.mu.Lock()
	c.outcome = outcome
	c.mu.Unlock()

	if outcome.Phase == PhaseFailure {
		c.logger.Error("Audit submission failed", "url", input.URL, "error", err)
		return outcome, err
	}

	c.logger.Info("Audit submission completed",
		"url", result.URL,
		"word_count", result.WordCount,
		"language", result.Language,
	)
	return outcome, nil
}
