package models

import (
	"encoding/json"
	"net/http"
	"time"
)

// AuditInput holds the user-provided fields for one audit submission.
// JSON keys match the analysis service wire contract exactly.
type AuditInput struct {
	URL               string `json:"url"`
	RootDomain        string `json:"root_domain"`
	AccountIdentifier string `json:"account_identifier"`
	Language          string `json:"language"`
	DateRange         int    `json:"date_range"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
}

// Supported audit languages
const (
	LanguageEnglish = "en"
	LanguageSpanish = "es"
	LanguageFrench  = "fr"
)

// DefaultDateRange is the fallback reporting window in days when the
// user-supplied date range cannot be parsed.
const DefaultDateRange = 30

// AnalysisEnvelope is the response wrapper returned by the analysis service.
// Data is present only when Success is true; Error carries the server-side
// failure message when Success is false.
type AnalysisEnvelope struct {
	Success bool            `json:"success"`
	Data    *AnalysisResult `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// AnalysisResult represents one completed audit. The console renders only the
// three headline fields; the nested analysis blocks are carried opaquely and
// passed through untouched.
type AnalysisResult struct {
	URL       string `json:"url"`
	WordCount int    `json:"word_count"`
	Language  string `json:"language"`

	Keyword          json.RawMessage `json:"keyword_analysis,omitempty"`
	Semantic         json.RawMessage `json:"semantic_analysis,omitempty"`
	Structure        json.RawMessage `json:"structure_analysis,omitempty"`
	Readability      json.RawMessage `json:"readability_analysis,omitempty"`
	Sentiment        json.RawMessage `json:"sentiment_analysis,omitempty"`
	Speed            json.RawMessage `json:"speed_analysis,omitempty"`
	Suggestions      json.RawMessage `json:"suggestions,omitempty"`
	ContentGaps      json.RawMessage `json:"content_gaps,omitempty"`
	AdvancedKeywords json.RawMessage `json:"advanced_keywords,omitempty"`
}

// ResultSummary is the condensed view returned to the browser after a
// successful submission.
type ResultSummary struct {
	URL       string `json:"url"`
	WordCount int    `json:"word_count"`
	Language  string `json:"language"`
}

// Summary extracts the headline fields of a result.
func (r *AnalysisResult) Summary() ResultSummary {
	return ResultSummary{
		URL:       r.URL,
		WordCount: r.WordCount,
		Language:  r.Language,
	}
}

type HTTPResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

type ErrorResponse struct {
	Error      string    `json:"error"`
	StatusCode int       `json:"status_code"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// ValidationError represents a single rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
