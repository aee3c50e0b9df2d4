package submission

import (
	"strconv"
	"strings"

	"github.com/seoscope/audit-console/pkg/models"
)

// FormValues carries the raw field values exactly as the form submitted them.
// Everything arrives as text; Normalize turns it into a wire-ready AuditInput.
type FormValues struct {
	URL               string `json:"url"`
	RootDomain        string `json:"root_domain"`
	AccountIdentifier string `json:"account_identifier"`
	Language          string `json:"language"`
	DateRange         string `json:"date_range"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
}

// Normalize converts the raw form values into an AuditInput ready for the
// analysis service. Field values are trimmed, the date range is coerced to an
// integer and the language is pinned to a supported code.
func (f FormValues) Normalize() models.AuditInput {
	return models.AuditInput{
		URL:               strings.TrimSpace(f.URL),
		RootDomain:        strings.TrimSpace(f.RootDomain),
		AccountIdentifier: strings.TrimSpace(f.AccountIdentifier),
		Language:          NormalizeLanguage(f.Language),
		DateRange:         ParseDateRange(f.DateRange),
		StartDate:         strings.TrimSpace(f.StartDate),
		EndDate:           strings.TrimSpace(f.EndDate),
	}
}

// ParseDateRange coerces the free-text date range to a day count. Non-numeric
// input and values below one fall back to the default window. There is no
// upper bound here; the form's max attribute is advisory only.
func ParseDateRange(raw string) int {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || days < 1 {
		return models.DefaultDateRange
	}
	return days
}

// NormalizeLanguage maps the submitted language to a supported code,
// defaulting to English for anything unrecognized.
func NormalizeLanguage(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.LanguageSpanish:
		return models.LanguageSpanish
	case models.LanguageFrench:
		return models.LanguageFrench
	default:
		return models.LanguageEnglish
	}
}

// Validate checks the required fields of a normalized input. A non-empty
// result means the submission must be rejected before any network call.
func Validate(input models.AuditInput) []models.ValidationError {
	var errs []models.ValidationError

	if input.URL == "" {
		errs = append(errs, models.ValidationError{Field: "url", Message: "URL is required"})
	}
	if input.RootDomain == "" {
		errs = append(errs, models.ValidationError{Field: "root_domain", Message: "Root domain is required"})
	}
	if input.AccountIdentifier == "" {
		errs = append(errs, models.ValidationError{Field: "account_identifier", Message: "Account identifier is required"})
	}

	return errs
}
