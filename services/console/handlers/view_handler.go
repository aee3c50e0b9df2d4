package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/seoscope/audit-console/pkg/interfaces"
	"github.com/seoscope/audit-console/pkg/models"
	"github.com/seoscope/audit-console/pkg/submission"
)

// ViewHandler renders the submission form and the condensed result summary.
// The view is stateless: everything it shows comes from the controller's
// current outcome snapshot.
type ViewHandler struct {
	controller *submission.Controller
	logger     interfaces.Logger
	templates  *template.Template
}

func NewViewHandler(controller *submission.Controller, logger interfaces.Logger, templateDir string) (*ViewHandler, error) {
	templates, err := template.ParseGlob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &ViewHandler{
		controller: controller,
		logger:     logger,
		templates:  templates,
	}, nil
}

// viewData feeds the index template.
type viewData struct {
	Phase            string
	Summary          *models.ResultSummary
	Message          string
	Languages        []string
	DefaultDateRange int
}

// HomePage serves the audit form with the current submission state.
func (h *ViewHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Serving console page", "remote_addr", r.RemoteAddr)

	outcome := h.controller.Outcome()

	data := viewData{
		Phase:            outcome.Phase.String(),
		Message:          outcome.Message,
		Languages:        []string{models.LanguageEnglish, models.LanguageSpanish, models.LanguageFrench},
		DefaultDateRange: models.DefaultDateRange,
	}
	if outcome.Phase == submission.PhaseSuccess && outcome.Result != nil {
		summary := outcome.Result.Summary()
		data.Summary = &summary
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.Error("Failed to render console page", "error", err)
	}
}
