package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"cyberguard-lab/internal/domain/services"
	"cyberguard-lab/pkg/logger"
)

// AdvisorHandler exposes the advisory agent: email analysis, chat guidance
// and the static reference endpoints.
type AdvisorHandler struct {
	classifier *services.FraudClassifier
	advisor    *services.Advisor
	logger     *logger.Logger
}

// NewAdvisorHandler creates a new AdvisorHandler
func NewAdvisorHandler(c *services.FraudClassifier, a *services.Advisor, log *logger.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		classifier: c,
		advisor:    a,
		logger:     log.WithComponent("advisor"),
	}
}

type analyzeEmailRequest struct {
	EmailContent string `json:"email_content"`
	Sender       string `json:"sender"`
	Subject      string `json:"subject"`
}

// AnalyzeEmail handles POST /api/police/analyze-email
func (h *AdvisorHandler) AnalyzeEmail(w http.ResponseWriter, r *http.Request) {
	var req analyzeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.EmailContent == "" {
		respondError(w, http.StatusBadRequest, "email_content is required")
		return
	}

	analysis := h.classifier.Analyze(req.EmailContent, req.Sender, req.Subject)

	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"officer":  services.AdvisorName,
		"badge":    services.AdvisorBadge,
		"analysis": analysis,
	})
}

type chatRequest struct {
	Query   string         `json:"query"`
	Context map[string]any `json:"context"`
}

// Chat handles POST /api/police/chat
func (h *AdvisorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	reply := h.advisor.Respond(req.Query, req.Context)

	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"officer":   services.AdvisorName,
		"badge":     services.AdvisorBadge,
		"response":  reply,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Statistics handles GET /api/police/statistics
func (h *AdvisorHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"statistics": h.advisor.Statistics(),
	})
}

// PreventionTips handles GET /api/police/prevention-tips
func (h *AdvisorHandler) PreventionTips(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"tips":   h.advisor.PreventionTips(),
	})
}

// EmergencyContacts handles GET /api/police/emergency-contacts
func (h *AdvisorHandler) EmergencyContacts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"contacts": h.advisor.EmergencyContacts(),
	})
}
