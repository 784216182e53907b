package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/internal/domain/services"
	"cyberguard-lab/pkg/logger"
)

// modelName is advertised in every analysis response.
const modelName = "CyberGuard-NeuralCore-v3"

// HoneypotHandler handles the decoy conversation endpoint
type HoneypotHandler struct {
	classifier *services.IntentClassifier
	extractor  *services.EntityExtractor
	replies    *services.ReplyGenerator
	logger     *logger.Logger
}

// NewHoneypotHandler creates a new HoneypotHandler
func NewHoneypotHandler(c *services.IntentClassifier, e *services.EntityExtractor, r *services.ReplyGenerator, log *logger.Logger) *HoneypotHandler {
	return &HoneypotHandler{
		classifier: c,
		extractor:  e,
		replies:    r,
		logger:     log.WithComponent("honeypot"),
	}
}

// honeypotRequest is the canonical form of a decoy conversation turn.
// Upstream orchestrators disagree on field naming, so the raw body is
// reconciled by parseHoneypotRequest rather than decoded strictly.
type honeypotRequest struct {
	Text    string
	Persona models.Persona
	History []models.ConversationTurn
}

type mlAnalysis struct {
	Intent     models.IntentCategory `json:"intent"`
	Confidence float64               `json:"confidence"`
	Model      string                `json:"model"`
}

type honeypotResponse struct {
	Status   string                `json:"status"`
	Reply    string                `json:"reply"`
	Analysis mlAnalysis            `json:"ml_analysis"`
	Intel    models.ExtractedIntel `json:"extracted_intelligence"`
}

// Handle handles POST /api/honeypot. Malformed bodies are treated as empty
// rather than rejected: a decoy that errors out burns the session.
func (h *HoneypotHandler) Handle(w http.ResponseWriter, r *http.Request) {
	req := parseHoneypotRequest(r)

	prediction := h.classifier.Classify(req.Text)
	intel := h.extractor.Extract(req.Text)
	reply := h.replies.Generate(req.Text, prediction.Category, req.Persona, req.History)

	h.logger.Info().
		Str("intent", string(prediction.Category)).
		Str("persona", string(req.Persona)).
		Int("history", len(req.History)).
		Msg("honeypot turn processed")

	respondJSON(w, http.StatusOK, honeypotResponse{
		Status: "success",
		Reply:  reply,
		Analysis: mlAnalysis{
			Intent:     prediction.Category,
			Confidence: prediction.Confidence,
			Model:      modelName,
		},
		Intel: intel,
	})
}

// parseHoneypotRequest reconciles the request body variants: message as a
// string or an object keyed by "text" or "message", history under snake_case
// or camelCase, persona nested under metadata.
func parseHoneypotRequest(r *http.Request) honeypotRequest {
	req := honeypotRequest{Persona: models.PersonaNaive}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return req
	}

	switch msg := body["message"].(type) {
	case string:
		req.Text = msg
	case map[string]any:
		if text, ok := msg["text"].(string); ok && text != "" {
			req.Text = text
		} else if text, ok := msg["message"].(string); ok && text != "" {
			req.Text = text
		} else {
			req.Text = fmt.Sprint(msg)
		}
	case nil:
	default:
		req.Text = fmt.Sprint(msg)
	}

	if meta, ok := body["metadata"].(map[string]any); ok {
		if persona, ok := meta["persona"].(string); ok && persona != "" {
			req.Persona = models.Persona(persona)
		}
	}

	rawHistory, ok := body["conversation_history"].([]any)
	if !ok || len(rawHistory) == 0 {
		rawHistory, _ = body["conversationHistory"].([]any)
	}
	for _, raw := range rawHistory {
		turn, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		sender, _ := turn["sender"].(string)
		text, _ := turn["text"].(string)
		timestamp, _ := turn["timestamp"].(string)
		req.History = append(req.History, models.ConversationTurn{
			Sender:    sender,
			Text:      text,
			Timestamp: timestamp,
		})
	}

	return req
}
