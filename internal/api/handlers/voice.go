package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cyberguard-lab/internal/domain/services"
	"cyberguard-lab/pkg/logger"
)

// VoiceHandler handles voice origin detection
type VoiceHandler struct {
	analyzer *services.VoiceAnalyzer
	logger   *logger.Logger
}

// NewVoiceHandler creates a new VoiceHandler
func NewVoiceHandler(a *services.VoiceAnalyzer, log *logger.Logger) *VoiceHandler {
	return &VoiceHandler{
		analyzer: a,
		logger:   log.WithComponent("voice"),
	}
}

// voiceRequest tolerates both snake_case and camelCase field variants sent by
// different client versions.
type voiceRequest struct {
	Language     string `json:"language"`
	AudioFormat  string `json:"audio_format"`
	AudioFormat2 string `json:"audioFormat"`
	AudioBase64  string `json:"audio_base64"`
	AudioBase642 string `json:"audio_base_64"`
	AudioBase643 string `json:"audioBase64"`
}

func (r voiceRequest) format() string {
	if r.AudioFormat != "" {
		return r.AudioFormat
	}
	return r.AudioFormat2
}

func (r voiceRequest) payload() string {
	if r.AudioBase64 != "" {
		return r.AudioBase64
	}
	if r.AudioBase642 != "" {
		return r.AudioBase642
	}
	return r.AudioBase643
}

// Handle handles POST /api/voice-detection. Validation failures come back as
// 200 with an error status, matching what the upstream clients expect.
func (h *VoiceHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req voiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = voiceRequest{}
	}
	if req.Language == "" {
		req.Language = "English"
	}

	if !h.analyzer.SupportsLanguage(req.Language) {
		respondJSON(w, http.StatusOK, errorResponse{
			Status: "error",
			Message: fmt.Sprintf("Unsupported language: %s. Supported: %s",
				req.Language, strings.Join(services.SupportedVoiceLanguages, ", ")),
		})
		return
	}
	if !strings.EqualFold(req.format(), "mp3") {
		respondJSON(w, http.StatusOK, errorResponse{Status: "error", Message: "Only MP3 format is supported"})
		return
	}
	payload := req.payload()
	if payload == "" {
		respondJSON(w, http.StatusOK, errorResponse{Status: "error", Message: "Missing audio_base64 data"})
		return
	}

	verdict := h.analyzer.Analyze(payload, req.Language)

	h.logger.Info().
		Str("language", req.Language).
		Str("classification", string(verdict.Classification)).
		Msg("voice sample classified")

	respondJSON(w, http.StatusOK, map[string]any{
		"status":          "success",
		"language":        verdict.Language,
		"classification":  verdict.Classification,
		"confidenceScore": verdict.Confidence,
		"explanation":     verdict.Explanation,
	})
}
