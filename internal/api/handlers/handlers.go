package handlers

import (
	"encoding/json"
	"net/http"

	"cyberguard-lab/internal/config"
	"cyberguard-lab/internal/domain/services"
	"cyberguard-lab/internal/infrastructure/cache"
	"cyberguard-lab/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health   *HealthHandler
	Honeypot *HoneypotHandler
	Check    *CheckHandler
	Advisor  *AdvisorHandler
	Voice    *VoiceHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Classifier      *services.IntentClassifier
	Extractor       *services.EntityExtractor
	Replies         *services.ReplyGenerator
	Links           *services.LinkReputation
	Phones          *services.PhoneReputation
	Handles         *services.HandleReputation
	FraudClassifier *services.FraudClassifier
	Advisor         *services.Advisor
	Voice           *services.VoiceAnalyzer
	Cache           *cache.RedisCache
	CacheCfg        config.CacheConfig
	Logger          *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Cache, deps.Logger),
		Honeypot: NewHoneypotHandler(deps.Classifier, deps.Extractor, deps.Replies, deps.Logger),
		Check:    NewCheckHandler(deps.Links, deps.Phones, deps.Handles, deps.Cache, deps.CacheCfg, deps.Logger),
		Advisor:  NewAdvisorHandler(deps.FraudClassifier, deps.Advisor, deps.Logger),
		Voice:    NewVoiceHandler(deps.Voice, deps.Logger),
	}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// errorResponse is the generic error body
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Status: "error", Message: message})
}
