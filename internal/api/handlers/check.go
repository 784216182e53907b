package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/redis/go-redis/v9"

	"cyberguard-lab/internal/config"
	"cyberguard-lab/internal/domain/services"
	"cyberguard-lab/internal/infrastructure/cache"
	"cyberguard-lab/pkg/logger"
)

// CheckHandler handles targeted reputation lookups
type CheckHandler struct {
	links   *services.LinkReputation
	phones  *services.PhoneReputation
	handles *services.HandleReputation
	cache   *cache.RedisCache
	ttl     config.CacheConfig
	logger  *logger.Logger
}

// NewCheckHandler creates a new CheckHandler
func NewCheckHandler(l *services.LinkReputation, p *services.PhoneReputation, h *services.HandleReputation,
	c *cache.RedisCache, ttl config.CacheConfig, log *logger.Logger) *CheckHandler {
	return &CheckHandler{
		links:   l,
		phones:  p,
		handles: h,
		cache:   c,
		ttl:     ttl,
		logger:  log.WithComponent("check"),
	}
}

// checkRequest selects the heuristic and carries the value to score.
type checkRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Handle handles POST /api/check
func (h *CheckHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var prefix string
	switch req.Type {
	case "link":
		prefix = cache.KeyVerdictLinkPrefix
	case "phone":
		prefix = cache.KeyVerdictPhonePrefix
	case "upi":
		prefix = cache.KeyVerdictHandlePrefix
	default:
		respondError(w, http.StatusBadRequest, "unknown check type: "+req.Type)
		return
	}

	// Verdicts are deterministic, so a cache hit is exact.
	if h.cache != nil {
		var cached json.RawMessage
		if err := h.cache.GetJSON(r.Context(), prefix+req.Value, &cached); err == nil {
			respondJSON(w, http.StatusOK, cached)
			return
		} else if err != redis.Nil {
			h.logger.Warn().Err(err).Msg("verdict cache lookup failed")
		}
	}

	var verdict any
	switch req.Type {
	case "link":
		verdict = h.links.Check(req.Value)
	case "phone":
		verdict = h.phones.Check(req.Value)
	case "upi":
		verdict = h.handles.Check(req.Value)
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(r.Context(), prefix+req.Value, verdict, h.ttl.VerdictTTL); err != nil {
			h.logger.Warn().Err(err).Msg("verdict cache store failed")
		}
	}

	respondJSON(w, http.StatusOK, verdict)
}
