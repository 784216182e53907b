package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

func TestHandleReputation_Check(t *testing.T) {
	h := NewHandleReputation(logger.NewNop())

	tests := []struct {
		name   string
		handle string
		score  float64
		band   models.RiskBand
		flag   string
	}{
		{
			name:   "bait keyword on trusted psp",
			handle: "lotterywinner@oksbi",
			score:  0.7,
			band:   models.RiskBandHighRisk,
			flag:   "Malicious Keyword in Username",
		},
		{
			name:   "clean handle on trusted psp",
			handle: "friend@paytm",
			score:  0.1,
			band:   models.RiskBandSafe,
			flag:   "Verified Merchant",
		},
		{
			name:   "unknown psp alone stays safe",
			handle: "someone@randompay",
			score:  0.4,
			band:   models.RiskBandSafe,
			flag:   "Uncommon PSP Handle",
		},
		{
			name:   "unknown psp plus bait keyword",
			handle: "kycsupport@randompay",
			score:  0.99,
			band:   models.RiskBandHighRisk,
			flag:   "Uncommon PSP Handle",
		},
		{
			name:   "psp suffix match is case sensitive",
			handle: "shop@OKSBI",
			score:  0.4,
			band:   models.RiskBandSafe,
			flag:   "Uncommon PSP Handle",
		},
		{
			name:   "bait keyword detected regardless of case",
			handle: "WINNER@paytm",
			score:  0.7,
			band:   models.RiskBandHighRisk,
			flag:   "Malicious Keyword in Username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Check(tt.handle)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.band, got.Band)
			assert.Equal(t, tt.flag, got.Flag)
		})
	}
}

func TestHandleReputation_InvalidFormat(t *testing.T) {
	h := NewHandleReputation(logger.NewNop())

	// Malformed input carries no risk signal, so the score stays zero.
	for _, handle := range []string{"notahandle", "a@b@c", ""} {
		got := h.Check(handle)
		assert.Equal(t, models.RiskBandInvalid, got.Band, handle)
		assert.Equal(t, "Invalid VPA Format", got.Flag, handle)
		assert.Equal(t, 0.0, got.Score, handle)
	}
}
