package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

func TestLinkReputation_Check(t *testing.T) {
	l := NewLinkReputation(logger.NewNop())

	tests := []struct {
		name  string
		url   string
		score float64
		band  models.RiskBand
	}{
		{
			name:  "stacked heuristics cap at ceiling",
			url:   "http://secure-login-bank.xyz/verify",
			score: 0.99,
			band:  models.RiskBandCritical,
		},
		{
			name:  "shortener without scheme",
			url:   "bit.ly/abc123",
			score: 0.6,
			band:  models.RiskBandSuspicious,
		},
		{
			name:  "clean https url",
			url:   "https://example.com/docs",
			score: 0.0,
			band:  models.RiskBandSafe,
		},
		{
			name:  "raw ip over http",
			url:   "http://192.168.4.22/login",
			score: 0.8,
			band:  models.RiskBandCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Check(tt.url)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.band, got.Band)
			assert.Equal(t, tt.url, got.URL)
		})
	}
}

func TestLinkReputation_ReasonsListed(t *testing.T) {
	l := NewLinkReputation(logger.NewNop())

	got := l.Check("http://bit.ly/prize")
	assert.Contains(t, got.Reasons, "No SSL Certificate (HTTP)")
	assert.Contains(t, got.Reasons, "URL shortener masking destination")
}

func TestLinkReputation_Deterministic(t *testing.T) {
	l := NewLinkReputation(logger.NewNop())

	first := l.Check("www.free-bonus.top/claim")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, l.Check("www.free-bonus.top/claim"))
	}
}
