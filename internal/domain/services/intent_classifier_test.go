package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

func TestIntentClassifier_Overrides(t *testing.T) {
	c := NewIntentClassifier(nil, logger.NewNop())

	tests := []struct {
		name       string
		text       string
		category   models.IntentCategory
		confidence float64
	}{
		{
			name:       "fir mention",
			text:       "An FIR has been registered against your number",
			category:   models.IntentScamFear,
			confidence: 0.99,
		},
		{
			name:       "arrest threat",
			text:       "You will be arrested tonight",
			category:   models.IntentScamFear,
			confidence: 0.99,
		},
		{
			name:       "lottery win",
			text:       "Congratulations, you are the lottery winner",
			category:   models.IntentScamGreed,
			confidence: 0.98,
		},
		{
			name:       "apk download",
			text:       "Install support.apk to claim",
			category:   models.IntentScamLink,
			confidence: 0.97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.confidence, got.Confidence)
		})
	}
}

func TestIntentClassifier_EmptyText(t *testing.T) {
	c := NewIntentClassifier(nil, logger.NewNop())

	got := c.Classify("")
	assert.Equal(t, models.IntentSafe, got.Category)
	assert.Equal(t, 0.0, got.Confidence)
}

func TestIntentClassifier_UrgencyMessage(t *testing.T) {
	c := NewIntentClassifier(nil, logger.NewNop())

	got := c.Classify("Your KYC will expire today, verify immediately or account blocked")
	assert.Equal(t, models.IntentScamUrgency, got.Category)
	assert.Greater(t, got.Confidence, 0.8)
}

func TestIntentClassifier_ShortMessageDemotedToSafe(t *testing.T) {
	c := NewIntentClassifier(nil, logger.NewNop())

	// One strong keyword is not enough signal on its own.
	got := c.Classify("urgent")
	assert.Equal(t, models.IntentSafe, got.Category)
	assert.LessOrEqual(t, got.Confidence, 0.45)
}

func TestIntentClassifier_BenignTextLowConfidence(t *testing.T) {
	c := NewIntentClassifier(nil, logger.NewNop())

	got := c.Classify("see you at lunch tomorrow, thanks for the birthday wishes")
	assert.Less(t, got.Confidence, 0.5)
}

func TestIntentClassifier_Deterministic(t *testing.T) {
	c := NewIntentClassifier(nil, logger.NewNop())

	const text = "Pay your electricity bill now or connection suspended tonight"
	first := c.Classify(text)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, c.Classify(text))
	}
}
