package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

func TestVoiceAnalyzer_Deterministic(t *testing.T) {
	v := NewVoiceAnalyzer(logger.NewNop())
	payload := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("sample audio frame ", 200)))

	first := v.Analyze(payload, "Hindi")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, v.Analyze(payload, "Hindi"))
	}
}

func TestVoiceAnalyzer_LowEntropyClassifiedAsAI(t *testing.T) {
	v := NewVoiceAnalyzer(logger.NewNop())

	// All-zero payload has a single distinct byte value.
	payload := base64.StdEncoding.EncodeToString(make([]byte, 1200))
	got := v.Analyze(payload, "Tamil")

	assert.Equal(t, models.VoiceAIGenerated, got.Classification)
	assert.GreaterOrEqual(t, got.Confidence, 0.88)
	assert.LessOrEqual(t, got.Confidence, 0.99)
	assert.Contains(t, got.Explanation, "Tamil")
	assert.Equal(t, "Tamil", got.Language)
}

func TestVoiceAnalyzer_UndecodablePayloadFallsBack(t *testing.T) {
	v := NewVoiceAnalyzer(logger.NewNop())

	got := v.Analyze("!!!!not-base64-at-all!!", "English")

	assert.Equal(t, models.VoiceHuman, got.Classification)
	assert.Equal(t, 0.75, got.Confidence)
	assert.Equal(t, "Standard human vocal profile identified by general synthesis check.", got.Explanation)
}

func TestVoiceAnalyzer_EmptyPayloadFallsBack(t *testing.T) {
	v := NewVoiceAnalyzer(logger.NewNop())

	got := v.Analyze("", "English")
	assert.Equal(t, models.VoiceHuman, got.Classification)
	assert.Equal(t, 0.75, got.Confidence)
}

func TestVoiceAnalyzer_SupportsLanguage(t *testing.T) {
	v := NewVoiceAnalyzer(logger.NewNop())

	for _, lang := range SupportedVoiceLanguages {
		assert.True(t, v.SupportsLanguage(lang), lang)
	}
	assert.False(t, v.SupportsLanguage("French"))
	assert.False(t, v.SupportsLanguage("english"))
}
