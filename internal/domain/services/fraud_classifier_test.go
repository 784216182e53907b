package services

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

func newTestFraudClassifier(t *testing.T) *FraudClassifier {
	t.Helper()
	return NewFraudClassifier(rand.New(rand.NewSource(42)), logger.NewNop())
}

func TestFraudClassifier_PhishingDetected(t *testing.T) {
	f := newTestFraudClassifier(t)

	got := f.Analyze(
		"Please verify account now. Account suspended due to unusual activity.",
		"", "Security Alert",
	)

	assert.Equal(t, models.FraudTypePhishing, got.FraudType)
	assert.Equal(t, 0.9, got.RiskScore)
	assert.Equal(t, models.ThreatLevelCritical, got.ThreatLevel)
	assert.Contains(t, got.Description, "Phishing")
	assert.Contains(t, got.RedFlags, "Missing or invalid sender address")
	assert.Contains(t, got.RedFlags, "Urgency tactics to pressure victim")
	assert.NotEmpty(t, got.Recommendations)
	assert.NotEmpty(t, got.LegalActions)
}

func TestFraudClassifier_UPIFraudDetected(t *testing.T) {
	f := newTestFraudClassifier(t)

	got := f.Analyze(
		"Scan QR to collect request. PIN required to receive the refund.",
		"payments@unknown.biz", "Payment pending",
	)

	assert.Equal(t, models.FraudTypeUPI, got.FraudType)
	assert.Equal(t, models.ThreatLevelCritical, got.ThreatLevel)
}

func TestFraudClassifier_TieResolvesToEarlierFamily(t *testing.T) {
	f := newTestFraudClassifier(t)

	// One keyword each from the lottery and smishing families, which share
	// the same risk weight. The earlier-declared family must win the tie,
	// regardless of keyword order in the text.
	contents := []string{
		"The lottery draw was announced on whatsapp.",
		"They announced on whatsapp that the lottery draw is open.",
	}
	for _, content := range contents {
		got := f.Analyze(content, "friend@example.com", "")

		assert.Equal(t, models.FraudTypeLottery, got.FraudType, content)
		assert.Equal(t, 0.43, got.RiskScore, content)
		assert.Equal(t, models.ThreatLevelMedium, got.ThreatLevel, content)
	}
}

func TestFraudClassifier_BenignEmail(t *testing.T) {
	f := newTestFraudClassifier(t)

	got := f.Analyze("Lunch tomorrow at noon? See you there.", "friend@example.com", "Lunch")

	assert.Equal(t, models.FraudTypeUnknown, got.FraudType)
	assert.Equal(t, 0.0, got.RiskScore)
	assert.Equal(t, models.ThreatLevelLow, got.ThreatLevel)
	assert.Empty(t, got.LegalActions)
	assert.NotEmpty(t, got.Recommendations)
	assert.Equal(t, "VERIFIED", got.Forensic.HeaderIntegrity)
	assert.Equal(t, 0.85, got.Forensic.SenderReputationScore)
}

func TestFraudClassifier_EntitiesExtracted(t *testing.T) {
	f := newTestFraudClassifier(t)

	got := f.Analyze(
		"Wire transfer to account 123456789012 or pay refund@fakepsp today. Visit https://evil.example now or call 9876543210.",
		"ceo@corp.example", "urgent wire transfer",
	)

	assert.Contains(t, got.Entities.BankDetails, "123456789012")
	assert.Contains(t, got.Entities.PaymentHandles, "refund@fakepsp")
	assert.NotEmpty(t, got.Entities.URLs)
	assert.NotEmpty(t, got.Entities.PhoneNumbers)
	assert.Contains(t, got.RedFlags, "Contains 1 suspicious links")
}

func TestFraudClassifier_ForensicMetadata(t *testing.T) {
	f := newTestFraudClassifier(t)

	got := f.Analyze(
		"Your account is suspended. Verify account to avoid limited time penalty.",
		"", "",
	)

	require.Equal(t, "FAILED", got.Forensic.HeaderIntegrity)
	assert.GreaterOrEqual(t, got.Forensic.SenderReputationScore, 0.05)
	assert.LessOrEqual(t, got.Forensic.SenderReputationScore, 0.3)
	assert.GreaterOrEqual(t, got.Forensic.EntropyAnalysis, 3.5)
	assert.LessOrEqual(t, got.Forensic.EntropyAnalysis, 5.2)
	assert.True(t, strings.HasPrefix(got.Forensic.TrackingID, "NEURAL-"))
	assert.Len(t, got.Forensic.TrackingID, len("NEURAL-")+8)
}
