package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

// fraudPattern is one known fraud family with its indicator keywords and
// base severity weight.
type fraudPattern struct {
	fraudType   models.FraudType
	keywords    []string
	riskWeight  float64
	description string
}

// fraudPatterns is evaluated in a fixed order so ties between equally-scored
// families resolve the same way on every run.
var fraudPatterns = []fraudPattern{
	{
		fraudType: models.FraudTypePhishing,
		keywords: []string{"verify account", "suspended", "unusual activity", "confirm identity",
			"click here", "update payment", "security alert", "expire", "limited time"},
		riskWeight:  0.9,
		description: "Phishing Attack - Attempts to steal credentials",
	},
	{
		fraudType: models.FraudTypeBEC,
		keywords: []string{"urgent wire transfer", "ceo", "president", "invoice attached",
			"payment request", "confidential", "wire transfer"},
		riskWeight:  0.95,
		description: "Business Email Compromise (BEC) - Impersonation scam",
	},
	{
		fraudType: models.FraudTypeLottery,
		keywords: []string{"won", "lottery", "prize", "claim", "million", "inheritance",
			"beneficiary", "unclaimed"},
		riskWeight:  0.85,
		description: "Lottery/Prize Scam - Advance fee fraud",
	},
	{
		fraudType: models.FraudTypeRomance,
		keywords: []string{"love", "soulmate", "emergency", "hospital", "stuck", "customs",
			"send money", "western union"},
		riskWeight:  0.8,
		description: "Romance Scam - Emotional manipulation for money",
	},
	{
		fraudType: models.FraudTypeJob,
		keywords: []string{"work from home", "easy money", "no experience", "upfront payment",
			"training fee", "guaranteed income"},
		riskWeight:  0.75,
		description: "Employment Scam - Fake job offers",
	},
	{
		fraudType: models.FraudTypeTax,
		keywords: []string{"irs", "tax refund", "income tax", "gst", "penalty", "legal action",
			"arrest warrant"},
		riskWeight:  0.92,
		description: "Tax Authority Impersonation - Government impersonation",
	},
	{
		fraudType:   models.FraudTypeLink,
		keywords:    []string{"tinyurl", "bit.ly", "shorturl", "click.me", "verify-now", "login-update"},
		riskWeight:  0.88,
		description: "Malicious Link Fraud - Dangerous redirect attempt",
	},
	{
		fraudType:   models.FraudTypeUPI,
		keywords:    []string{"request money", "pay to receive", "scan qr", "collect request", "pin required"},
		riskWeight:  0.94,
		description: "UPI Payment Fraud - Social engineering to steal funds",
	},
	{
		fraudType:   models.FraudTypeSmishing,
		keywords:    []string{"sms", "text message", "whatsapp", "unusual login", "account blocked"},
		riskWeight:  0.85,
		description: "Smishing (SMS Phishing) - Text-based fraud",
	},
}

var (
	urgencyWords   = []string{"urgent", "immediate", "expire", "suspend", "block"}
	sensitiveWords = []string{"password", "pin", "cvv", "otp", "ssn"}
)

var highRiskRecommendations = []string{
	"Do not click any links or download any files from this message.",
	"Do not reply; any response confirms your address is live.",
	"Mark this message as spam so your provider can filter the sender.",
	"Delete the email once it has been reported.",
	"If you clicked anything, change your passwords immediately.",
	"Call the 1930 national helpline if money or credentials were shared.",
	"File a report at https://cybercrime.gov.in when ready.",
}

var lowRiskRecommendations = []string{
	"This message looks okay, but staying cautious is the right instinct.",
	"If unsure, contact the person or company on their official number.",
	"A legitimate bank will never ask for OTPs or PINs.",
	"Submit any other suspicious messages for a check at any time.",
}

var legalActions = []string{
	"The IT Act 2000 (Section 66D) covers cheating by impersonation using computer resources.",
	"Reporting the incident supports enforcement and protects other potential victims.",
	"A complaint can be filed with a local cyber cell or through the online portal.",
}

// FraudClassifier scores email-style documents against the known fraud
// families and assembles a complete analysis report.
type FraudClassifier struct {
	patterns     []fraudPattern
	emailPattern *regexp.Regexp
	phonePattern *regexp.Regexp
	urlPattern   *regexp.Regexp
	vpaPattern   *regexp.Regexp
	bankPattern  *regexp.Regexp
	rng          Rand
	logger       *logger.Logger
}

// NewFraudClassifier creates the classifier. A nil rng selects a time-seeded
// source; forensic display figures are the only randomized output.
func NewFraudClassifier(rng Rand, log *logger.Logger) *FraudClassifier {
	if rng == nil {
		rng = defaultRand()
	}
	return &FraudClassifier{
		patterns:     fraudPatterns,
		emailPattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		phonePattern: regexp.MustCompile(`(?:\+91|91)?[\s-]?[6789]\d{9}`),
		urlPattern:   regexp.MustCompile(`(?:https?://|www\.)\S+`),
		vpaPattern:   regexp.MustCompile(`[\w.-]+@[\w.-]+`),
		bankPattern:  regexp.MustCompile(`\b\d{9,18}\b`),
		rng:          rng,
		logger:       log.WithComponent("fraud-classifier"),
	}
}

// Analyze runs the full pipeline over an email: family detection, threat
// banding, entity extraction, red flags and guidance.
func (f *FraudClassifier) Analyze(content, sender, subject string) models.FraudClassification {
	fullText := strings.ToLower(subject + " " + content + " " + sender)

	result := models.FraudClassification{
		FraudType:       models.FraudTypeUnknown,
		Description:     "UNKNOWN",
		RedFlags:        []string{},
		Recommendations: []string{},
		LegalActions:    []string{},
		AnalyzedAt:      time.Now().UTC(),
	}

	// Two keyword hits are enough to saturate a family's score. Strict
	// greater-than keeps the first pattern on ties.
	maxScore := 0.0
	for _, p := range f.patterns {
		matches := 0
		for _, kw := range p.keywords {
			if strings.Contains(fullText, kw) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		score := clamp(float64(matches)/2, 0, 1) * p.riskWeight
		if score > maxScore {
			maxScore = score
			result.FraudType = p.fraudType
			result.Description = p.description
		}
	}
	result.RiskScore = round2(maxScore)

	switch {
	case maxScore >= 0.8:
		result.ThreatLevel = models.ThreatLevelCritical
	case maxScore >= 0.5:
		result.ThreatLevel = models.ThreatLevelHigh
	case maxScore >= 0.3:
		result.ThreatLevel = models.ThreatLevelMedium
	default:
		result.ThreatLevel = models.ThreatLevelLow
	}

	result.Entities = models.EmailEntities{
		Emails:         nonNil(f.emailPattern.FindAllString(content, -1)),
		PhoneNumbers:   nonNil(f.phonePattern.FindAllString(content, -1)),
		URLs:           nonNil(f.urlPattern.FindAllString(content, -1)),
		BankDetails:    nonNil(f.bankPattern.FindAllString(content, -1)),
		PaymentHandles: nonNil(f.vpaPattern.FindAllString(content, -1)),
	}

	if sender == "" || !strings.Contains(sender, "@") {
		result.RedFlags = append(result.RedFlags, "Missing or invalid sender address")
	}
	if strings.Contains(fullText, "dear customer") || strings.Contains(fullText, "dear user") {
		result.RedFlags = append(result.RedFlags, "Generic greeting - likely mass email")
	}
	if containsAny(fullText, urgencyWords) {
		result.RedFlags = append(result.RedFlags, "Urgency tactics to pressure victim")
	}
	if containsAny(fullText, sensitiveWords) {
		result.RedFlags = append(result.RedFlags, "Requests sensitive information")
	}
	if n := len(result.Entities.URLs); n > 0 {
		result.RedFlags = append(result.RedFlags, fmt.Sprintf("Contains %d suspicious links", n))
	}

	result.Forensic = f.forensicMetadata(result.RiskScore)

	if result.ThreatLevel == models.ThreatLevelCritical || result.ThreatLevel == models.ThreatLevelHigh {
		result.Recommendations = append(result.Recommendations, highRiskRecommendations...)
		result.LegalActions = append(result.LegalActions, legalActions...)
	} else {
		result.Recommendations = append(result.Recommendations, lowRiskRecommendations...)
	}

	f.logger.Info().
		Str("fraud_type", string(result.FraudType)).
		Float64("risk_score", result.RiskScore).
		Str("threat_level", string(result.ThreatLevel)).
		Msg("email analyzed")

	return result
}

// forensicMetadata synthesizes the illustrative figures attached to each
// report. Only the tracking identifier and randomized figures vary between
// runs; integrity and reputation follow the risk score.
func (f *FraudClassifier) forensicMetadata(riskScore float64) models.ForensicMetadata {
	meta := models.ForensicMetadata{
		EntropyAnalysis:       round2(3.5 + f.rng.Float64()*1.7),
		HeaderIntegrity:       "VERIFIED",
		SenderReputationScore: 0.85,
		TrackingID:            "NEURAL-" + strings.ToUpper(uuid.NewString()[:8]),
	}
	if riskScore > 0.4 {
		meta.HeaderIntegrity = "FAILED"
		meta.SenderReputationScore = round2(0.05 + f.rng.Float64()*0.25)
	}
	return meta
}

// nonNil forces an empty slice instead of nil so entity lists serialize as
// JSON arrays.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
