package models

import "time"

// ThreatLevel is the 4-tier severity classification for a fraud document.
type ThreatLevel string

const (
	ThreatLevelLow      ThreatLevel = "LOW"
	ThreatLevelMedium   ThreatLevel = "MEDIUM"
	ThreatLevelHigh     ThreatLevel = "HIGH"
	ThreatLevelCritical ThreatLevel = "CRITICAL"
)

// FraudType identifies a known email fraud family.
type FraudType string

const (
	FraudTypePhishing FraudType = "phishing"
	FraudTypeBEC      FraudType = "business_email_compromise"
	FraudTypeLottery  FraudType = "lottery_scam"
	FraudTypeRomance  FraudType = "romance_scam"
	FraudTypeJob      FraudType = "job_scam"
	FraudTypeTax      FraudType = "tax_scam"
	FraudTypeLink     FraudType = "link_fraud"
	FraudTypeUPI      FraudType = "upi_fraud"
	FraudTypeSmishing FraudType = "smishing"
	FraudTypeUnknown  FraudType = "UNKNOWN"
)

// EmailEntities holds identifiers extracted from an email body.
type EmailEntities struct {
	Emails         []string `json:"emails"`
	PhoneNumbers   []string `json:"phone_numbers"`
	URLs           []string `json:"urls"`
	BankDetails    []string `json:"bank_details"`
	PaymentHandles []string `json:"upi_ids"`
}

// ForensicMetadata carries illustrative display figures. They are synthesized
// per analysis, not derived from any verified signal, and must never be
// treated as evidence.
type ForensicMetadata struct {
	EntropyAnalysis       float64 `json:"entropy_analysis"`
	HeaderIntegrity       string  `json:"header_integrity"`
	SenderReputationScore float64 `json:"sender_reputation_score"`
	TrackingID            string  `json:"tracking_id"`
}

// FraudClassification is the complete analysis of an email-style document.
type FraudClassification struct {
	FraudType       FraudType        `json:"fraud_type"`
	Description     string           `json:"description"`
	RiskScore       float64          `json:"risk_score"`
	ThreatLevel     ThreatLevel      `json:"threat_level"`
	RedFlags        []string         `json:"red_flags"`
	Entities        EmailEntities    `json:"extracted_entities"`
	Forensic        ForensicMetadata `json:"forensic_metadata"`
	Recommendations []string         `json:"recommendations"`
	LegalActions    []string         `json:"legal_actions"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}
