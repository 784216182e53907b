package models

// RiskBand is the tiered risk label attached to a reputation verdict. The
// number of tiers differs per heuristic: links use SAFE/SUSPICIOUS/CRITICAL,
// phones use SAFE/SPAM/SCAMMER, payment handles use SAFE/HIGH RISK plus an
// INVALID sentinel for malformed input.
type RiskBand string

const (
	RiskBandSafe       RiskBand = "SAFE"
	RiskBandSuspicious RiskBand = "SUSPICIOUS"
	RiskBandCritical   RiskBand = "CRITICAL"
	RiskBandSpam       RiskBand = "SPAM / SUSPICIOUS"
	RiskBandScammer    RiskBand = "SCAMMER (High Risk)"
	RiskBandHighRisk   RiskBand = "HIGH RISK"
	RiskBandInvalid    RiskBand = "INVALID"
)

// LinkVerdict is the reputation verdict for a single URL.
type LinkVerdict struct {
	URL     string   `json:"url"`
	Score   float64  `json:"score"`
	Band    RiskBand `json:"risk"`
	Reasons []string `json:"details"`
}

// PhoneVerdict is the reputation verdict for a single phone number. Reports
// is a deterministic simulation derived from the number, not a live signal.
type PhoneVerdict struct {
	Number   string   `json:"number"`
	Score    float64  `json:"score"`
	Band     RiskBand `json:"risk"`
	Carrier  string   `json:"carrier"`
	Location string   `json:"location"`
	Reports  int      `json:"reports"`
	Reasons  []string `json:"details,omitempty"`
}

// HandleVerdict is the reputation verdict for a payment handle (VPA). Flag
// carries the first triggered reason, or a verified message when clean.
type HandleVerdict struct {
	Handle  string   `json:"handle"`
	Score   float64  `json:"score"`
	Band    RiskBand `json:"risk"`
	Flag    string   `json:"flag"`
	Reasons []string `json:"details,omitempty"`
}
