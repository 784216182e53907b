package services

import (
	"regexp"
	"strconv"
	"strings"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

// PhoneReputation scores phone numbers with prefix and pattern heuristics.
// Community report counts are simulated deterministically from the number
// itself so repeated lookups agree.
type PhoneReputation struct {
	nonDigits *regexp.Regexp
	logger    *logger.Logger
}

// NewPhoneReputation creates the phone scorer.
func NewPhoneReputation(log *logger.Logger) *PhoneReputation {
	return &PhoneReputation{
		nonDigits: regexp.MustCompile(`\D`),
		logger:    log.WithComponent("phone-reputation"),
	}
}

// Check scores a single phone number.
func (p *PhoneReputation) Check(number string) models.PhoneVerdict {
	digits := p.nonDigits.ReplaceAllString(number, "")

	verdict := models.PhoneVerdict{
		Number:   number,
		Score:    0.1,
		Carrier:  "Unknown Network",
		Location: "Unknown",
		Reasons:  []string{},
	}

	switch {
	case !strings.HasPrefix(digits, "91") && len(digits) > 10:
		if strings.HasPrefix(digits, "92") {
			verdict.Score = 0.99
			verdict.Location = "Pakistan (High Risk Source)"
			verdict.Carrier = "International VoIP"
			verdict.Reasons = append(verdict.Reasons, "High-risk international origin")
		} else {
			verdict.Score = 0.6
			verdict.Location = "International"
			verdict.Carrier = "Virtual Number"
			verdict.Reasons = append(verdict.Reasons, "Foreign virtual number")
		}
	case len(digits) >= 10:
		last10 := digits[len(digits)-10:]
		verdict.Location = "India"
		if strings.HasPrefix(last10, "140") {
			// TRAI reserves the 140 series for telemarketing.
			verdict.Score = 0.7
			verdict.Carrier = "Business Telemarketing"
			verdict.Reasons = append(verdict.Reasons, "Registered telemarketing series")
		} else if last10[0] >= '6' && last10[0] <= '9' {
			verdict.Carrier = "Jio / Airtel / Vi"
			if numHash, err := strconv.ParseInt(last10, 10, 64); err == nil {
				if bucket := int(numHash % 100); bucket > 80 {
					verdict.Score = 0.75
					verdict.Reports = bucket * 12
					verdict.Location = "Cybercrime Hotspot (Simulated)"
					verdict.Reasons = append(verdict.Reasons, "High volume of community reports")
				}
			}
		}
	}

	verdict.Band = models.RiskBandSafe
	if verdict.Score > 0.8 {
		verdict.Band = models.RiskBandScammer
	} else if verdict.Score > 0.5 {
		verdict.Band = models.RiskBandSpam
	}
	verdict.Score = round2(verdict.Score)

	p.logger.Debug().Str("number", number).Float64("score", verdict.Score).Str("risk", string(verdict.Band)).Msg("phone scored")

	return verdict
}
