package services

import (
	"strings"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

// Trusted payment service provider suffixes and username keywords that mark a
// handle as bait.
var (
	trustedPSPHandles  = []string{"oksbi", "okicici", "okhdfcbank", "paytm", "axl"}
	baitHandleKeywords = []string{"winner", "lottery", "prize", "offer", "kyc", "bank", "support"}
)

// HandleReputation scores UPI-style payment handles (VPAs).
type HandleReputation struct {
	logger *logger.Logger
}

// NewHandleReputation creates the payment handle scorer.
func NewHandleReputation(log *logger.Logger) *HandleReputation {
	return &HandleReputation{logger: log.WithComponent("handle-reputation")}
}

// Check scores a single payment handle. Malformed handles short-circuit to an
// INVALID verdict with a zero score; they are unscoreable, not high risk.
func (h *HandleReputation) Check(handle string) models.HandleVerdict {
	parts := strings.Split(strings.TrimSpace(handle), "@")
	if len(parts) != 2 {
		return models.HandleVerdict{
			Handle:  handle,
			Score:   0.0,
			Band:    models.RiskBandInvalid,
			Flag:    "Invalid VPA Format",
			Reasons: []string{"Invalid VPA Format"},
		}
	}
	// The PSP suffix is matched exactly; only the username is folded for the
	// keyword scan.
	local, psp := strings.ToLower(parts[0]), parts[1]

	score := 0.1
	reasons := []string{}

	trusted := false
	for _, known := range trustedPSPHandles {
		if psp == known {
			trusted = true
			break
		}
	}
	if !trusted {
		score += 0.3
		reasons = append(reasons, "Uncommon PSP Handle")
	}
	if containsAny(local, baitHandleKeywords) {
		score += 0.6
		reasons = append(reasons, "Malicious Keyword in Username")
	}

	if score > 0.99 {
		score = 0.99
	}

	band := models.RiskBandSafe
	if score > 0.5 {
		band = models.RiskBandHighRisk
	}
	flag := "Verified Merchant"
	if len(reasons) > 0 {
		flag = reasons[0]
	}

	h.logger.Debug().Str("handle", handle).Float64("score", score).Str("risk", string(band)).Msg("handle scored")

	return models.HandleVerdict{
		Handle:  handle,
		Score:   round2(score),
		Band:    band,
		Flag:    flag,
		Reasons: reasons,
	}
}
