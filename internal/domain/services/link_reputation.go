package services

import (
	"regexp"
	"strings"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

// Heuristic tables for link scoring. All matching is case-insensitive via a
// pre-lowered URL.
var (
	deceptiveLinkTerms = []string{"-login", "-bank", "-update", "-kyc", "verify", "secure-", "account", "bonus"}
	riskyTLDs          = []string{".xyz", ".top", ".club", ".info", ".ru", ".cn", ".live", ".app", ".tk", ".ml"}
	urlShorteners      = []string{"bit.ly", "tinyurl.com", "t.co", "cutt.ly", "is.gd"}
)

const linkScoreCeiling = 0.99

// LinkReputation scores URLs with additive structural heuristics. Fully
// deterministic: the same URL always yields the same verdict.
type LinkReputation struct {
	ipPattern *regexp.Regexp
	logger    *logger.Logger
}

// NewLinkReputation creates the link scorer.
func NewLinkReputation(log *logger.Logger) *LinkReputation {
	return &LinkReputation{
		ipPattern: regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`),
		logger:    log.WithComponent("link-reputation"),
	}
}

// Check scores a single URL and returns the verdict with every triggered
// heuristic listed as a reason.
func (l *LinkReputation) Check(url string) models.LinkVerdict {
	lower := strings.ToLower(strings.TrimSpace(url))
	score := 0.0
	reasons := []string{}

	switch {
	case strings.HasPrefix(lower, "https://"):
		// Encrypted transport carries no penalty.
	case strings.HasPrefix(lower, "http://"):
		score += 0.3
		reasons = append(reasons, "No SSL Certificate (HTTP)")
	default:
		score += 0.2
		reasons = append(reasons, "Missing URL scheme")
	}

	if containsAny(lower, deceptiveLinkTerms) {
		score += 0.4
		reasons = append(reasons, "Deceptive keywords in domain")
	}
	if containsAny(lower, riskyTLDs) {
		score += 0.3
		reasons = append(reasons, "High-risk TLD")
	}
	if containsAny(lower, urlShorteners) {
		score += 0.4
		reasons = append(reasons, "URL shortener masking destination")
	}
	if l.ipPattern.MatchString(lower) {
		score += 0.5
		reasons = append(reasons, "Raw IP address instead of domain")
	}

	if score > linkScoreCeiling {
		score = linkScoreCeiling
	}

	band := models.RiskBandSafe
	if score > 0.7 {
		band = models.RiskBandCritical
	} else if score > 0.4 {
		band = models.RiskBandSuspicious
	}

	l.logger.Debug().Str("url", url).Float64("score", score).Str("risk", string(band)).Msg("link scored")

	return models.LinkVerdict{
		URL:     url,
		Score:   round2(score),
		Band:    band,
		Reasons: reasons,
	}
}
