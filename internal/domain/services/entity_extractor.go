package services

import (
	"regexp"
	"strings"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

// EntityExtractor pulls actionable intelligence out of raw scam text:
// payment handles, phone numbers, links and suspicious keywords.
type EntityExtractor struct {
	handlePattern *regexp.Regexp
	phonePattern  *regexp.Regexp
	linkPattern   *regexp.Regexp
	keywords      []string
	logger        *logger.Logger
}

// Keywords worth surfacing even without a matching entity.
var suspiciousKeywords = []string{"otp", "cvv", "expire", "block", "police", "kyc", "fraud", "help"}

// NewEntityExtractor compiles the extraction patterns once.
func NewEntityExtractor(log *logger.Logger) *EntityExtractor {
	return &EntityExtractor{
		// UPI-style handles share the shape of email addresses; both are
		// captured here and harvested as payment handles.
		handlePattern: regexp.MustCompile(`[\w.-]+@[\w.-]+`),
		// Indian mobile numbers, with optional country prefix and separator.
		phonePattern: regexp.MustCompile(`(?:\+91|91)?[\-\s]?[6789]\d{9}`),
		// Explicit schemes, www-prefixed hosts, and bare domains on common or
		// abuse-heavy TLDs.
		linkPattern: regexp.MustCompile(`(?i)(?:https?://|www\.)\S+|(?:[a-z0-9-]+\.)+(?:com|net|org|in|xyz|top|live|app|tk|ml)\S*`),
		keywords:    suspiciousKeywords,
		logger:      log.WithComponent("entity-extractor"),
	}
}

// Extract scans text and returns every entity found. All slices are non-nil
// so the result serializes as empty arrays, never null.
func (e *EntityExtractor) Extract(text string) models.ExtractedIntel {
	intel := models.ExtractedIntel{
		PaymentHandles:     []string{},
		PhoneNumbers:       []string{},
		Links:              []string{},
		SuspiciousKeywords: []string{},
	}
	if text == "" {
		return intel
	}

	intel.PaymentHandles = append(intel.PaymentHandles, e.handlePattern.FindAllString(text, -1)...)
	intel.PhoneNumbers = append(intel.PhoneNumbers, e.phonePattern.FindAllString(text, -1)...)

	for _, link := range e.linkPattern.FindAllString(text, -1) {
		if trimmed := strings.Trim(link, ".,!?;:"); trimmed != "" {
			intel.Links = append(intel.Links, trimmed)
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range e.keywords {
		if strings.Contains(lower, kw) {
			intel.SuspiciousKeywords = append(intel.SuspiciousKeywords, kw)
		}
	}

	e.logger.Debug().
		Int("handles", len(intel.PaymentHandles)).
		Int("phones", len(intel.PhoneNumbers)).
		Int("links", len(intel.Links)).
		Int("keywords", len(intel.SuspiciousKeywords)).
		Msg("entities extracted")

	return intel
}
