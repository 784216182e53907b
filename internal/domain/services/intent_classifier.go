package services

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

// Lexicon maps an intent category to its weighted patterns. Patterns match by
// substring containment, not word boundaries: "winning" matches a "win"
// pattern. That trades precision for recall on obfuscated scam text and is
// part of the classifier contract.
type Lexicon map[models.IntentCategory]map[string]float64

// DefaultLexicon returns the built-in intent lexicon. The returned table is
// treated as immutable after the classifier is constructed.
func DefaultLexicon() Lexicon {
	return Lexicon{
		models.IntentScamUrgency: {
			"blocked": 0.8, "immediately": 0.7, "urgent": 0.8, "suspend": 0.7,
			"expire": 0.6, "kyc": 0.9, "verify": 0.5, "now": 0.4, "electricity": 0.6,
			"bill": 0.5, "tonight": 0.4, "24 hours": 0.7,
		},
		models.IntentScamFear: {
			"police": 0.9, "jail": 0.9, "arrest": 0.9, "fir": 1.0, "warrant": 0.9,
			"raid": 0.8, "tax": 0.6, "customs": 0.7, "leak": 0.8,
			"kidnapped": 1.0, "court": 0.7, "cbi": 0.9, "cyber": 0.5,
		},
		models.IntentScamGreed: {
			"lottery": 1.0, "winner": 0.9, "prize": 0.9, "crores": 0.8, "iphone": 0.7,
			"free": 0.6, "spin": 0.5, "earn": 0.7, "daily": 0.4, "cash": 0.6,
			"investment": 0.5, "crypto": 0.6, "double": 0.6, "lucky": 0.7,
		},
		models.IntentScamLink: {
			"http": 0.8, "bit.ly": 0.9, "tinyurl": 0.9, ".apk": 1.0, "download": 0.7,
			"link": 0.6, "click": 0.5, ".xyz": 0.8, ".top": 0.8, "update": 0.4,
		},
		models.IntentSafe: {
			"hello": -0.5, "hi": -0.5, "how": -0.3, "meeting": -0.7, "lunch": -0.8,
			"birthday": -0.9, "tomorrow": -0.4, "thanks": -0.6, "okay": -0.4,
		},
	}
}

// categoryOrder fixes the evaluation order of categories so that arg-max
// tie-breaking does not depend on map iteration.
var categoryOrder = []models.IntentCategory{
	models.IntentScamUrgency,
	models.IntentScamFear,
	models.IntentScamGreed,
	models.IntentScamLink,
	models.IntentScamGeneric,
	models.IntentSafe,
}

// Thresholds for the short-message calibration step.
const (
	shortMessageTokens  = 3
	shortMessageMaxConf = 0.45
)

// IntentClassifier scores short free-text messages against the lexicon.
// Stateless after construction and safe for concurrent use.
type IntentClassifier struct {
	lexicon Lexicon
	order   []models.IntentCategory
	tokens  *regexp.Regexp
	logger  *logger.Logger
}

// NewIntentClassifier creates an intent classifier. A nil lexicon selects the
// built-in one.
func NewIntentClassifier(lexicon Lexicon, log *logger.Logger) *IntentClassifier {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &IntentClassifier{
		lexicon: lexicon,
		order:   evaluationOrder(lexicon),
		tokens:  regexp.MustCompile(`\w+`),
		logger:  log.WithComponent("intent-classifier"),
	}
}

// evaluationOrder lists the lexicon's categories in the canonical order,
// appending any custom category not in the canonical list in sorted order.
func evaluationOrder(lexicon Lexicon) []models.IntentCategory {
	order := make([]models.IntentCategory, 0, len(lexicon))
	seen := make(map[models.IntentCategory]bool, len(lexicon))
	for _, cat := range categoryOrder {
		if _, ok := lexicon[cat]; ok {
			order = append(order, cat)
			seen[cat] = true
		}
	}
	extras := make([]models.IntentCategory, 0)
	for cat := range lexicon {
		if !seen[cat] {
			extras = append(extras, cat)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	return append(order, extras...)
}

// Classify returns the winning category and a calibrated confidence for the
// given text. Empty text is safe with zero confidence. Never errors: every
// input resolves to a result.
func (c *IntentClassifier) Classify(text string) models.IntentPrediction {
	if text == "" {
		return models.IntentPrediction{Category: models.IntentSafe, Confidence: 0.0}
	}

	lower := strings.ToLower(text)

	// Zero-false-negative overrides for high-confidence danger keywords.
	// These short-circuit the statistical path, in fixed priority order.
	switch {
	case strings.Contains(lower, "fir") || strings.Contains(lower, "arrest"):
		return models.IntentPrediction{Category: models.IntentScamFear, Confidence: 0.99}
	case strings.Contains(lower, "lottery") && strings.Contains(lower, "win"):
		return models.IntentPrediction{Category: models.IntentScamGreed, Confidence: 0.98}
	case strings.Contains(lower, ".apk"):
		return models.IntentPrediction{Category: models.IntentScamLink, Confidence: 0.97}
	}

	// Accumulate pattern weights per category, then softmax-normalize into a
	// probability distribution and take the arg-max.
	var sumExp float64
	best := models.IntentSafe
	bestExp := math.Inf(-1)
	for _, cat := range c.order {
		var score float64
		for pattern, weight := range c.lexicon[cat] {
			if strings.Contains(lower, pattern) {
				score += weight
			}
		}
		exp := math.Exp(score)
		sumExp += exp
		if exp > bestExp {
			bestExp = exp
			best = cat
		}
	}
	confidence := bestExp / sumExp

	// Short utterances are too weak a signal for a confident non-safe call.
	if len(c.tokens.FindAllString(lower, -1)) < shortMessageTokens && best != models.IntentSafe {
		confidence = math.Min(confidence, shortMessageMaxConf)
		best = models.IntentSafe
	}

	c.logger.Debug().
		Str("category", string(best)).
		Float64("confidence", confidence).
		Msg("message classified")

	return models.IntentPrediction{Category: best, Confidence: round2(confidence)}
}
