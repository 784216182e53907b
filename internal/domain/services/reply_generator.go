package services

import (
	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

// repetitionWindow is how many trailing history turns are scanned for agent
// replies when filtering out repeats.
const repetitionWindow = 6

// ReplyGenerator picks the decoy's next utterance for a conversation turn.
// The police persona bypasses the bank and delegates to the advisor.
type ReplyGenerator struct {
	bank    *ResponseBank
	advisor *Advisor
	rng     Rand
	logger  *logger.Logger
}

// NewReplyGenerator creates the reply generator. A nil bank selects the
// built-in one; a nil rng a time-seeded source.
func NewReplyGenerator(bank *ResponseBank, advisor *Advisor, rng Rand, log *logger.Logger) *ReplyGenerator {
	if bank == nil {
		bank = NewResponseBank()
	}
	if rng == nil {
		rng = defaultRand()
	}
	return &ReplyGenerator{
		bank:    bank,
		advisor: advisor,
		rng:     rng,
		logger:  log.WithComponent("reply-generator"),
	}
}

// Generate picks a reply for the scammer's latest message. Replies the agent
// already used within the repetition window are avoided; when the whole pool
// has been used, repetition is allowed rather than going silent.
func (g *ReplyGenerator) Generate(text string, intent models.IntentCategory, persona models.Persona, history []models.ConversationTurn) string {
	if persona == models.PersonaPolice && g.advisor != nil {
		return g.advisor.Respond(text, nil)
	}

	pool := g.bank.Resolve(intent, persona)

	recent := map[string]bool{}
	start := len(history) - repetitionWindow
	if start < 0 {
		start = 0
	}
	for _, turn := range history[start:] {
		if turn.Sender == models.SenderAgent {
			recent[turn.Text] = true
		}
	}

	fresh := make([]string, 0, len(pool))
	for _, reply := range pool {
		if !recent[reply] {
			fresh = append(fresh, reply)
		}
	}
	if len(fresh) == 0 {
		fresh = pool
	}

	reply := fresh[g.rng.Intn(len(fresh))]

	g.logger.Debug().
		Str("intent", string(intent)).
		Str("persona", string(persona)).
		Int("pool", len(fresh)).
		Msg("reply selected")

	return reply
}
