package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

func newTestReplyGenerator(t *testing.T, seed int64) *ReplyGenerator {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	advisor := NewAdvisor(rng, logger.NewNop())
	return NewReplyGenerator(NewResponseBank(), advisor, rng, logger.NewNop())
}

func TestReplyGenerator_PicksFromPool(t *testing.T) {
	g := newTestReplyGenerator(t, 1)
	pool := NewResponseBank().Resolve(models.IntentScamFear, models.PersonaSkeptic)

	reply := g.Generate("FIR registered against you", models.IntentScamFear, models.PersonaSkeptic, nil)
	assert.Contains(t, pool, reply)
}

func TestReplyGenerator_AvoidsRecentReplies(t *testing.T) {
	g := newTestReplyGenerator(t, 1)
	pool := NewResponseBank().Resolve(models.IntentScamUrgency, models.PersonaNaive)
	require.Len(t, pool, 3)

	history := []models.ConversationTurn{
		{Sender: "scammer", Text: "Your account will be blocked"},
		{Sender: models.SenderAgent, Text: pool[0]},
		{Sender: "scammer", Text: "Verify now"},
		{Sender: models.SenderAgent, Text: pool[1]},
	}

	for i := 0; i < 10; i++ {
		reply := g.Generate("Last warning", models.IntentScamUrgency, models.PersonaNaive, history)
		assert.Equal(t, pool[2], reply)
	}
}

func TestReplyGenerator_ExhaustedPoolAllowsRepetition(t *testing.T) {
	g := newTestReplyGenerator(t, 1)
	pool := NewResponseBank().Resolve(models.IntentScamGreed, models.PersonaAngry)

	history := make([]models.ConversationTurn, 0, len(pool))
	for _, reply := range pool {
		history = append(history, models.ConversationTurn{Sender: models.SenderAgent, Text: reply})
	}

	reply := g.Generate("You won a prize", models.IntentScamGreed, models.PersonaAngry, history)
	assert.Contains(t, pool, reply)
}

func TestReplyGenerator_OldRepliesOutsideWindowIgnored(t *testing.T) {
	g := newTestReplyGenerator(t, 1)
	pool := NewResponseBank().Resolve(models.IntentScamLink, models.PersonaNaive)

	// Two used replies pushed outside the window by six newer turns.
	history := []models.ConversationTurn{
		{Sender: models.SenderAgent, Text: pool[0]},
		{Sender: models.SenderAgent, Text: pool[1]},
	}
	for i := 0; i < repetitionWindow; i++ {
		history = append(history, models.ConversationTurn{Sender: "scammer", Text: "click the link"})
	}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[g.Generate("click this link", models.IntentScamLink, models.PersonaNaive, history)] = true
	}
	assert.Len(t, seen, len(pool))
}

func TestReplyGenerator_UnknownIntentFallsBack(t *testing.T) {
	g := newTestReplyGenerator(t, 1)
	pool := NewResponseBank().Resolve(models.IntentScamUrgency, models.PersonaNaive)

	reply := g.Generate("hello", models.IntentCategory("mystery"), models.PersonaNaive, nil)
	assert.Contains(t, pool, reply)
}

func TestReplyGenerator_UnknownPersonaFallsBack(t *testing.T) {
	g := newTestReplyGenerator(t, 1)
	pool := NewResponseBank().Resolve(models.IntentScamFear, models.PersonaNaive)

	reply := g.Generate("police case", models.IntentScamFear, models.Persona("ghost"), nil)
	assert.Contains(t, pool, reply)
}

func TestReplyGenerator_SafeIntentUsesDefaultPersona(t *testing.T) {
	g := newTestReplyGenerator(t, 1)
	pool := NewResponseBank().Resolve(models.IntentSafe, models.PersonaDefault)

	reply := g.Generate("hey, is this Raju?", models.IntentSafe, models.PersonaNaive, nil)
	assert.Contains(t, pool, reply)
}

func TestReplyGenerator_PoliceDelegatesToAdvisor(t *testing.T) {
	g := newTestReplyGenerator(t, 1)

	reply := g.Generate("I lost money to a scam, help", models.IntentScamUrgency, models.PersonaPolice, nil)

	// Advisory responses are long-form guidance, not decoy bait.
	urgencyPool := NewResponseBank().Resolve(models.IntentScamUrgency, models.PersonaNaive)
	assert.NotContains(t, urgencyPool, reply)
	assert.NotEmpty(t, reply)
}
