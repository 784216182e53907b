package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"cyberguard-lab/pkg/logger"
)

func newTestAdvisor(t *testing.T, seed int64) *Advisor {
	t.Helper()
	return NewAdvisor(rand.New(rand.NewSource(seed)), logger.NewNop())
}

func TestAdvisor_GreetingTakesPriority(t *testing.T) {
	a := newTestAdvisor(t, 7)

	// "police" alone would route to the legal bucket, but greetings win.
	reply := a.Respond("hello police", nil)
	assert.True(t,
		reply == "Hello there. I am "+AdvisorName+". Please don't worry, I am here to listen and help you through this. What's on your mind?" ||
			reply == "Namaste. I'm "+AdvisorName+", and I'm glad you reached out. It's completely okay to feel concerned, let's look into this together. How can I assist you?" ||
			reply == "Hi. I'm here to guide you and keep you safe. Please feel free to share whatever is troubling you. I'm listening.",
		"unexpected greeting reply: %s", reply)
}

func TestAdvisor_EmergencyQueriesGetProtocol(t *testing.T) {
	a := newTestAdvisor(t, 7)

	for _, query := range []string{
		"someone stole my savings",
		"I want to report a theft",
		"what is the emergency contact",
	} {
		reply := a.Respond(query, nil)
		assert.Contains(t, reply, "1930", query)
		assert.Contains(t, reply, "cybercrime.gov.in", query)
	}
}

func TestAdvisor_FraudInfoLookups(t *testing.T) {
	a := newTestAdvisor(t, 7)

	tests := []struct {
		query    string
		contains string
	}{
		{"tell me about email fraud", "Certainly. Email Fraud"},
		{"what is link fraud", "Of course. Link Fraud"},
		{"explain phone fraud please", "I can explain that. Phone Fraud"},
	}
	for _, tt := range tests {
		assert.Contains(t, a.Respond(tt.query, nil), tt.contains)
	}
}

func TestAdvisor_FraudInfoUnknownTopic(t *testing.T) {
	a := newTestAdvisor(t, 7)

	info := a.FraudInfo("crypto")
	assert.Contains(t, info, "Email, Link, or Phone fraud")
}

func TestAdvisor_ContextIsIgnored(t *testing.T) {
	withCtx := newTestAdvisor(t, 11).Respond("I need help with a scam", map[string]any{"channel": "sms"})
	without := newTestAdvisor(t, 11).Respond("I need help with a scam", nil)
	assert.Equal(t, without, withCtx)
}

func TestAdvisor_DefaultReplyForUnroutedQuery(t *testing.T) {
	a := newTestAdvisor(t, 7)

	reply := a.Respond("xyzzy", nil)
	assert.Contains(t, defaultAdvisorReplies, reply)
}

func TestAdvisor_Statistics(t *testing.T) {
	a := newTestAdvisor(t, 7)

	stats := a.Statistics()
	assert.Equal(t, 2024, stats.Year)
	assert.Len(t, stats.TopFrauds, 6)
	assert.Equal(t, "UPI/Payment Fraud", stats.TopFrauds[0].Type)
}

func TestAdvisor_PreventionTips(t *testing.T) {
	a := newTestAdvisor(t, 7)
	assert.Len(t, a.PreventionTips(), 10)
}

func TestAdvisor_EmergencyContacts(t *testing.T) {
	a := newTestAdvisor(t, 7)

	contacts := a.EmergencyContacts()
	assert.Equal(t, "1930", contacts.NationalHelpline.Number)
	assert.Equal(t, "https://cybercrime.gov.in", contacts.OnlinePortal.URL)
	assert.Equal(t, "155260", contacts.FinancialFraud.Number)
	assert.Equal(t, "24x7", contacts.WomenHelpline.Availability)
}
