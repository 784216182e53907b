package models

// IntentCategory labels a short message with the scam intent it carries.
type IntentCategory string

const (
	IntentScamUrgency IntentCategory = "scam_urgency"
	IntentScamFear    IntentCategory = "scam_fear"
	IntentScamGreed   IntentCategory = "scam_greed"
	IntentScamLink    IntentCategory = "scam_link"
	IntentScamGeneric IntentCategory = "scam_generic"
	IntentSafe        IntentCategory = "safe"
)

// Persona is the decoy-victim disposition used to pick a reply style.
type Persona string

const (
	PersonaNaive   Persona = "naive"
	PersonaSkeptic Persona = "skeptic"
	PersonaAngry   Persona = "angry"
	PersonaDefault Persona = "default"
	// PersonaPolice routes the conversation to the advisory responder
	// instead of the decoy response bank.
	PersonaPolice Persona = "police"
)

// SenderAgent marks conversation turns authored by the decoy agent.
const SenderAgent = "agent"

// ConversationTurn is a single message in a honeypot conversation. History is
// supplied by the caller on every request; the engine retains nothing.
type ConversationTurn struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}

// IntentPrediction is the classifier output for one message.
type IntentPrediction struct {
	Category   IntentCategory `json:"intent"`
	Confidence float64        `json:"confidence"`
}

// ExtractedIntel holds the structured identifiers pulled out of raw message
// text. Field names follow the wire contract of the honeypot API.
type ExtractedIntel struct {
	PaymentHandles     []string `json:"upiIds"`
	PhoneNumbers       []string `json:"phoneNumbers"`
	Links              []string `json:"phishingLinks"`
	SuspiciousKeywords []string `json:"suspiciousKeywords"`
}
