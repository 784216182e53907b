package models

// VoiceClassification labels the inferred origin of an audio sample.
type VoiceClassification string

const (
	VoiceAIGenerated VoiceClassification = "AI_GENERATED"
	VoiceHuman       VoiceClassification = "HUMAN"
)

// VoiceVerdict is the origin analysis of one audio payload. Deterministic
// for identical payloads.
type VoiceVerdict struct {
	Classification VoiceClassification `json:"classification"`
	Confidence     float64             `json:"confidenceScore"`
	Explanation    string              `json:"explanation"`
	Language       string              `json:"language"`
}
