package models

// FraudTrend is one entry in the fraud statistics snapshot.
type FraudTrend struct {
	Type       string `json:"type"`
	Percentage int    `json:"percentage"`
	Cases      string `json:"cases"`
}

// FraudStatistics is a static snapshot of national fraud trends served by the
// advisory agent.
type FraudStatistics struct {
	Year            int          `json:"year"`
	TotalCases      string       `json:"total_cases_india"`
	TotalLoss       string       `json:"total_loss"`
	TopFrauds       []FraudTrend `json:"top_frauds"`
	MostTargetedAge string       `json:"most_targeted_age"`
	PeakFraudTime   string       `json:"peak_fraud_time"`
	RecoveryRate    string       `json:"recovery_rate"`
}

// EmergencyContact describes one reporting channel.
type EmergencyContact struct {
	Number       string   `json:"number,omitempty"`
	URL          string   `json:"url,omitempty"`
	Name         string   `json:"name"`
	Availability string   `json:"availability,omitempty"`
	Languages    string   `json:"languages,omitempty"`
	Features     []string `json:"features,omitempty"`
	ResponseTime string   `json:"response_time,omitempty"`
}

// EmergencyContacts lists the reporting channels the advisory agent hands out.
type EmergencyContacts struct {
	NationalHelpline EmergencyContact `json:"national_helpline"`
	OnlinePortal     EmergencyContact `json:"online_portal"`
	FinancialFraud   EmergencyContact `json:"financial_fraud"`
	WomenHelpline    EmergencyContact `json:"women_helpline"`
}
