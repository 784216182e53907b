package services

import (
	"strings"

	"cyberguard-lab/internal/domain/models"
	"cyberguard-lab/pkg/logger"
)

// Advisor identity. Fixed so conversations stay consistent across requests.
const (
	AdvisorName       = "Harsh"
	AdvisorBadge      = "CYB-2024-IND-7891"
	AdvisorDepartment = "National Cyber Defense Cell"
)

// responseBucket routes a query to a family of canned replies. Buckets are
// evaluated in order; the first keyword hit wins.
type responseBucket struct {
	triggers []string
	replies  []string
	// protocol substitutes the emergency protocol text for the reply list.
	protocol bool
	// prefix is prepended to a fraud-info lookup instead of a canned reply.
	infoTopic  string
	infoPrefix string
}

// Advisor is the conversational fraud-guidance responder. It answers with
// empathetic, pre-written guidance selected by keyword routing.
type Advisor struct {
	buckets []responseBucket
	rng     Rand
	logger  *logger.Logger
}

// NewAdvisor creates the advisory responder. A nil rng selects a time-seeded
// source.
func NewAdvisor(rng Rand, log *logger.Logger) *Advisor {
	if rng == nil {
		rng = defaultRand()
	}
	return &Advisor{
		buckets: advisorBuckets(),
		rng:     rng,
		logger:  log.WithComponent("advisor"),
	}
}

// Respond picks a reply for the query. The context map is accepted for wire
// compatibility but carries no routing signal today.
func (a *Advisor) Respond(query string, context map[string]any) string {
	_ = context
	lower := strings.ToLower(query)
	for _, b := range a.buckets {
		if !containsAny(lower, b.triggers) {
			continue
		}
		if b.protocol {
			return a.EmergencyProtocol()
		}
		if b.infoTopic != "" {
			return b.infoPrefix + a.FraudInfo(b.infoTopic)
		}
		return b.replies[a.rng.Intn(len(b.replies))]
	}
	fallback := defaultAdvisorReplies
	return fallback[a.rng.Intn(len(fallback))]
}

// FraudInfo returns in-depth guidance about one fraud family. Unknown topics
// get a menu of the supported ones.
func (a *Advisor) FraudInfo(topic string) string {
	info, ok := fraudTopicInfo[strings.ToLower(topic)]
	if !ok {
		info = "I can tell you about Email, Link, or Phone fraud. Which would you like to know more about?"
	}
	return info + " I hope this information helps you feel more prepared. Is there anything else about this you'd like to ask me?"
}

// EmergencyProtocol returns the immediate steps after a theft.
func (a *Advisor) EmergencyProtocol() string {
	return "If a theft or fraud has happened, please follow these 3 steps immediately: " +
		"1. Call the National Helpline 1930 within the first 2 hours (the Golden Hour) to freeze the transaction. " +
		"2. Contact your bank's fraud department to block all your cards and accounts. " +
		"3. File a formal report at https://cybercrime.gov.in. You will need your transaction IDs and screenshots. " +
		"Don't wait, acting fast is the best way to recover your money. I know this is a lot to take in, but I am right here with you. " +
		"Would you like me to explain any of these steps in more detail?"
}

// Statistics returns the national fraud trends snapshot.
func (a *Advisor) Statistics() models.FraudStatistics {
	return models.FraudStatistics{
		Year:       2024,
		TotalCases: "1.4 Million+",
		TotalLoss:  "Rs 5,000+ Crores",
		TopFrauds: []models.FraudTrend{
			{Type: "UPI/Payment Fraud", Percentage: 28, Cases: "392,000+"},
			{Type: "Job Fraud", Percentage: 18, Cases: "252,000+"},
			{Type: "Investment Scams", Percentage: 15, Cases: "210,000+"},
			{Type: "Loan Scams", Percentage: 12, Cases: "168,000+"},
			{Type: "Romance Scams", Percentage: 10, Cases: "140,000+"},
			{Type: "Other", Percentage: 17, Cases: "238,000+"},
		},
		MostTargetedAge: "25-35 years",
		PeakFraudTime:   "Evening (6 PM - 10 PM)",
		RecoveryRate:    "Only 2-3% of lost money is recovered",
	}
}

// PreventionTips returns general digital-hygiene advice.
func (a *Advisor) PreventionTips() []string {
	return []string{
		"Enable Two-Factor Authentication (2FA) on all accounts",
		"Never share OTP, CVV, or PIN with anyone (even bank staff)",
		"Verify sender email addresses carefully - check for typos",
		"Hover over links before clicking to see actual destination",
		"Install official apps only from Google Play/App Store",
		"Use virtual cards for online transactions",
		"Set transaction limits and SMS alerts on your accounts",
		"Be skeptical of unsolicited calls/emails from 'officials'",
		"Remember: Banks NEVER ask for credentials via call/email",
		"If scammed, call 1930 within 2 hours (Golden Hour)",
	}
}

// EmergencyContacts returns the reporting channels.
func (a *Advisor) EmergencyContacts() models.EmergencyContacts {
	return models.EmergencyContacts{
		NationalHelpline: models.EmergencyContact{
			Number:       "1930",
			Name:         "National Cyber Crime Helpline",
			Availability: "24x7",
			Languages:    "Hindi, English, Regional Languages",
		},
		OnlinePortal: models.EmergencyContact{
			URL:      "https://cybercrime.gov.in",
			Name:     "National Cyber Crime Reporting Portal",
			Features: []string{"File FIR Online", "Track Complaint", "Report Social Media Crime"},
		},
		FinancialFraud: models.EmergencyContact{
			Number:       "155260",
			Name:         "Citizen Financial Cyber Fraud Reporting",
			ResponseTime: "Immediate (for freezing accounts)",
		},
		WomenHelpline: models.EmergencyContact{
			Number:       "7827-170-170",
			Name:         "Cyber Crime Helpline for Women",
			Availability: "24x7",
		},
	}
}

var fraudTopicInfo = map[string]string{
	"email": "Email Fraud (Phishing/Spoofing) is where scammers impersonate trusted brands to steal your secrets. " +
		"They use 'Urgency' to make you panic. Always check the sender's full email address, scammers " +
		"often use slight misspellings like 'inf0@bank.com' instead of 'info@bank.com'. Never open attachments " +
		"from strangers, as they often contain hidden viruses called Keyloggers that record everything you type.",
	"link": "Link Fraud involves malicious URLs sent via SMS (Smishing), WhatsApp, or Social Media. " +
		"These links lead to 'Mirror Websites' that look identical to your real bank login. " +
		"Always check for the 'HTTPS' lock icon, but remember that even bad sites can have it. " +
		"The safest way is to never click, instead manually type the official website name into your browser.",
	"phone": "Phone Fraud (Vishing) is when scammers call you pretending to be bank staff or police. " +
		"They use 'Voice Cloning' and 'Social Engineering' to gain your trust. If someone calls and " +
		"requests an OTP or tells you your account is blocked, hang up immediately. " +
		"Call your bank using the official number on the back of your debit card to verify the truth.",
}

var defaultAdvisorReplies = []string{
	"I'm here for you and I'm listening. Could you please share a few more details so I can give you the best possible advice? Every bit helps.",
	"I want to make sure I understand correctly. Are you asking about a specific incident, or would you like general safety tips? I'm happy to help with either.",
	"That's a very good question. To help you better, I'd love to know if you've received any suspicious messages or calls recently. I'm right here with you.",
}

func advisorBuckets() []responseBucket {
	return []responseBucket{
		{
			triggers: []string{"hello", "hi", "hey", "namaste", "good morning"},
			replies: []string{
				"Hello there. I am " + AdvisorName + ". Please don't worry, I am here to listen and help you through this. What's on your mind?",
				"Namaste. I'm " + AdvisorName + ", and I'm glad you reached out. It's completely okay to feel concerned, let's look into this together. How can I assist you?",
				"Hi. I'm here to guide you and keep you safe. Please feel free to share whatever is troubling you. I'm listening.",
			},
		},
		{
			triggers: []string{"contact", "emergency", "stole", "happened", "who to", "report", "theft", "victim"},
			protocol: true,
		},
		{
			triggers:   []string{"email fraud", "mail scam", "phishing info", "about email"},
			infoTopic:  "email",
			infoPrefix: "Certainly. ",
		},
		{
			triggers:   []string{"link fraud", "url scam", "sms link", "about link"},
			infoTopic:  "link",
			infoPrefix: "Of course. ",
		},
		{
			triggers:   []string{"phone fraud", "vishing", "call scam", "about phone"},
			infoTopic:  "phone",
			infoPrefix: "I can explain that. ",
		},
		{
			triggers: []string{"help", "scam", "fraud", "cheat", "lost money", "stolen", "victim"},
			replies: []string{
				"I am so sorry to hear that this happened to you. Please take a deep breath; you're not alone. The first thing we should do is protect your accounts. Have you been able to contact your bank yet?",
				"It's very brave of you to report this. Scammers are very clever, and it's not your fault. Let's work together to see what we can do. Can you walk me through what happened, slowly?",
				"I understand how stressful this is. My goal is to support you. Let's start by gathering some details so we can take the right steps to help you. What happened first?",
			},
		},
		{
			triggers: []string{"email", "mail", "link", "url", "message", "phishing"},
			replies: []string{
				"It's very wise of you to be cautious about that message. Many people are targeted by these, and it's always better to check. If you can share the details, I'll help you see if it's safe or not.",
				"I'd be more than happy to help you check that. Just think of me as your partner in safety. Scammers often use urgent language to make us worried, but we'll stay calm and look at it together.",
				"Let's take a look at that together. You're doing the right thing by asking for help before clicking anything. Safety is our priority.",
			},
		},
		{
			triggers: []string{"money", "transfer", "payment", "upi", "deduct", "bank"},
			replies: []string{
				"I know it's frightening to see money leave your account. Please don't panic. The 'Golden Hour' is very important, so if this just happened, let's try to call 1930 together or contact your bank right away.",
				"I'm here with you. If you've lost money, we need to act quickly but calmly. Your bank and the 1930 helpline are our best friends right now. Do you have your transaction ID handy?",
				"That sounds very stressful, but we can handle this. First, I want you to know that reporting this is the right step. Let's try to get those details together so we can alert the authorities.",
			},
		},
		{
			triggers: []string{"fir", "complaint", "police", "legal", "action", "law"},
			replies: []string{
				"The law is here to protect you. Filing a complaint is a way to take your power back. I can guide you through the process of filing an FIR online, which is very simple and can be done from home.",
				"You have rights, and I'm here to help you exercise them. We can look at the IT Act together so you understand how the system supports victims of fraud like you.",
				"Don't worry about the legal complexity. I'll break it down for you simply. Reporting the incident is a very positive step toward justice.",
			},
		},
		{
			triggers: []string{"identity", "aadhar", "pan card", "stolen id", "impersonate"},
			replies: []string{
				"Identity theft is very serious. If your IDs like Aadhar or PAN are compromised, you should alert the respective departments and file a report. It's best to keep a close watch on your bank statements too.",
				"It can feel very invasive to have your identity stolen. I recommend changing all your digital passwords and monitoring your credit report. We can help you file a formal complaint to document the theft.",
				"Don't worry, we can take steps to protect you. First, notify your bank so they can prevent unauthorized access. Then, let's document exactly what information was taken.",
			},
		},
		{
			triggers: []string{"whatsapp", "facebook", "instagram", "hacked account", "fake profile"},
			replies: []string{
				"Social media scams are very common. If you've been hacked, try to use the platform's official recovery tools. I also recommend warning your friends so they don't fall for any messages from 'you'.",
				"Fake profiles are often used for social engineering. If someone is impersonating you, report the profile directly to the platform. We can also help you document it for legal purposes.",
				"Stay safe on social media by enabling two-factor authentication. If you've already lost access, let's focus on recovering it through the official help centers.",
			},
		},
		{
			triggers: []string{"loan", "investment", "shares", "crypto", "trading", "profit"},
			replies: []string{
				"Investment and loan scams often promise quick money. If a deal seems too good to be true, it likely is. I recommend only using verified apps and platforms registered with regulatory bodies like SEBI or RBI.",
				"Fake loan apps can be very aggressive. If you're being harassed, please block them and report it to us. Never pay 'processing fees' upfront for a loan, that's a major red flag.",
				"I know the promise of high returns is tempting. Before investing more, please verify the company's credentials. If you've already sent money, let's document the transaction details together.",
			},
		},
		{
			triggers: []string{"password", "secure", "safe", "privacy", "protection"},
			replies: []string{
				"Staying safe online is all about good habits. Use strong, unique passwords for every account and never reuse them. Have you tried using a password manager?",
				"Privacy is your right. I suggest checking your account settings to limit who can see your information. And remember, I'm always here to check any suspicious links for you.",
				"The best protection is being informed. You're already doing great by asking these questions. Keep your software updated and always be cautious of unsolicited messages.",
			},
		},
	}
}
