package services

import "cyberguard-lab/internal/domain/models"

// personaBank holds the reply pools for one intent category. order fixes the
// fallback persona when the requested one has no pool.
type personaBank struct {
	order   []models.Persona
	replies map[models.Persona][]string
}

// ResponseBank resolves an (intent, persona) pair to a pool of decoy replies.
// Unknown intents fall back to the urgency pool, unknown personas to the
// category's first persona.
type ResponseBank struct {
	categories       map[models.IntentCategory]personaBank
	fallbackCategory models.IntentCategory
}

// lastResortReply is returned when even the fallback chain resolves to an
// empty pool, which only happens with a custom bank.
const lastResortReply = "I am processing your request."

// NewResponseBank returns the built-in decoy reply bank.
func NewResponseBank() *ResponseBank {
	return &ResponseBank{
		fallbackCategory: models.IntentScamUrgency,
		categories: map[models.IntentCategory]personaBank{
			models.IntentSafe: {
				order: []models.Persona{models.PersonaDefault},
				replies: map[models.Persona][]string{
					models.PersonaDefault: {
						"I think you have the wrong number.",
						"Who is this?",
						"Do I know you?",
						"What is this regarding?",
					},
				},
			},
			models.IntentScamUrgency: {
				order: []models.Persona{models.PersonaNaive, models.PersonaSkeptic, models.PersonaAngry},
				replies: map[models.Persona][]string{
					models.PersonaNaive: {
						"Oh god, I am so scared! Please don't block me.",
						"Wait... I am looking for my glasses. Hold on.",
						"Please sir, I am a pensioner. Don't cut my connection.",
					},
					models.PersonaSkeptic: {
						"I need a formal notice via email first.",
						"Which branch are you calling from exactly?",
						"I am recording this call for legal purposes.",
					},
					models.PersonaAngry: {
						"STOP THREATENING ME!",
						"I WILL SUE YOUR COMPANY!",
						"YOU ARE A SCAMMER! I KNOW IT!",
					},
				},
			},
			models.IntentScamGreed: {
				order: []models.Persona{models.PersonaNaive, models.PersonaSkeptic, models.PersonaAngry},
				replies: map[models.Persona][]string{
					models.PersonaNaive: {
						"Wow really? I never win anything! Is it real?",
						"How do I get the money? Cash or Bank Transfer?",
						"God bless you! What is the next step?",
					},
					models.PersonaSkeptic: {
						"Nothing in life is free. What is the catch?",
						"I did not enter any contest. How did I win?",
						"Why do I need to pay a fee if I won?",
					},
					models.PersonaAngry: {
						"I DON'T WANT YOUR TRASH!",
						"SCAMMER! STOP MESSAGING ME!",
						"DO YOU THINK I AM STUPID?",
					},
				},
			},
			models.IntentScamFear: {
				order: []models.Persona{models.PersonaNaive, models.PersonaSkeptic, models.PersonaAngry},
				replies: map[models.Persona][]string{
					models.PersonaNaive: {
						"Please sir, don't arrest me! I am a good person.",
						"I am a retired teacher. I did nothing wrong.",
						"Can I pay a fine to stop the police coming?",
					},
					models.PersonaSkeptic: {
						"Quote the FIR Number and Police Station ID.",
						"My lawyer will contact you directly.",
						"Police do not send warnings on WhatsApp.",
					},
					models.PersonaAngry: {
						"COME AND ARREST ME THEN!",
						"I KNOW THE COMMISSIONER PERSONALLY!",
						"YOU WILL BE THE ONE IN JAIL SOON!",
					},
				},
			},
			models.IntentScamLink: {
				order: []models.Persona{models.PersonaNaive, models.PersonaSkeptic, models.PersonaAngry},
				replies: map[models.Persona][]string{
					models.PersonaNaive: {
						"I clicked it but nothing happened. Is my phone broken?",
						"It asks for a password... should I give my email password?",
						"Is this safe? My phone says 'Warning'.",
					},
					models.PersonaSkeptic: {
						"That domain looks fake. It's not official.",
						"Virustotal flagged this URL as malicious.",
						"Nice try, I'm not clicking that.",
					},
					models.PersonaAngry: {
						"I AM NOT CLICKING THAT MALWARE!",
						"DO YOU WANT TO HACK ME?",
						"STOP SENDING LINKS!",
					},
				},
			},
		},
	}
}

// Resolve returns the reply pool for the given intent and persona, walking
// the fallback chain so the result is never empty.
func (b *ResponseBank) Resolve(intent models.IntentCategory, persona models.Persona) []string {
	bank, ok := b.categories[intent]
	if !ok {
		bank = b.categories[b.fallbackCategory]
	}
	if pool, ok := bank.replies[persona]; ok && len(pool) > 0 {
		return pool
	}
	for _, p := range bank.order {
		if pool := bank.replies[p]; len(pool) > 0 {
			return pool
		}
	}
	return []string{lastResortReply}
}
