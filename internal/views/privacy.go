package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type policyItem struct{ lead, text string }

type policySection struct {
	heading string
	intro   string
	items   []policyItem
	outro   string
}

const privacyUpdated = "August 24, 2025"

var privacySections = []policySection{
	{
		heading: "1. Introduction",
		intro:   "Welcome to BreakoutTalents, an AI-first headhunting service for VC-backed startups in Germany. Protecting your privacy and handling your personal data responsibly is important to us.",
		outro:   "By using BreakoutTalents, you agree to the practices described here. If you do not agree, please discontinue use of our services.",
	},
	{
		heading: "2. Data We Collect",
		intro:   "We collect and process the following types of information:",
		items: []policyItem{
			{"Basic Identifiers", "name, email, phone number."},
			{"Professional Data", "LinkedIn profile, CV, job title, employer history, skills, salary expectations."},
			{"Recruiting Notes", "information shared during calls, interviews, or assessments."},
			{"Referral Data", "information provided by referrers (referrer's contact details, candidate's LinkedIn/email)."},
			{"Payment Data (referrers only)", "bank account or PayPal details, used exclusively for processing referral bonuses."},
		},
		outro: "We do not intentionally collect special categories of data. If such data is shared voluntarily, it will not be used in hiring decisions.",
	},
	{
		heading: "3. How We Use Your Data",
		intro:   "Your personal data is used strictly to provide and improve our services:",
		items: []policyItem{
			{"Talent Matching", "connecting candidates with suitable startups."},
			{"Introductions", "sharing candidate profiles with potential employers (with your consent)."},
			{"Referral Program", "tracking referrals and paying out bonuses."},
			{"Communication", "sending relevant job updates or service information (opt-in only)."},
		},
		outro: "We do not sell or rent your data to third parties.",
	},
	{
		heading: "4. AI & Automated Processing",
		intro:   "BreakoutTalents uses AI-driven tools to help vet and prioritize candidate profiles. No fully automated hiring decisions are made. You may request human review if you feel an automated step has negatively affected you.",
	},
	{
		heading: "5. Data Retention",
		items: []policyItem{
			{"Candidates & Referrals", "retained for up to 2 years after the last interaction."},
			{"Referrer Payment Data", "used only for processing payouts and deleted once complete, unless required by law."},
		},
	},
	{
		heading: "6. Your Rights (GDPR)",
		intro:   "As a data subject, you have the following rights under GDPR:",
		items: []policyItem{
			{"Access", "request a copy of the data we hold about you."},
			{"Rectification", "correct inaccurate or incomplete data."},
			{"Deletion", "request deletion of your data (\"right to be forgotten\")."},
			{"Restriction", "limit how your data is processed."},
			{"Objection", "object to processing based on legitimate interests."},
			{"Portability", "request your data in a structured, machine-readable format."},
		},
		outro: "To exercise your rights, contact us at hi@emanuelmorhard.com.",
	},
	{
		heading: "7. Cookies",
		intro:   "BreakoutTalents sets a single visitor cookie to keep your form progress between pages. You can clear it in your browser at any time.",
	},
}

func PrivacyPage() g.Node {
	return Main(
		Class("min-h-screen"),
		Div(
			Class("container mx-auto px-4 py-12 max-w-4xl"),
			H1(Class("text-4xl font-bold text-center mb-8"), g.Text("Privacy Policy – BreakoutTalents")),
			P(Class("text-muted-foreground text-center mb-12"), g.Text("Last updated: "+privacyUpdated)),
			Div(Class("prose max-w-none"), g.Map(privacySections, policyBlock)),
		),
	)
}

func policyBlock(s policySection) g.Node {
	return Section(
		Class("mb-8"),
		H2(Class("text-2xl font-semibold mb-4"), g.Text(s.heading)),
		g.If(s.intro != "", P(Class("mb-4"), g.Text(s.intro))),
		g.If(len(s.items) > 0, Ul(
			Class("list-disc pl-6 mb-4"),
			g.Map(s.items, func(it policyItem) g.Node {
				return Li(Strong(g.Text(it.lead+":")), g.Text(" "+it.text))
			}),
		)),
		g.If(s.outro != "", P(g.Text(s.outro))),
	)
}
