package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type step struct{ n, text string }

var referSteps = []step{
	{"1", "Drop their LinkedIn profile + your email via BreakoutTalents."},
	{"2", "We connect them with Germany's fastest-growing VC-backed startups."},
	{"3", "If they're hired and pass probation, BreakoutTalents pays you €500 referral bonus."},
}

var referStats = []step{
	{"€500", "per successful hire"},
	{"2", "minutes to refer"},
	{"∞", "unlimited referrals allowed"},
}

var referReasons = []step{
	{"💰", "Earn €500 per successful hire"},
	{"🚀", "Help friends grow into breakout roles at VC-backed startups"},
	{"🔑", "No extra work required — BreakoutTalents handles sourcing, intros, and hiring"},
	{"🌍", "Be part of Germany's startup ecosystem by connecting talent with top founders"},
}

type ReferData struct {
	Form FormView
}

func ReferPage(d ReferData) g.Node {
	cta := func(label string) g.Node {
		return A(Href("#referral-form"), Class("inline-block bg-primary text-primary-foreground rounded-md px-8 py-4 font-semibold"), g.Text(label))
	}
	return Main(
		Class("relative min-h-screen"),
		Div(
			Class("container mx-auto px-4 py-16 max-w-4xl"),
			Section(
				Class("text-center mb-16"),
				H1(
					Class("text-4xl md:text-5xl font-bold mb-6"),
					g.Text("Refer top talent. Earn "),
					Span(Class("text-electric-green"), g.Text("€500")),
					g.Text(" with BreakoutTalents."),
				),
				P(
					Class("text-lg text-muted-foreground mb-8"),
					g.Text("Know a smart friend looking for a new opportunity? Refer them to BreakoutTalents. If they get hired at one of our VC-backed startup partners in Germany, you'll earn a €500 referral bonus."),
				),
				cta("👉 Refer a Friend Now"),
			),
			Section(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8 mb-16"),
				g.Map(referStats, func(s step) g.Node {
					return Div(
						Class("text-center"),
						Div(Class("text-4xl font-bold text-electric-green"), g.Text(s.n)),
						P(Class("text-muted-foreground"), g.Text(s.text)),
					)
				}),
			),
			Section(
				Class("mb-16"),
				H2(Class("text-2xl font-semibold text-center mb-8"), g.Text("How It Works")),
				Div(
					Class("grid md:grid-cols-3 gap-6"),
					g.Map(referSteps, func(s step) g.Node {
						return Div(
							Class("rounded-lg border border-border bg-card/50 p-6 text-center"),
							Div(Class("text-2xl font-bold text-primary mb-2"), g.Text(s.n)),
							P(Class("text-muted-foreground"), g.Text(s.text)),
						)
					}),
				),
			),
			Section(
				ID("refer-form-section"),
				Class("max-w-md mx-auto mb-16 rounded-lg border border-border bg-card/50 p-6"),
				d.Form.render(),
			),
			Section(
				Class("mb-16"),
				H2(Class("text-3xl font-bold text-center mb-12"), g.Text("Why Refer with BreakoutTalents?")),
				Div(
					Class("grid md:grid-cols-2 gap-8"),
					g.Map(referReasons, func(s step) g.Node {
						return Div(
							Class("flex items-start space-x-4"),
							Div(Class("text-2xl"), g.Text(s.n)),
							H3(Class("text-lg font-semibold"), g.Text(s.text)),
						)
					}),
				),
			),
			Section(
				Class("text-center"),
				H2(Class("text-3xl font-bold mb-4"), g.Text("Who's the most talented person you know?")),
				P(Class("text-muted-foreground mb-8"), g.Text("Refer them to BreakoutTalents in 2 minutes and get rewarded when they're hired.")),
				cta("👉 Refer a Talent Now"),
			),
		),
	)
}
