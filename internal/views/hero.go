package views

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type HeroData struct {
	Audience Audience
	Talent   FormView
	Startup  FormView
}

// HeroSection swaps only the rendered subtree on the audience; both form
// instances keep their own state.
func HeroSection(d HeroData) g.Node {
	return Main(
		Class("relative min-h-screen overflow-hidden"),
		Div(Class("absolute inset-0 -z-1 bg-gradient-to-b from-primary/10 to-transparent")),
		Div(
			Class("container mx-auto px-4 pt-10 pb-20 text-center"),
			Div(Class("flex justify-center mb-16"), HeroToggle(d.Audience)),
			H1(
				Class("text-4xl md:text-6xl font-bold tracking-tight mb-6"),
				g.Text("Your AI-first headhunter for "),
				Span(Class("text-electric-green"), g.Text("breakout startups")),
			),
			P(
				Class("text-lg md:text-xl text-muted-foreground max-w-2xl mx-auto mb-10"),
				g.Text("We connect top operators with VC-backed startups in Berlin, Munich, and beyond."),
			),
			g.If(d.Audience == AudienceTalents, talentHero(d.Talent)),
			g.If(d.Audience == AudienceStartups, startupHero(d.Startup)),
			LogoRow(),
		),
	)
}

func talentHero(fv FormView) g.Node {
	applyHref := "/apply"
	if role := fv.Values.Get("role"); role != "" {
		applyHref += "?role=" + url.QueryEscape(role)
	}
	return Section(
		ID("talents"),
		Class("max-w-md mx-auto space-y-6"),
		fv.render(),
		RoleChips(),
		Div(
			Class("flex flex-col sm:flex-row gap-3 justify-center"),
			A(Href(applyHref), Class("bg-primary text-primary-foreground rounded-md px-6 py-3 font-semibold"), g.Text("Find a Breakout Role")),
			draftButton(AudienceTalents, url.Values{"audience": {string(AudienceStartups)}}, "bg-secondary rounded-md px-6 py-3 font-semibold", g.Text("Post Your Startup")),
		),
		P(Class("text-sm text-muted-foreground"),
			g.Text("Know someone exceptional? "),
			A(Href("/refer"), Class("text-primary underline"), g.Text("Refer them and earn €500")),
		),
	)
}

func startupHero(fv FormView) g.Node {
	return Section(
		ID("startups"),
		Class("max-w-md mx-auto space-y-6"),
		P(Class("text-muted-foreground"), g.Text("Drop your job description. We send you a shortlist of vetted 10x operators.")),
		fv.render(),
		Div(
			Class("flex flex-col sm:flex-row gap-3 justify-center"),
			A(Href("#startup-form"), Class("bg-primary text-primary-foreground rounded-md px-6 py-3 font-semibold"), g.Text("Hire Breakout Talents")),
			A(Href("/video"), Class("bg-secondary rounded-md px-6 py-3 font-semibold"), g.Text("Learn More")),
		),
	)
}
