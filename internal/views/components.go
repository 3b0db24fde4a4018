package views

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/justsurfingit/breakout-talents/internal/forms"
)

// Audience is the two-valued selector at the top of the landing page.
type Audience string

const (
	AudienceTalents  Audience = "talents"
	AudienceStartups Audience = "startups"
)

// ParseAudience defaults to talents for anything unrecognized.
func ParseAudience(s string) Audience {
	if Audience(s) == AudienceStartups {
		return AudienceStartups
	}
	return AudienceTalents
}

func (a Audience) Label() string {
	if a == AudienceStartups {
		return "For Startups"
	}
	return "For Talents"
}

// Roles offered as one-click chips in the talent hero.
var Roles = []string{
	"Account Executive",
	"Founders Associate",
	"GTM Manager",
	"Product Manager",
	"Engineer",
}

// Logos of the investors whose portfolio startups hire through the site.
var Logos = []string{"Project A", "HV Capital", "Cherry", "Speedinvest", "Lakestar", "Point Nine"}

// FormView is everything needed to render one form instance.
type FormView struct {
	Schema      forms.Schema
	Action      string
	Values      forms.Values
	Errors      forms.FieldErrors
	Busy        bool
	SubmitLabel string
	BusyLabel   string
}

// NewFormView snapshots a form instance for rendering.
func NewFormView(c *forms.Controller, action, submitLabel string) FormView {
	return FormView{
		Schema:      c.Schema(),
		Action:      action,
		Values:      c.Values(),
		Errors:      c.Errors(),
		Busy:        c.Busy(),
		SubmitLabel: submitLabel,
		BusyLabel:   "Submitting...",
	}
}

func (fv FormView) render(extra ...g.Node) g.Node {
	label := fv.SubmitLabel
	if fv.Busy {
		label = fv.BusyLabel
	}
	return g.El("form",
		ID(fv.Schema.Name+"-form"),
		Class("space-y-4"),
		Method("post"),
		Action(fv.Action),
		g.Attr("novalidate"),
		g.Map(fv.Schema.Fields, fv.field),
		g.Group(extra),
		Button(
			Type("submit"),
			Class("w-full bg-primary text-primary-foreground rounded-md px-6 py-3 font-semibold"),
			g.If(fv.Busy, Disabled()),
			g.Text(label),
		),
	)
}

func (fv FormView) field(f forms.Field) g.Node {
	id := fv.Schema.Name + "-" + f.Name
	value := fv.Values.Get(f.Name)

	if f.Hidden {
		return Input(Type("hidden"), Name(f.Name), Value(value))
	}

	inputType := "text"
	switch f.Kind {
	case forms.URL:
		inputType = "url"
	case forms.Email:
		inputType = "email"
	}

	msg := fv.Errors.Message(f.Name)
	return Div(
		Class("space-y-1"),
		g.El("label", g.Attr("for", id), Class("text-sm font-medium"), g.Text(f.Label)),
		Input(
			ID(id),
			Type(inputType),
			Name(f.Name),
			Value(value),
			Placeholder(f.Placeholder),
			Class("w-full h-12 rounded-md border border-border bg-background/50 px-3"),
			g.If(f.Required, Required()),
			g.If(msg != "", g.Attr("aria-invalid", "true")),
		),
		g.If(msg != "", P(Class("text-sm text-destructive"), Data("error", string(fv.Errors.Kind(f.Name))), g.Text(msg))),
	)
}

// formName is the lead form shown for the audience.
func (a Audience) formName() string {
	if a == AudienceStartups {
		return forms.FormStartup
	}
	return forms.FormTalent
}

// draftButton submits the form shown for from to its draft endpoint, so typed
// values are kept on the server before the page switches.
func draftButton(from Audience, query url.Values, classes string, children ...g.Node) g.Node {
	form := from.formName()
	return Button(
		Type("submit"),
		g.Attr("form", form+"-form"),
		g.Attr("formaction", "/"+form+"/draft?"+query.Encode()),
		g.Attr("formnovalidate"),
		Class(classes),
		g.Group(children),
	)
}

// HeroToggle renders the audience selector. Each choice posts the visible form
// as a draft and lands on the chosen audience.
func HeroToggle(selected Audience) g.Node {
	option := func(a Audience) g.Node {
		classes := "px-4 py-2 text-sm font-medium rounded-md text-muted-foreground"
		if a == selected {
			classes = "px-4 py-2 text-sm font-medium rounded-md bg-primary text-primary-foreground shadow-sm"
		}
		return draftButton(selected, url.Values{"audience": {string(a)}}, classes,
			g.If(a == selected, g.Attr("aria-current", "true")),
			g.Text(a.Label()),
		)
	}
	return Nav(
		Class("inline-flex rounded-lg border border-border bg-card/50 p-1"),
		ID("audience-toggle"),
		option(AudienceStartups),
		option(AudienceTalents),
	)
}

// RoleChips pre-fill the talent role field and keep the rest of the draft.
func RoleChips() g.Node {
	return Div(
		Class("flex flex-wrap justify-center gap-2"),
		ID("role-chips"),
		g.Map(Roles, func(role string) g.Node {
			return draftButton(AudienceTalents, url.Values{"audience": {string(AudienceTalents)}, "role": {role}},
				"px-4 py-2 text-sm font-medium rounded-full border border-border bg-card/30",
				g.Text(role),
			)
		}),
	)
}

func LogoRow() g.Node {
	return Div(
		Class("mt-16 text-center"),
		P(Class("text-sm text-muted-foreground mb-6"), g.Text("Connecting talents to startups backed by")),
		Div(
			Class("flex flex-wrap justify-center items-center gap-8 opacity-60"),
			g.Map(Logos, func(name string) g.Node {
				return Div(Class("text-lg font-semibold"), g.Text(name))
			}),
		),
	)
}
