package views

import (
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/justsurfingit/breakout-talents/internal/forms"
	"github.com/justsurfingit/breakout-talents/internal/seo"
)

// Render writes a full document to w.
func Render(w io.Writer, n g.Node) error {
	return n.Render(w)
}

// Layout wraps body in the document shell. The route's head is applied here
// once, so pages never touch title or meta tags themselves.
func Layout(head *seo.Head, flashes []forms.Notification, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(head.Title)),
				g.Map(head.Tags(), headTag),
				Link(Rel("stylesheet"), Href("/static/site.css")),
			),
			Body(
				Class("min-h-screen bg-background text-foreground"),
				Flashes(flashes),
				g.Group(body),
				SiteFooter(),
			),
		),
	)
}

func headTag(t seo.Tag) g.Node {
	switch t.Kind {
	case seo.MetaProperty:
		return Meta(g.Attr("property", t.Attr), Content(t.Value))
	case seo.LinkRel:
		return Link(Rel(t.Attr), Href(t.Value))
	}
	return Meta(Name(t.Attr), Content(t.Value))
}

// Flashes renders queued notifications as dismissable toasts.
func Flashes(ns []forms.Notification) g.Node {
	if len(ns) == 0 {
		return nil
	}
	return Div(
		Class("fixed top-4 right-4 z-50 flex flex-col gap-2"),
		ID("toasts"),
		g.Map(ns, func(n forms.Notification) g.Node {
			classes := "rounded-md border p-4 shadow-lg bg-card"
			if n.Variant == forms.VariantDestructive {
				classes = "rounded-md border p-4 shadow-lg bg-destructive text-destructive-foreground"
			}
			return Div(
				Class(classes),
				Role("status"),
				Data("variant", string(n.Variant)),
				Strong(Class("block text-sm font-semibold"), g.Text(n.Title)),
				g.If(n.Description != "", P(Class("text-sm opacity-90"), g.Text(n.Description))),
			)
		}),
	)
}

func SiteFooter() g.Node {
	return Footer(
		Class("bg-background/80 backdrop-blur-sm border-t border-border mt-20"),
		Div(
			Class("container mx-auto px-4 py-8 flex flex-col md:flex-row justify-between items-center gap-4"),
			Div(
				Class("flex items-center space-x-6 text-sm"),
				A(Href("https://elnumae.notion.site/Legal-Notice-1e67cb57d5fb805e9a06c02fc2c0b676"), Target("_blank"), Rel("noopener noreferrer"), g.Text("Imprint")),
				A(Href("/privacy"), g.Text("Privacy")),
				A(Href("mailto:hi@emanuelmorhard.com"), g.Text("Contact")),
			),
			Div(
				Class("text-sm text-muted-foreground"),
				g.Text("Built with 🫶🏻 by "),
				A(Href("https://emanuelmorhard.com"), Target("_blank"), Rel("noopener noreferrer"), Class("text-primary font-medium"), g.Text("Emanuel")),
			),
		),
	)
}
