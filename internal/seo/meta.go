// Package seo builds the per-route document head: title, description,
// canonical link and Open Graph tags.
package seo

import "sort"

// TagKind is the element a Tag renders to.
type TagKind int

const (
	MetaName TagKind = iota
	MetaProperty
	LinkRel
)

// Tag is one head element. Key is its selector, e.g. `meta[name="description"]`.
type Tag struct {
	Key   string
	Kind  TagKind
	Attr  string
	Value string
}

// Head is an ordered set of tags in which Set replaces an existing tag with
// the same selector instead of adding a second one.
type Head struct {
	Title string
	tags  []Tag
	index map[string]int
}

func NewHead(title string) *Head {
	return &Head{Title: title, index: make(map[string]int)}
}

func (h *Head) Set(kind TagKind, attr, value string) *Head {
	key := selector(kind, attr)
	if i, ok := h.index[key]; ok {
		h.tags[i].Value = value
		return h
	}
	h.index[key] = len(h.tags)
	h.tags = append(h.tags, Tag{Key: key, Kind: kind, Attr: attr, Value: value})
	return h
}

func (h *Head) Description(v string) *Head   { return h.Set(MetaName, "description", v) }
func (h *Head) Canonical(v string) *Head     { return h.Set(LinkRel, "canonical", v) }
func (h *Head) OGTitle(v string) *Head       { return h.Set(MetaProperty, "og:title", v) }
func (h *Head) OGDescription(v string) *Head { return h.Set(MetaProperty, "og:description", v) }
func (h *Head) OGURL(v string) *Head         { return h.Set(MetaProperty, "og:url", v) }

// Tags returns the tags in insertion order.
func (h *Head) Tags() []Tag {
	out := make([]Tag, len(h.tags))
	copy(out, h.tags)
	return out
}

// Lookup returns the value stored under selector.
func (h *Head) Lookup(key string) (string, bool) {
	if i, ok := h.index[key]; ok {
		return h.tags[i].Value, true
	}
	return "", false
}

func selector(kind TagKind, attr string) string {
	switch kind {
	case MetaProperty:
		return `meta[property="` + attr + `"]`
	case LinkRel:
		return `link[rel="` + attr + `"]`
	}
	return `meta[name="` + attr + `"]`
}

// Page is the static metadata of one route.
type Page struct {
	Path          string
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	// Gated routes need an earlier step and are left out of Paths.
	Gated bool
}

// Pages holds metadata for every public route.
var Pages = map[string]Page{
	"/": {
		Path:          "/",
		Title:         "BreakoutTalents – AI HeadHunter for German Startup Jobs",
		Description:   "AI headhunter connecting top operators with VC-backed startups in Berlin, Munich & across Germany. Find breakout roles or hire 10x operators fast.",
		OGTitle:       "BreakoutTalents – AI Headhunter for German Startup Jobs",
		OGDescription: "AI headhunter connecting talents to VC-backed startups. Hire faster with AI-first sourcing and vetting.",
	},
	"/apply": {
		Path:        "/apply",
		Title:       "Apply - BreakoutTalents",
		Description: "Complete your application to connect with top VC-backed startups in Germany.",
	},
	"/apply/voice": {
		Path:        "/apply/voice",
		Title:       "Tell us more - BreakoutTalents",
		Description: "Optional voice conversation about your experience and goals.",
		Gated:       true,
	},
	"/refer": {
		Path:          "/refer",
		Title:         "Refer Talent – Earn €500 | BreakoutTalents (AI Headhunter)",
		Description:   "Refer top talent to an AI headhunter and earn €500 per successful hire. BreakoutTalents connects operators with VC-backed startups in Germany.",
		OGTitle:       "Refer Talent – Earn €500 | BreakoutTalents",
		OGDescription: "Refer top talent to an AI headhunter and earn €500 when hired.",
	},
	"/privacy": {
		Path:        "/privacy",
		Title:       "Privacy Policy – BreakoutTalents",
		Description: "How BreakoutTalents collects, uses and protects your personal data under the GDPR.",
	},
}

// Paths returns the sorted paths a visitor can open directly, for the sitemap.
func Paths() []string {
	out := make([]string, 0, len(Pages))
	for p, page := range Pages {
		if page.Gated {
			continue
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// ForRoute builds the head for path against the public origin. Unknown paths
// fall back to the landing page metadata with their own canonical URL.
func ForRoute(origin, path string) *Head {
	p, ok := Pages[path]
	if !ok {
		p = Pages["/"]
		p.Path = path
	}
	url := origin + p.Path

	h := NewHead(p.Title).
		Description(p.Description).
		Canonical(url)
	if p.OGTitle != "" {
		h.OGTitle(p.OGTitle).OGDescription(p.OGDescription).OGURL(url)
	}
	return h
}
