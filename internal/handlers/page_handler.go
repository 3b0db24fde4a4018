package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/justsurfingit/breakout-talents/internal/dtos"
	"github.com/justsurfingit/breakout-talents/internal/forms"
	"github.com/justsurfingit/breakout-talents/internal/seo"
	"github.com/justsurfingit/breakout-talents/internal/views"
)

// PageHandler renders the server-side pages.
type PageHandler struct {
	SiteOrigin   string
	VideoURL     string
	VoiceEnabled bool
}

func NewPageHandler(siteOrigin, videoURL string, voiceEnabled bool) *PageHandler {
	return &PageHandler{SiteOrigin: siteOrigin, VideoURL: videoURL, VoiceEnabled: voiceEnabled}
}

// render wraps body in the layout with the route's head and any pending flashes.
func (h *PageHandler) render(c *gin.Context, status int, path string, body g.Node) {
	head := seo.ForRoute(h.SiteOrigin, path)
	flashes := visitorFrom(c).TakeFlashes()

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := views.Render(c.Writer, views.Layout(head, flashes, body)); err != nil {
		log.Printf("❌ Failed to render %s: %v", path, err)
	}
}

// form returns the visitor's instance of name, answering 500 when it cannot.
func (h *PageHandler) form(c *gin.Context, name string) (*forms.Controller, bool) {
	fc, err := visitorFrom(c).Form(name)
	if err != nil {
		log.Printf("❌ Failed to build %s form: %v", name, err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return nil, false
	}
	return fc, true
}

// Home is GET /. A role query parameter fills only the talent role field.
func (h *PageHandler) Home(c *gin.Context) {
	talent, ok := h.form(c, forms.FormTalent)
	if !ok {
		return
	}
	startup, ok := h.form(c, forms.FormStartup)
	if !ok {
		return
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		talent.SetValue("role", role)
	}

	h.render(c, http.StatusOK, "/", views.HeroSection(views.HeroData{
		Audience: views.ParseAudience(c.Query("audience")),
		Talent:   views.NewFormView(talent, "/talent", "Get Matched"),
		Startup:  views.NewFormView(startup, "/startup", "Send Job Description"),
	}))
}

// Apply is GET /apply. The role comes from the query string, or from the
// visitor's talent form when neither the query nor the apply form has one.
func (h *PageHandler) Apply(c *gin.Context) {
	apply, ok := h.form(c, forms.FormApply)
	if !ok {
		return
	}
	role := strings.TrimSpace(c.Query("role"))
	if role == "" && apply.Values().Get("role") == "" {
		if talent, err := visitorFrom(c).Form(forms.FormTalent); err == nil {
			role = talent.Values().Get("role")
		}
	}
	if role != "" {
		apply.SetValue("role", role)
	}

	h.render(c, http.StatusOK, "/apply", views.ApplyPage(views.ApplyData{
		Form: views.NewFormView(apply, "/apply", "Submit Application"),
		Role: apply.Values().Get("role"),
	}))
}

// ApplyVoice is GET /apply/voice, reachable only after step one succeeded.
func (h *PageHandler) ApplyVoice(c *gin.Context) {
	v := visitorFrom(c)
	state := v.Apply()
	if !state.Completed {
		c.Redirect(http.StatusSeeOther, "/apply")
		return
	}

	vc := v.Voice()
	d := views.VoiceData{
		FirstName:  state.FirstName,
		Role:       state.Role,
		Enabled:    h.VoiceEnabled,
		Status:     vc.Status(),
		IsSpeaking: vc.IsSpeaking(),
		CanStart:   vc.CanStart(),
		CanStop:    vc.CanStop(),
	}
	if handle, ok := vc.Handle(); ok {
		d.Handle = &handle
	}
	h.render(c, http.StatusOK, "/apply/voice", views.VoicePage(d))
}

func (h *PageHandler) Refer(c *gin.Context) {
	referral, ok := h.form(c, forms.FormReferral)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, "/refer", views.ReferPage(views.ReferData{
		Form: views.NewFormView(referral, "/refer", "👉 Submit Referral"),
	}))
}

func (h *PageHandler) Privacy(c *gin.Context) {
	h.render(c, http.StatusOK, "/privacy", views.PrivacyPage())
}

// Sitemap is GET /sitemap.xml, listing every directly reachable page.
func (h *PageHandler) Sitemap(c *gin.Context) {
	resp := dtos.SitemapResponse{Xmlns: dtos.SitemapNamespace}
	for _, p := range seo.Paths() {
		resp.URLs = append(resp.URLs, dtos.SitemapURL{Loc: h.SiteOrigin + p})
	}
	c.XML(http.StatusOK, resp)
}

// Video sends /video and /demo to the external explainer video.
func (h *PageHandler) Video(c *gin.Context) {
	c.Redirect(http.StatusFound, h.VideoURL)
}

// NotFound answers JSON under /api and sends page requests home.
func (h *PageHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.Redirect(http.StatusFound, "/")
}
