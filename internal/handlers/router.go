package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/breakout-talents/internal/config"
	"github.com/justsurfingit/breakout-talents/internal/session"
	"github.com/justsurfingit/breakout-talents/web"
)

// HealthCheck is GET /api/v1/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	return config
}

// NewRouter wires every page, form post and API route onto one engine.
func NewRouter(cfg config.Config, sessions *session.Store) *gin.Engine {
	r := gin.Default()
	r.StaticFS("/static", http.FS(web.Static()))
	r.Use(VisitorMiddleware(sessions, cfg.SessionTTL, strings.HasPrefix(cfg.SiteOrigin, "https://")))

	pages := NewPageHandler(cfg.SiteOrigin, cfg.VideoURL, cfg.VoiceEnabled())
	leads := NewLeadHandler(cfg.VoiceEnabled())
	voices := NewVoiceHandler()

	// Pages and form posts
	r.GET("/", pages.Home)
	r.POST("/talent", leads.SubmitTalentForm)
	r.POST("/startup", leads.SubmitStartupForm)
	r.POST("/talent/draft", leads.SaveTalentDraft)
	r.POST("/startup/draft", leads.SaveStartupDraft)
	r.GET("/apply", pages.Apply)
	r.POST("/apply", leads.SubmitApplyForm)
	r.GET("/apply/voice", pages.ApplyVoice)
	r.POST("/apply/voice/start", voices.Start)
	r.POST("/apply/voice/stop", voices.Stop)
	r.GET("/refer", pages.Refer)
	r.POST("/refer", leads.SubmitReferralForm)
	r.GET("/privacy", pages.Privacy)
	r.GET("/sitemap.xml", pages.Sitemap)
	r.GET("/video", pages.Video)
	r.GET("/demo", pages.Video)
	r.NoRoute(pages.NotFound)

	api := r.Group("/api/v1")
	api.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	{
		api.GET("/health", HealthCheck)
		// Preflights have no route of their own; the cors middleware answers them.
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		// Lead routes
		api.POST("/talent-submissions", leads.CreateTalentSubmission)
		api.POST("/startup-submissions", leads.CreateStartupSubmission)
		api.POST("/referrals", leads.CreateReferral)

		// Voice routes
		api.GET("/voice/status", voices.Status)
		api.POST("/voice/events", voices.Events)
	}

	return r
}
