package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/justsurfingit/breakout-talents/internal/auth"
	"github.com/justsurfingit/breakout-talents/internal/config"
	"github.com/justsurfingit/breakout-talents/internal/database"
	"github.com/justsurfingit/breakout-talents/internal/handlers"
	"github.com/justsurfingit/breakout-talents/internal/services"
	"github.com/justsurfingit/breakout-talents/internal/session"
	"github.com/justsurfingit/breakout-talents/internal/store"
	"github.com/justsurfingit/breakout-talents/internal/voice"
	"github.com/justsurfingit/breakout-talents/internal/voice/elevenlabs"
)

func main() {
	// 1. Load Environment Variables
	cfg, loaded, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if !loaded {
		log.Println("No .env file found, using process environment")
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database Connection
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Lead notifications (optional)
	var notifier services.Notifier
	if cfg.NotifyEnabled() {
		notifier = newGmailNotifier(ctx, cfg)
	}

	// 4. Core services
	submissions := services.NewSubmissionService(store.NewGormInserter(db), notifier)
	submissions.Debug = cfg.GinMode == gin.DebugMode

	// 5. Voice provider
	newVoice := func() *voice.Controller { return voice.NewController(nil, "") }
	if cfg.VoiceEnabled() {
		client := elevenlabs.NewClient(cfg.ElevenLabsBaseURL, cfg.ElevenLabsAPIKey, cfg.VoiceRatePerMinute)
		client.ConnectTimeout = cfg.VoiceConnectTimeout
		newVoice = func() *voice.Controller {
			return voice.NewController(client.NewSession(), cfg.ElevenLabsAgentID)
		}
		log.Println("🎤 Voice chat enabled.")
	} else {
		log.Println("⚠️  ELEVENLABS_API_KEY or ELEVENLABS_AGENT_ID missing, voice chat disabled.")
	}

	// 6. Visitor sessions
	sessions := session.NewStore(cfg.SessionTTL, submissions.NewForm, newVoice)
	go sessions.Run(ctx, time.Minute)

	// 7. Router
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(cfg, sessions),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️  Shutdown: %v", err)
		}
	}()

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Server failed to start:", err)
	}
	log.Println("👋 Server stopped.")
}

// newGmailNotifier returns nil when Gmail is not authorized yet, so leads are
// still stored without a notification.
func newGmailNotifier(ctx context.Context, cfg config.Config) services.Notifier {
	log.Println("Initializing Gmail Client...")
	httpClient, err := auth.GetGmailClient(ctx, cfg.GmailCredentialsFile, cfg.GmailTokenFile)
	if err != nil {
		if errors.Is(err, auth.ErrNoToken) {
			log.Println("⚠️  Gmail token missing, run cmd/gmail-auth once. Lead notifications disabled.")
		} else {
			log.Printf("⚠️  Gmail client unavailable: %v", err)
		}
		return nil
	}

	gmailService, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		log.Printf("⚠️  Failed to create Gmail Service: %v", err)
		return nil
	}
	log.Println("✅ Gmail Service connected successfully.")
	return services.NewEmailService(gmailService, cfg.LeadNotifyTo)
}
