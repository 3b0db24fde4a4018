package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Local dev defaults, overridden through the environment in every real deploy.
const (
	defaultDSN      = "host=localhost user=postgres password=password dbname=breakout port=5432 sslmode=disable"
	defaultVideoURL = "https://www.youtube.com/watch?v=xvFZjo5PgG0"
	defaultVoiceAPI = "https://api.elevenlabs.io"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver      string
	DatabaseURL   string
	DBAutoMigrate bool

	// SiteOrigin is the public origin used for canonical and og:url tags.
	SiteOrigin         string
	CORSAllowedOrigins []string
	VideoURL           string
	SessionTTL         time.Duration

	ElevenLabsAPIKey   string
	ElevenLabsAgentID  string
	ElevenLabsBaseURL  string
	VoiceRatePerMinute int

	// VoiceConnectTimeout bounds how long a session waits for the browser to
	// report it connected.
	VoiceConnectTimeout time.Duration

	GmailCredentialsFile string
	GmailTokenFile       string
	LeadNotifyTo         string
}

// Load reads an optional .env file into the process environment and builds
// the Config from it. files default to ".env".
func Load(files ...string) (Config, bool, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	loaded := godotenv.Load(files...) == nil

	cfg, err := FromEnv()
	return cfg, loaded, err
}

// FromEnv builds the Config from environment variables only.
func FromEnv() (Config, error) {
	var errs []error

	cfg := Config{
		Port:                 getenv("PORT", "8080"),
		GinMode:              getenv("GIN_MODE", "debug"),
		DBDriver:             strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		DatabaseURL:          getenv("DATABASE_URL", defaultDSN),
		SiteOrigin:           strings.TrimRight(getenv("SITE_ORIGIN", "http://localhost:8080"), "/"),
		CORSAllowedOrigins:   splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		VideoURL:             getenv("VIDEO_URL", defaultVideoURL),
		ElevenLabsAPIKey:     os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsAgentID:    os.Getenv("ELEVENLABS_AGENT_ID"),
		ElevenLabsBaseURL:    strings.TrimRight(getenv("ELEVENLABS_BASE_URL", defaultVoiceAPI), "/"),
		GmailCredentialsFile: getenv("GMAIL_CREDENTIALS_FILE", "credential.json"),
		GmailTokenFile:       getenv("GMAIL_TOKEN_FILE", "token.json"),
		LeadNotifyTo:         os.Getenv("LEAD_NOTIFY_TO"),
	}

	var err error
	if cfg.DBAutoMigrate, err = strconv.ParseBool(getenv("DB_AUTO_MIGRATE", "true")); err != nil {
		errs = append(errs, fmt.Errorf("DB_AUTO_MIGRATE: %w", err))
	}
	if cfg.SessionTTL, err = time.ParseDuration(getenv("SESSION_TTL", "2h")); err != nil {
		errs = append(errs, fmt.Errorf("SESSION_TTL: %w", err))
	}
	if cfg.VoiceRatePerMinute, err = strconv.Atoi(getenv("VOICE_RATE_PER_MINUTE", "30")); err != nil {
		errs = append(errs, fmt.Errorf("VOICE_RATE_PER_MINUTE: %w", err))
	}

	if cfg.VoiceConnectTimeout, err = time.ParseDuration(getenv("VOICE_CONNECT_TIMEOUT", "30s")); err != nil {
		errs = append(errs, fmt.Errorf("VOICE_CONNECT_TIMEOUT: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.DBDriver != DriverPostgres && c.DBDriver != DriverMySQL {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMySQL, c.DBDriver))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is empty"))
	}
	for name, raw := range map[string]string{"SITE_ORIGIN": c.SiteOrigin, "VIDEO_URL": c.VideoURL, "ELEVENLABS_BASE_URL": c.ElevenLabsBaseURL} {
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s must be an absolute URL, got %q", name, raw))
		}
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.VoiceRatePerMinute <= 0 {
		errs = append(errs, errors.New("VOICE_RATE_PER_MINUTE must be positive"))
	}
	if c.VoiceConnectTimeout <= 0 {
		errs = append(errs, errors.New("VOICE_CONNECT_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// VoiceEnabled reports whether the voice step can mint sessions.
func (c Config) VoiceEnabled() bool {
	return c.ElevenLabsAPIKey != "" && c.ElevenLabsAgentID != ""
}

// NotifyEnabled reports whether new leads are mailed to the team.
func (c Config) NotifyEnabled() bool {
	return c.LeadNotifyTo != ""
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
