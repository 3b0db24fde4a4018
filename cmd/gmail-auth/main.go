// Command gmail-auth authorizes the account that sends lead notifications and
// stores its token for the api server.
package main

import (
	"context"
	"log"
	"os"

	"github.com/justsurfingit/breakout-talents/internal/auth"
	"github.com/justsurfingit/breakout-talents/internal/config"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	oauthConfig, err := auth.GmailConfig(cfg.GmailCredentialsFile)
	if err != nil {
		log.Fatal(err)
	}

	tok, err := auth.TokenFromWeb(context.Background(), oauthConfig, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if err := auth.SaveToken(cfg.GmailTokenFile, tok); err != nil {
		log.Fatal(err)
	}
	log.Printf("✅ Token saved to %s", cfg.GmailTokenFile)
}
