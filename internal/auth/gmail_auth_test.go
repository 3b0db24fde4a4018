package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const testCredentials = `{"installed":{"client_id":"id.apps.googleusercontent.com","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`

func writeCredentials(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credential.json")
	require.NoError(t, os.WriteFile(path, []byte(testCredentials), 0600))
	return path
}

func TestGetGmailClient_MissingToken(t *testing.T) {
	creds := writeCredentials(t)

	_, err := GetGmailClient(context.Background(), creds, filepath.Join(t.TempDir(), "token.json"))
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestGetGmailClient_MissingCredentials(t *testing.T) {
	_, err := GetGmailClient(context.Background(), filepath.Join(t.TempDir(), "nope.json"), "token.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoToken)
}

func TestSaveTokenRoundTrip(t *testing.T) {
	creds := writeCredentials(t)
	tokPath := filepath.Join(t.TempDir(), "token.json")

	tok := &oauth2.Token{AccessToken: "a", RefreshToken: "r", Expiry: time.Now().Add(time.Hour)}
	require.NoError(t, SaveToken(tokPath, tok))

	info, err := os.Stat(tokPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	client, err := GetGmailClient(context.Background(), creds, tokPath)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestGmailConfig_SendScope(t *testing.T) {
	cfg, err := GmailConfig(writeCredentials(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.googleapis.com/auth/gmail.send"}, cfg.Scopes)
}
