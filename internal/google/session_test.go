package google

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

const testClientSecret = `{
  "installed": {
    "client_id": "test-client-id",
    "project_id": "test-project",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "client_secret": "test-secret",
    "redirect_uris": ["http://localhost"]
  }
}`

func writeCredentials(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(testClientSecret), 0600))
	return path
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	tok := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).UTC(),
	}

	require.NoError(t, saveToken(path, tok))

	got, err := loadToken(path)
	require.NoError(t, err)
	assert.Equal(t, tok.AccessToken, got.AccessToken)
	assert.Equal(t, tok.RefreshToken, got.RefreshToken)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestRestoreWithoutCachedToken(t *testing.T) {
	creds := writeCredentials(t)
	missing := filepath.Join(t.TempDir(), "token.json")

	_, err := Restore(context.Background(), creds, missing)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestRestoreWithCachedToken(t *testing.T) {
	creds := writeCredentials(t)
	tokenPath := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, saveToken(tokenPath, &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	}))

	sess, err := Restore(context.Background(), creds, tokenPath)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotNil(t, sess.ClientOption())
}

func TestRestoreMissingCredentialsFile(t *testing.T) {
	_, err := Restore(context.Background(), filepath.Join(t.TempDir(), "nope.json"), "token.json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}
