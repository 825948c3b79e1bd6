// Package google holds the authorized session and the API clients built on it.
package google

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrNoSession means no cached token exists and an interactive login is required.
var ErrNoSession = errors.New("no authorized session, run login first")

// scopes covers draft creation and read-only spreadsheet access.
var scopes = []string{gmail.GmailComposeScope, sheets.SpreadsheetsReadonlyScope}

// Session is an authorized Google credential, acquired once per run and
// reused for every subsequent API call. Token refresh is handled
// transparently by the underlying token source.
type Session struct {
	source oauth2.TokenSource
}

// ClientOption exposes the session to the Google API service constructors.
func (s *Session) ClientOption() option.ClientOption {
	return option.WithTokenSource(s.source)
}

// Restore rebuilds a session from the cached token file. It returns
// ErrNoSession when no token has been cached yet.
func Restore(ctx context.Context, credentialsFile, tokenFile string) (*Session, error) {
	cfg, err := clientConfig(credentialsFile)
	if err != nil {
		return nil, err
	}

	tok, err := loadToken(tokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("google: failed to load cached token: %w", err)
	}

	return &Session{source: cfg.TokenSource(ctx, tok)}, nil
}

// Login runs the installed-app authorization flow: it prints the consent URL,
// reads the authorization code from in, exchanges it, and caches the
// resulting token for later runs.
func Login(ctx context.Context, credentialsFile, tokenFile string, in io.Reader, out io.Writer) (*Session, error) {
	cfg, err := clientConfig(credentialsFile)
	if err != nil {
		return nil, err
	}

	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Open the following link in your browser, then paste the authorization code:\n%v\n\ncode: ", authURL)

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && code == "" {
		return nil, fmt.Errorf("google: failed to read authorization code: %w", err)
	}

	tok, err := cfg.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("google: failed to exchange authorization code: %w", err)
	}

	if err := saveToken(tokenFile, tok); err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "session authorized and cached")

	return &Session{source: cfg.TokenSource(ctx, tok)}, nil
}

func clientConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("google: failed to read client secret file %s: %w", credentialsFile, err)
	}

	cfg, err := oauthgoogle.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("google: failed to parse client secret file: %w", err)
	}
	return cfg, nil
}

func loadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("google: failed to cache token: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("google: failed to encode token: %w", err)
	}
	return nil
}
