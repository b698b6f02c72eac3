// Package auth obtains Microsoft access tokens, persisting the refresh
// token in the system key store between runs.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pkg/browser"
	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	keyringService = "365cal-tui"
	keyringAccount = "microsoft_refresh_token"

	redirectURL  = "http://localhost:8080"
	listenAddr   = "127.0.0.1:8080"
	loginTimeout = 5 * time.Minute
)

var scopes = []string{"offline_access", "User.Read", "Calendars.Read"}

// ErrNoRefreshToken reports that the key store holds no usable token.
var ErrNoRefreshToken = errors.New("no refresh token stored")

func oauthConfig(clientID string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    clientID,
		Endpoint:    endpoints.AzureAD("common"),
		RedirectURL: redirectURL,
		Scopes:      scopes,
	}
}

// Authenticate returns an access token, first trying the stored
// refresh token and falling back to a browser sign-in.
func Authenticate(ctx context.Context, clientID string) (string, error) {
	if token, err := Refresh(ctx, clientID); err == nil {
		return token, nil
	} else if !errors.Is(err, ErrNoRefreshToken) {
		log.Printf("auth: stored token rejected, starting full login: %v", err)
		_ = deleteRefreshToken()
	}
	return interactiveLogin(ctx, clientID)
}

// Refresh exchanges the stored refresh token for a fresh access token.
// Used at startup and whenever the controller sees an expired token
// mid-session. A rotated refresh token is written back to the store.
func Refresh(ctx context.Context, clientID string) (string, error) {
	stored, err := loadRefreshToken()
	if err != nil {
		return "", err
	}
	cfg := oauthConfig(clientID)
	tok, err := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: stored}).Token()
	if err != nil {
		return "", fmt.Errorf("refresh token exchange: %w", err)
	}
	if tok.RefreshToken != "" && tok.RefreshToken != stored {
		if err := saveRefreshToken(tok.RefreshToken); err != nil {
			log.Printf("auth: could not persist rotated refresh token: %v", err)
		}
	}
	return tok.AccessToken, nil
}

func interactiveLogin(ctx context.Context, clientID string) (string, error) {
	cfg := oauthConfig(clientID)
	verifier := oauth2.GenerateVerifier()
	state, err := randomState()
	if err != nil {
		return "", err
	}

	authURL := cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	fmt.Println("To continue, please open your browser and log in...")
	if err := browser.OpenURL(authURL); err != nil {
		fmt.Printf("Open this URL to log in: %s\n", authURL)
	}

	code, err := waitForCode(ctx, state)
	if err != nil {
		return "", err
	}

	tok, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("authorization code exchange: %w", err)
	}
	if tok.RefreshToken != "" {
		if err := saveRefreshToken(tok.RefreshToken); err != nil {
			log.Printf("auth: could not persist refresh token: %v", err)
		}
	}
	return tok.AccessToken, nil
}

// waitForCode runs a one-shot listener on the redirect port until the
// authorization server delivers the code.
func waitForCode(ctx context.Context, state string) (string, error) {
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", listenAddr, err)
	}

	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if query.Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				results <- result{err: errors.New("authorization state mismatch")}
				return
			}
			code := query.Get("code")
			if code == "" {
				http.Error(w, "missing code", http.StatusBadRequest)
				results <- result{err: errors.New("authorization response had no code")}
				return
			}
			fmt.Fprint(w, "Login successful! You can now close this tab.")
			results <- result{code: code}
		}),
	}
	go func() { _ = server.Serve(listener) }()
	defer func() { _ = server.Close() }()

	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for login: %w", ctx.Err())
	case res := <-results:
		return res.code, res.err
	}
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func loadRefreshToken() (string, error) {
	secret, err := keyring.Get(keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoRefreshToken
	}
	if err != nil {
		return "", fmt.Errorf("read key store: %w", err)
	}
	return secret, nil
}

func saveRefreshToken(secret string) error {
	return keyring.Set(keyringService, keyringAccount, secret)
}

func deleteRefreshToken() error {
	return keyring.Delete(keyringService, keyringAccount)
}
