package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	keyring.MockInit()

	if _, err := loadRefreshToken(); !errors.Is(err, ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken from empty store, got %v", err)
	}
	if err := saveRefreshToken("secret-token"); err != nil {
		t.Fatalf("saveRefreshToken: %v", err)
	}
	got, err := loadRefreshToken()
	if err != nil {
		t.Fatalf("loadRefreshToken: %v", err)
	}
	if got != "secret-token" {
		t.Fatalf("loadRefreshToken = %q, want %q", got, "secret-token")
	}
	if err := deleteRefreshToken(); err != nil {
		t.Fatalf("deleteRefreshToken: %v", err)
	}
	if _, err := loadRefreshToken(); !errors.Is(err, ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken after delete, got %v", err)
	}
}

func TestRefreshWithoutStoredToken(t *testing.T) {
	keyring.MockInit()

	_, err := Refresh(context.Background(), "client-id")
	if !errors.Is(err, ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken, got %v", err)
	}
}

func TestOAuthConfig(t *testing.T) {
	cfg := oauthConfig("client-id")
	if cfg.ClientID != "client-id" {
		t.Fatalf("ClientID = %q", cfg.ClientID)
	}
	if !strings.Contains(cfg.Endpoint.AuthURL, "login.microsoftonline.com/common") {
		t.Fatalf("unexpected auth endpoint %q", cfg.Endpoint.AuthURL)
	}
	if cfg.RedirectURL != "http://localhost:8080" {
		t.Fatalf("RedirectURL = %q", cfg.RedirectURL)
	}
	want := map[string]bool{"offline_access": false, "User.Read": false, "Calendars.Read": false}
	for _, scope := range cfg.Scopes {
		if _, ok := want[scope]; !ok {
			t.Fatalf("unexpected scope %q", scope)
		}
		want[scope] = true
	}
	for scope, seen := range want {
		if !seen {
			t.Fatalf("missing scope %q", scope)
		}
	}
}
