package gcal

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "google-tokens.json")
	store := NewFileTokenStore(path)

	// No file yet: Load reports "not connected", not an error.
	tok, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != nil {
		t.Fatal("expected nil token before first save")
	}

	saved := &oauth2.Token{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).UTC(),
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded == nil || loaded.AccessToken != "access-1" || loaded.RefreshToken != "refresh-1" {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestFileTokenStoreKeepsRefreshToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFileTokenStore(path)

	if err := store.Save(&oauth2.Token{AccessToken: "access-1", RefreshToken: "refresh-1"}); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}
	// Google's refresh responses usually omit the refresh token.
	if err := store.Save(&oauth2.Token{AccessToken: "access-2"}); err != nil {
		t.Fatalf("refresh save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.AccessToken != "access-2" {
		t.Errorf("access token not updated: %q", loaded.AccessToken)
	}
	if loaded.RefreshToken != "refresh-1" {
		t.Errorf("stored refresh token was lost: %q", loaded.RefreshToken)
	}
}

func TestMemoryTokenStore(t *testing.T) {
	store := &MemoryTokenStore{}

	tok, err := store.Load()
	if err != nil || tok != nil {
		t.Fatalf("expected empty store, got %+v, %v", tok, err)
	}

	if err := store.Save(&oauth2.Token{AccessToken: "access-1"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	tok, err = store.Load()
	if err != nil || tok == nil || tok.AccessToken != "access-1" {
		t.Fatalf("round trip mismatch: %+v, %v", tok, err)
	}
}

func TestConnectorAuthorized(t *testing.T) {
	store := &MemoryTokenStore{}
	conn := NewConnector("client-id", "client-secret", "http://localhost:4000/api/google/oauth2callback", store)

	if conn.Authorized() {
		t.Fatal("connector should not be authorized before a token is stored")
	}
	if err := store.Save(&oauth2.Token{AccessToken: "access-1", RefreshToken: "refresh-1"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !conn.Authorized() {
		t.Fatal("connector should be authorized once a token is stored")
	}
}

func TestConnectorAuthURL(t *testing.T) {
	conn := NewConnector("client-id", "client-secret", "http://localhost:4000/api/google/oauth2callback", &MemoryTokenStore{})
	url := conn.AuthURL()
	for _, fragment := range []string{"access_type=offline", "prompt=consent", "client-id"} {
		if !strings.Contains(url, fragment) {
			t.Errorf("auth URL missing %q: %s", fragment, url)
		}
	}
}
