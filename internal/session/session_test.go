package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "user",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestExpiresWithin(t *testing.T) {
	fresh := signedToken(t, time.Now().Add(time.Hour))
	if expiresWithin(fresh, refreshLeeway) {
		t.Fatal("fresh token reported as expiring")
	}

	stale := signedToken(t, time.Now().Add(10*time.Second))
	if !expiresWithin(stale, refreshLeeway) {
		t.Fatal("stale token not reported as expiring")
	}

	if !expiresWithin("garbage", refreshLeeway) {
		t.Fatal("undecodable token must count as expired")
	}
}

func TestToken_RefreshesExpiringSession(t *testing.T) {
	newAccess := signedToken(t, time.Now().Add(time.Hour))

	var gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		_ = json.NewEncoder(w).Encode(Session{
			AccessToken:  newAccess,
			RefreshToken: "rotated-refresh",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key", filepath.Join(t.TempDir(), "session.json"))
	if err := client.Set(Session{
		AccessToken:  signedToken(t, time.Now().Add(5*time.Second)),
		RefreshToken: "old-refresh",
	}); err != nil {
		t.Fatal(err)
	}

	token, err := client.Token(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if token != newAccess {
		t.Fatal("expected refreshed access token")
	}
	if gotAPIKey != "anon-key" {
		t.Fatalf("expected apikey header, got %q", gotAPIKey)
	}
}

func TestToken_KeepsValidSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("refresh endpoint must not be called for a valid session")
	}))
	defer server.Close()

	access := signedToken(t, time.Now().Add(time.Hour))

	client := NewClient(server.URL, "anon-key", "")
	if err := client.Set(Session{AccessToken: access, RefreshToken: "r"}); err != nil {
		t.Fatal(err)
	}

	token, err := client.Token(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if token != access {
		t.Fatal("expected current access token returned unchanged")
	}
}

func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewClient("http://store", "key", path)
	if err := first.Set(Session{AccessToken: "a", RefreshToken: "b"}); err != nil {
		t.Fatal(err)
	}

	second := NewClient("http://store", "key", path)
	if err := second.Load(); err != nil {
		t.Fatal(err)
	}

	second.mu.Lock()
	restored := second.current
	second.mu.Unlock()

	if restored.AccessToken != "a" || restored.RefreshToken != "b" {
		t.Fatalf("unexpected restored session: %+v", restored)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	client := NewClient("http://store", "key", filepath.Join(t.TempDir(), "absent.json"))
	if err := client.Load(); err != nil {
		t.Fatalf("missing session file must not error, got %v", err)
	}
}
