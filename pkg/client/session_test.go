package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *MemoryStorage) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	storage := NewMemoryStorage()
	c, err := New(Config{BaseURL: srv.URL, Storage: storage})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, storage
}

func loginHandler(t *testing.T, token string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login request: %v", err)
		}
		if req.Password != "correct-horse" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": token,
			"token_type":   "bearer",
			"user": map[string]any{
				"id":           "user_1",
				"email":        req.Email,
				"display_name": "Alice",
				"role":         "job_seeker",
			},
		})
	})
	mux.HandleFunc("/api/v1/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": token + "-refreshed",
			"token_type":   "bearer",
			"user": map[string]any{
				"id":           "user_1",
				"email":        "alice@example.com",
				"display_name": "Alice",
				"role":         "job_seeker",
			},
		})
	})
	return mux
}

func TestSessionStore_Login_Success(t *testing.T) {
	c, storage := newTestClient(t, loginHandler(t, "tok-123"))

	role, err := c.Session.Login(context.Background(), "alice@example.com", "correct-horse", true)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if role != "job_seeker" {
		t.Fatalf("expected role job_seeker, got %q", role)
	}

	sess := c.Session.Current()
	if !sess.IsAuthenticated || sess.AuthToken != "tok-123" {
		t.Fatalf("session not authenticated: %+v", sess)
	}
	if sess.DisplayName != "Alice" || sess.UserID != "user_1" {
		t.Fatalf("unexpected session user: %+v", sess)
	}

	data, err := storage.Load()
	if err != nil {
		t.Fatalf("snapshot not persisted: %v", err)
	}
	var snap map[string]any
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("invalid snapshot: %v", err)
	}
	if snap["token"] != "tok-123" || snap["is_authenticated"] != true {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestSessionStore_Login_WrongPassword(t *testing.T) {
	c, storage := newTestClient(t, loginHandler(t, "tok-123"))

	_, err := c.Session.Login(context.Background(), "alice@example.com", "wrong", true)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "Incorrect email or password" {
		t.Fatalf("expected server detail message, got %q", err.Error())
	}

	if sess := c.Session.Current(); sess.IsAuthenticated || sess.AuthToken != "" {
		t.Fatalf("session should stay unauthenticated: %+v", sess)
	}
	if _, err := storage.Load(); err != ErrNoSnapshot {
		t.Fatalf("nothing should be persisted, got %v", err)
	}
}

func TestSessionStore_Login_NoRemember(t *testing.T) {
	c, storage := newTestClient(t, loginHandler(t, "tok-123"))

	if _, err := c.Session.Login(context.Background(), "alice@example.com", "correct-horse", false); err != nil {
		t.Fatalf("login: %v", err)
	}

	if !c.Session.Current().IsAuthenticated {
		t.Fatalf("in-process session should be live")
	}
	if _, err := storage.Load(); err != ErrNoSnapshot {
		t.Fatalf("snapshot should not be persisted, got %v", err)
	}
}

func TestSessionStore_Refresh_NoRememberStaysInMemory(t *testing.T) {
	c, storage := newTestClient(t, loginHandler(t, "tok-123"))

	if _, err := c.Session.Login(context.Background(), "alice@example.com", "correct-horse", false); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := c.Session.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if got := c.Session.Token(); got != "tok-123-refreshed" {
		t.Fatalf("expected refreshed token in memory, got %q", got)
	}
	if _, err := storage.Load(); err != ErrNoSnapshot {
		t.Fatalf("refresh must not persist a session opened without remember, got %v", err)
	}
}

func TestSessionStore_Refresh_PersistsWhenRemembered(t *testing.T) {
	c, storage := newTestClient(t, loginHandler(t, "tok-123"))

	if _, err := c.Session.Login(context.Background(), "alice@example.com", "correct-horse", true); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := c.Session.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	data, err := storage.Load()
	if err != nil {
		t.Fatalf("snapshot not persisted: %v", err)
	}
	var snap map[string]any
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("invalid snapshot: %v", err)
	}
	if snap["token"] != "tok-123-refreshed" {
		t.Fatalf("snapshot should carry the refreshed token, got %v", snap["token"])
	}
}

func TestSessionStore_RestoreRoundTrip(t *testing.T) {
	c, storage := newTestClient(t, loginHandler(t, "tok-123"))

	if _, err := c.Session.Login(context.Background(), "alice@example.com", "correct-horse", true); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Fresh store over the same storage, as a new process would build.
	restored := NewSessionStore(storage).Restore()
	if !restored.IsAuthenticated || restored.AuthToken != "tok-123" {
		t.Fatalf("restore failed: %+v", restored)
	}
	if restored.Role != "job_seeker" || restored.DisplayName != "Alice" {
		t.Fatalf("restored user incomplete: %+v", restored)
	}
}

func TestSessionStore_Restore_CorruptSnapshot(t *testing.T) {
	storage := NewMemoryStorage()
	if err := storage.Save([]byte("{not json")); err != nil {
		t.Fatalf("save: %v", err)
	}

	sess := NewSessionStore(storage).Restore()
	if sess.IsAuthenticated || sess.AuthToken != "" {
		t.Fatalf("corrupt snapshot must yield empty session: %+v", sess)
	}
}

func TestSessionStore_Restore_MissingSnapshot(t *testing.T) {
	sess := NewSessionStore(NewMemoryStorage()).Restore()
	if sess.IsAuthenticated {
		t.Fatalf("missing snapshot must yield empty session: %+v", sess)
	}
}

func TestSessionStore_Logout_Idempotent(t *testing.T) {
	c, storage := newTestClient(t, loginHandler(t, "tok-123"))

	if _, err := c.Session.Login(context.Background(), "alice@example.com", "correct-horse", true); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := c.Session.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := c.Session.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}

	if sess := c.Session.Current(); sess.IsAuthenticated || sess.AuthToken != "" {
		t.Fatalf("session not cleared: %+v", sess)
	}
	if _, err := storage.Load(); err != ErrNoSnapshot {
		t.Fatalf("snapshot not cleared, got %v", err)
	}
}
