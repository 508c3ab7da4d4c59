package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
)

// Session is the authenticated-user state carried between requests.
// Invariant: IsAuthenticated is true exactly when AuthToken is non-empty.
type Session struct {
	UserID          string `json:"user_id"`
	Email           string `json:"email"`
	DisplayName     string `json:"display_name"`
	Role            string `json:"role"`
	AuthToken       string `json:"-"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

// snapshot is the wire format persisted by Storage.
type snapshot struct {
	Token           string `json:"token"`
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"is_authenticated"`
	RememberMe      bool   `json:"remember_me"`
}

// SessionStore owns the session and its persistence. All transitions go
// through it; the HTTP layer only reads the token. The remember choice made
// at login sticks to the session: later refreshes persist only when the user
// opted in.
type SessionStore struct {
	mu       sync.Mutex
	session  Session
	remember bool
	storage  Storage
	client   *Client
}

// NewSessionStore creates a store around storage. The API client is attached
// by New; stores built directly only support Restore and Logout.
func NewSessionStore(storage Storage) *SessionStore {
	return &SessionStore{storage: storage}
}

// Current returns a copy of the session state.
func (s *SessionStore) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Token returns the current auth token, empty when unauthenticated.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AuthToken
}

// Login exchanges credentials for a token. On success the session is replaced
// and persisted (when remember is set); on failure the previous state is left
// untouched and the server's detail message is returned as the error.
func (s *SessionStore) Login(ctx context.Context, email, password string, remember bool) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
		User        User   `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, nil, body, &resp); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.session = sessionFromUser(resp.User, resp.AccessToken)
	s.remember = remember
	s.mu.Unlock()

	return resp.User.Role, s.persist(resp.AccessToken, resp.User, remember)
}

// Register creates an account and signs the session in, mirroring Login.
func (s *SessionStore) Register(ctx context.Context, input RegisterInput, remember bool) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
		User        User   `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/auth/register", nil, nil, input, &resp); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.session = sessionFromUser(resp.User, resp.AccessToken)
	s.remember = remember
	s.mu.Unlock()

	return resp.User.Role, s.persist(resp.AccessToken, resp.User, remember)
}

// Refresh swaps the current token for a fresh one. Requires an authenticated
// session. The new token is persisted only when the session was opened with
// remember; an in-memory session stays in memory.
func (s *SessionStore) Refresh(ctx context.Context) error {
	var resp struct {
		AccessToken string `json:"access_token"`
		User        User   `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/auth/refresh-token", nil, nil, nil, &resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = sessionFromUser(resp.User, resp.AccessToken)
	remember := s.remember
	s.mu.Unlock()

	return s.persist(resp.AccessToken, resp.User, remember)
}

// Logout clears the session and the persisted snapshot. Idempotent.
func (s *SessionStore) Logout() error {
	s.mu.Lock()
	s.session = Session{}
	s.remember = false
	s.mu.Unlock()
	return s.storage.Clear()
}

// Restore loads the persisted snapshot. A missing or corrupt snapshot yields
// an empty session, never an error.
func (s *SessionStore) Restore() Session {
	data, err := s.storage.Load()
	if err != nil {
		return s.Current()
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.Token == "" || snap.User == nil {
		return s.Current()
	}

	s.mu.Lock()
	s.session = sessionFromUser(*snap.User, snap.Token)
	s.remember = snap.RememberMe
	out := s.session
	s.mu.Unlock()
	return out
}

func (s *SessionStore) persist(token string, user User, remember bool) error {
	if !remember {
		return s.storage.Clear()
	}
	data, err := json.Marshal(snapshot{
		Token:           token,
		User:            &user,
		IsAuthenticated: true,
		RememberMe:      true,
	})
	if err != nil {
		return err
	}
	return s.storage.Save(data)
}

func sessionFromUser(u User, token string) Session {
	return Session{
		UserID:          u.ID,
		Email:           u.Email,
		DisplayName:     u.Name(),
		Role:            u.Role,
		AuthToken:       token,
		IsAuthenticated: token != "",
	}
}
