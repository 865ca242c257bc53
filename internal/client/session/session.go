// Package session holds the authenticated user's token and username.
//
// A Store starts pending. Hydrate reads the persisted session once and marks
// the store ready; consumers that must not act on a half-loaded session
// (the route guard) wait on Ready first.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/packmate/internal/logging"
)

var ErrNoSession = errors.New("not logged in")

type Status int

const (
	Pending Status = iota
	Ready
)

func (s Status) String() string {
	if s == Ready {
		return "ready"
	}
	return "pending"
}

// Session is a point-in-time copy of the store's state.
type Session struct {
	Token    string
	Username string
	Status   Status
}

// Authenticator is the part of the remote API the store logs in through.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
}

type Store struct {
	auth    Authenticator
	persist Persister
	log     logging.Logger

	mu    sync.RWMutex
	state Session

	ready     chan struct{}
	readyOnce sync.Once
}

func NewStore(auth Authenticator, persist Persister, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		auth:    auth,
		persist: persist,
		log:     log,
		ready:   make(chan struct{}),
	}
}

// Hydrate loads the persisted session and marks the store ready. A read
// failure is returned, but the store still becomes ready with an empty
// session.
func (s *Store) Hydrate(ctx context.Context) error {
	defer s.markReady()

	token, username, err := s.persist.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "session hydration failed", "error", err)
		return fmt.Errorf("hydrate session: %w", err)
	}

	s.mu.Lock()
	s.state.Token = token
	s.state.Username = username
	s.mu.Unlock()

	s.log.Debug(ctx, "session hydrated", "authenticated", token != "")
	return nil
}

func (s *Store) markReady() {
	s.readyOnce.Do(func() {
		s.mu.Lock()
		s.state.Status = Ready
		s.mu.Unlock()
		close(s.ready)
	})
}

// Ready is closed once hydration has finished.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Login authenticates against the API, persists the session and only then
// updates the in-memory state. On any failure the state is left untouched.
func (s *Store) Login(ctx context.Context, username, password string) error {
	token, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.persist.Save(ctx, token, username); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.state.Token = token
	s.state.Username = username
	s.mu.Unlock()

	s.log.Info(ctx, "logged in", "username", username)
	return nil
}

// Register creates the account and logs straight into it.
func (s *Store) Register(ctx context.Context, username, password string) error {
	if err := s.auth.Register(ctx, username, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return s.Login(ctx, username, password)
}

// Logout forgets the session. The in-memory state is always cleared; an
// error only reports that the persisted copy could not be removed.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.state.Token = ""
	s.state.Username = ""
	s.mu.Unlock()

	if err := s.persist.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted session", "error", err)
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Username
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Claims are the display fields carried by the bearer token.
type Claims struct {
	Username  string
	ExpiresAt time.Time
}

// Claims decodes the current token without verifying its signature. The
// result is for display only.
func (s *Store) Claims() (Claims, error) {
	token := s.Token()
	if token == "" {
		return Claims{}, ErrNoSession
	}

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, fmt.Errorf("decode token: %w", err)
	}

	var c Claims
	if u, ok := mc["username"].(string); ok {
		c.Username = u
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
