// Package auth verifies configured users and tracks their sessions.
//
// Sessions are held in memory with a fixed TTL. Tokens are opaque uuids;
// there is no refresh, a client logs in again when its session expires.
package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired or unknown")
)

// DefaultSessionTTL applies when the config does not set one
const DefaultSessionTTL = 12 * time.Hour

type session struct {
	username  string
	expiresAt time.Time
}

// Manager authenticates users against bcrypt hashes and issues sessions
type Manager struct {
	users map[string]string // username -> bcrypt hash
	ttl   time.Duration

	mu       sync.Mutex
	sessions map[string]session
	now      func() time.Time
}

// New creates a manager for the given username -> hash map
func New(users map[string]string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		users:    users,
		ttl:      ttl,
		sessions: make(map[string]session),
		now:      time.Now,
	}
}

// Enabled reports whether any users are configured. With no users the
// server runs open and session checks are skipped.
func (m *Manager) Enabled() bool {
	return len(m.users) > 0
}

// Login verifies the password and issues a session token
func (m *Manager) Login(username, password string) (string, error) {
	hash, ok := m.users[username]
	if !ok {
		// Burn a comparison anyway so unknown users cost the same as
		// known users with a wrong password.
		bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000"), []byte(password))
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = session{username: username, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return token, nil
}

// Validate checks a token and returns the session's username
func (m *Manager) Validate(token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return "", ErrSessionExpired
	}
	if m.now().After(s.expiresAt) {
		delete(m.sessions, token)
		return "", ErrSessionExpired
	}
	return s.username, nil
}

// Logout drops a session. Unknown tokens are a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Sweep drops expired sessions. Called periodically by the server.
func (m *Manager) Sweep() {
	now := m.now()
	m.mu.Lock()
	for token, s := range m.sessions {
		if now.After(s.expiresAt) {
			delete(m.sessions, token)
		}
	}
	m.mu.Unlock()
}

// HashPassword produces a bcrypt hash for storing in the config file
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
