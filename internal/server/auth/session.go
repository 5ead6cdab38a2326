// Package auth implements operator authentication for the admin gateway:
// credential verification and the single-session-per-user token table.
package auth

import (
	"sync"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/cryptox"
	"github.com/dmitrijs2005/admingate/internal/metrics"
	"github.com/dmitrijs2005/admingate/internal/server/credentials"
	"github.com/google/uuid"
)

// SessionManager owns the active-session state. It enforces at most one
// live session per username: a successful login supersedes and revokes any
// prior token for the same user in the same critical section, so the old
// token stops authenticating before the new login call returns.
type SessionManager struct {
	creds  *credentials.Store
	params cryptox.Params

	mu      sync.Mutex
	byToken map[string]string // token -> username
	byUser  map[string]string // username -> token
}

// NewSessionManager builds a SessionManager over the given credential store.
func NewSessionManager(creds *credentials.Store) *SessionManager {
	return NewSessionManagerWithParams(creds, cryptox.DefaultParams())
}

// NewSessionManagerWithParams allows overriding the Argon2id cost
// parameters used for verification (tests use cheaper ones).
func NewSessionManagerWithParams(creds *credentials.Store, params cryptox.Params) *SessionManager {
	return &SessionManager{
		creds:   creds,
		params:  params,
		byToken: make(map[string]string),
		byUser:  make(map[string]string),
	}
}

// Login verifies the username/password pair and returns a fresh session
// token. Unknown usernames and wrong passwords both yield
// common.ErrInvalidCredentials, never distinguishing which.
func (m *SessionManager) Login(username, password string) (string, error) {
	hash, ok := m.creds.Get(username)
	if !ok || !cryptox.VerifyPasswordWithParams(password, hash, m.params) {
		return "", common.ErrInvalidCredentials
	}

	token := uuid.NewString()

	// Both maps are mutated as one atomic step: concurrent Authenticate
	// calls never observe the old token alive alongside the new one.
	m.mu.Lock()
	if old, ok := m.byUser[username]; ok {
		delete(m.byToken, old)
		metrics.SessionsRevokedTotal.Inc()
	}
	m.byUser[username] = token
	m.byToken[token] = username
	m.mu.Unlock()

	return token, nil
}

// Authenticate resolves a token to its username. Unknown or superseded
// tokens yield common.ErrUnauthenticated. No side effects.
func (m *SessionManager) Authenticate(token string) (string, error) {
	m.mu.Lock()
	username, ok := m.byToken[token]
	m.mu.Unlock()
	if !ok {
		return "", common.ErrUnauthenticated
	}
	return username, nil
}

// ActiveSessions returns the number of live sessions.
func (m *SessionManager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byToken)
}
