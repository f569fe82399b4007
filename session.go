package sahha

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Fallback messages shown when the server gives no usable detail. Free to
// localize; nothing matches on them.
const (
	msgLoginFailed        = "login failed"
	msgRegistrationFailed = "registration failed"
	msgConnectionError    = "connection error"
	msgInvalidResponse    = "invalid server response"
	msgPersistFailed      = "could not save session"
)

// SessionState is the observable authentication state.
//
// Invariant: Authenticated is never true while the credential store lacks an
// access token, and User is set before Authenticated flips true within a
// single state change. Observers never see a torn intermediate.
type SessionState struct {
	Authenticated bool
	User          *User
	Loading       bool
	LastError     string
}

// RegisterParams are the fields collected by the registration form.
type RegisterParams struct {
	Email     string
	Password  string
	FullName  string
	Phone     string
	Region    string
	Age       int
	BloodType BloodType
}

// SessionManager owns the authentication lifecycle: it orchestrates login,
// registration, and logout against the API, persists the results through the
// credential store and user cache, and publishes state to subscribers.
//
// All state mutation is serialized on one mutex (single-writer), and every
// public operation is non-throwing: failures surface as a boolean result plus
// the LastError field.
type SessionManager struct {
	client *Client
	creds  *CredentialStore
	cache  *UserCache
	logger *slog.Logger

	mu          sync.Mutex
	state       SessionState
	subscribers map[string]func(SessionState)
	op          uint64
}

// NewSessionManager creates a session manager over the given client. The
// credential store is the client's own, so the request engine sees new tokens
// the moment they are persisted. The cache may be nil, in which case no user
// snapshot is kept across restarts.
//
// Construct once at startup and hand the same instance to all consumers.
func NewSessionManager(client *Client, cache *UserCache, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		client:      client,
		creds:       client.Credentials(),
		cache:       cache,
		logger:      logger,
		subscribers: make(map[string]func(SessionState)),
	}
}

// State returns a copy of the current session state.
func (m *SessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to run on every state change. fn is invoked
// synchronously, so each change is visible to all current subscribers before
// the operation that triggered it returns. The returned function cancels the
// subscription.
func (m *SessionManager) Subscribe(fn func(SessionState)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// notifyLocked delivers the current state to all subscribers.
// Must be called with the mutex held.
func (m *SessionManager) notifyLocked() {
	for _, fn := range m.subscribers {
		fn(m.state)
	}
}

// CheckAuthenticationStatus restores the session on cold start. A stored
// access token is trusted without a server round-trip; the cached user
// snapshot fills in the profile when present. An already-authenticated
// session is never demoted here.
func (m *SessionManager) CheckAuthenticationStatus() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.creds.IsLoggedIn() {
		return
	}

	m.state.Authenticated = true
	if m.cache != nil {
		user, err := m.cache.Load()
		if err != nil {
			m.logger.Warn("user snapshot unreadable", "error", err)
		} else if user != nil {
			m.state.User = user
		}
	}

	m.logger.Info("session restored", "authenticated", true)
	m.notifyLocked()
}

// Login signs in with an email and password. It returns true on success;
// on failure the reason is in State().LastError. Login never returns an
// error: transport failures collapse to a generic connectivity message.
func (m *SessionManager) Login(ctx context.Context, email, password string) bool {
	op := m.begin()

	resp, err := m.client.Auth.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		m.logger.Warn("login request failed", "error", err)
		return m.finishFailure(op, msgConnectionError)
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = msgLoginFailed
		}
		return m.finishFailure(op, msg)
	}

	// A success response without tokens or user is malformed. No fabricated
	// session is built in its place.
	if resp.Tokens == nil || resp.User == nil {
		m.logger.Warn("login response missing tokens or user")
		return m.finishFailure(op, msgInvalidResponse)
	}

	return m.completeSignIn(op, *resp.Tokens, resp.User)
}

// Register creates an account and signs it in. Same result contract as Login.
func (m *SessionManager) Register(ctx context.Context, params RegisterParams) bool {
	op := m.begin()

	resp, err := m.client.Auth.Register(ctx, RegistrationRequest{
		Email:     params.Email,
		Password:  params.Password,
		Role:      RoleClient,
		FullName:  params.FullName,
		Phone:     params.Phone,
		Region:    params.Region,
		Age:       params.Age,
		BloodType: params.BloodType,
	})
	if err != nil {
		m.logger.Warn("registration request failed", "error", err)
		return m.finishFailure(op, msgConnectionError)
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = msgRegistrationFailed
		}
		return m.finishFailure(op, msg)
	}

	if resp.Tokens == nil || resp.User == nil {
		m.logger.Warn("registration response missing tokens or user")
		return m.finishFailure(op, msgInvalidResponse)
	}

	return m.completeSignIn(op, *resp.Tokens, resp.User)
}

// Logout clears all persisted credential state and resets the session. It is
// synchronous, always succeeds, and is idempotent. No network call is made;
// server-side session invalidation is out of scope.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Invalidate any in-flight login or register so a late response cannot
	// resurrect the session.
	m.op++

	m.creds.ClearAll()
	if m.cache != nil {
		if err := m.cache.Clear(); err != nil {
			m.logger.Warn("user snapshot clear failed", "error", err)
		}
	}

	m.state = SessionState{}
	m.logger.Info("session cleared")
	m.notifyLocked()
}

// begin marks the start of a login or register attempt: loading on, previous
// error cleared. It returns the operation generation used to detect stale
// completions.
func (m *SessionManager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.op++
	m.state.Loading = true
	m.state.LastError = ""
	m.notifyLocked()
	return m.op
}

// finishFailure records a failed attempt. A stale operation (superseded by a
// newer attempt or a logout) leaves the state untouched.
func (m *SessionManager) finishFailure(op uint64, msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.op != op {
		return false
	}

	m.state.Loading = false
	m.state.LastError = msg
	m.state.Authenticated = false
	m.notifyLocked()
	return false
}

// completeSignIn persists the session and flips the state to authenticated.
// Persistence happens under the state mutex: token writes are serialized with
// any concurrent logout, and Authenticated only flips true after the token
// pair is durably stored.
func (m *SessionManager) completeSignIn(op uint64, tokens AuthTokens, user *User) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.op != op {
		// Abandoned call: do not persist, do not mutate.
		m.logger.Info("discarding stale sign-in result")
		return false
	}

	if !m.creds.SaveTokens(tokens) {
		m.state.Loading = false
		m.state.LastError = msgPersistFailed
		m.state.Authenticated = false
		m.notifyLocked()
		return false
	}

	// Best-effort bookkeeping; the session works without these.
	m.creds.Save(KeyUserEmail, user.Email)
	m.creds.Save(KeyUserID, user.ID)
	if m.cache != nil {
		if err := m.cache.Save(user); err != nil {
			m.logger.Warn("user snapshot save failed", "error", err)
		}
	}

	m.state.User = user
	m.state.Authenticated = true
	m.state.Loading = false
	m.state.LastError = ""
	m.logger.Info("signed in", "user", user.ID)
	m.notifyLocked()
	return true
}
