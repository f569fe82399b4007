package sahha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginSuccessBody = `{
	"success": true,
	"user": {"id":"u-1","email":"amine@example.com","full_name":"Amine B.",
		"phone":"0551234567","region":"Algiers","role":"client"},
	"tokens": {"accessToken":"at-1","refreshToken":"rt-1","expiresIn":3600}
}`

// newTestSession wires a session manager against a fake auth server.
func newTestSession(t *testing.T, handler http.HandlerFunc) (*SessionManager, *CredentialStore, *UserCache) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creds := NewMemStore()
	client := NewClient(WithBaseURL(server.URL), WithCredentials(creds))

	cache, err := NewUserCache(filepath.Join(t.TempDir(), "user.json"))
	require.NoError(t, err)

	return NewSessionManager(client, cache, nil), creds, cache
}

func TestSessionManager_LoginSuccess(t *testing.T) {
	mgr, creds, cache := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(loginSuccessBody))
	})

	ok := mgr.Login(context.Background(), "amine@example.com", "secret123")
	require.True(t, ok)

	state := mgr.State()
	assert.True(t, state.Authenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "u-1", state.User.ID)
	assert.False(t, state.Loading)
	assert.Empty(t, state.LastError)

	access, refresh := creds.GetTokens()
	assert.Equal(t, "at-1", access)
	assert.Equal(t, "rt-1", refresh)

	email, _ := creds.Get(KeyUserEmail)
	assert.Equal(t, "amine@example.com", email)
	userID, _ := creds.Get(KeyUserID)
	assert.Equal(t, "u-1", userID)

	snapshot, err := cache.Load()
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "u-1", snapshot.ID)
}

func TestSessionManager_LoginRejected(t *testing.T) {
	mgr, creds, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "invalid credentials"}`))
	})

	ok := mgr.Login(context.Background(), "amine@example.com", "wrong")
	require.False(t, ok)

	state := mgr.State()
	assert.False(t, state.Authenticated)
	assert.Equal(t, "invalid credentials", state.LastError)
	assert.False(t, state.Loading)
	assert.False(t, creds.IsLoggedIn())
}

func TestSessionManager_LoginRejectedFallbackMessage(t *testing.T) {
	mgr, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	})

	require.False(t, mgr.Login(context.Background(), "a@b.dz", "pw"))
	assert.Equal(t, msgLoginFailed, mgr.State().LastError)
}

func TestSessionManager_LoginTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	creds := NewMemStore()
	client := NewClient(WithBaseURL(url), WithCredentials(creds))
	mgr := NewSessionManager(client, nil, nil)

	// No fabricated fallback session: a dead server is a plain failure for
	// any credential pair.
	ok := mgr.Login(context.Background(), "test@test.com", "password123")
	require.False(t, ok)

	state := mgr.State()
	assert.False(t, state.Authenticated)
	assert.Equal(t, msgConnectionError, state.LastError)
	assert.False(t, state.Loading)
	assert.False(t, creds.IsLoggedIn())
}

func TestSessionManager_LoginMalformedSuccess(t *testing.T) {
	// success=true without tokens/user must not fabricate a session.
	mgr, creds, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	})

	require.False(t, mgr.Login(context.Background(), "a@b.dz", "pw"))

	state := mgr.State()
	assert.False(t, state.Authenticated)
	assert.Equal(t, msgInvalidResponse, state.LastError)
	assert.False(t, creds.IsLoggedIn())
}

func TestSessionManager_TokenPairAtomicity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginSuccessBody))
	}))
	t.Cleanup(server.Close)

	backend := &failingBackend{
		inner:   &memBackend{values: make(map[string]string)},
		failSet: map[string]bool{string(KeyRefreshToken): true},
	}
	creds := newStoreWithBackend(backend, nil)
	client := NewClient(WithBaseURL(server.URL), WithCredentials(creds))
	mgr := NewSessionManager(client, nil, nil)

	require.False(t, mgr.Login(context.Background(), "a@b.dz", "pw"))

	state := mgr.State()
	assert.False(t, state.Authenticated, "no authenticated state without a stored token pair")
	assert.Equal(t, msgPersistFailed, state.LastError)
	assert.False(t, creds.IsLoggedIn())
}

func TestSessionManager_Register(t *testing.T) {
	mgr, creds, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.Write([]byte(loginSuccessBody))
	})

	ok := mgr.Register(context.Background(), RegisterParams{
		Email:     "amine@example.com",
		Password:  "secret123",
		FullName:  "Amine B.",
		Phone:     "0551234567",
		Region:    "Algiers",
		Age:       31,
		BloodType: BloodOPositive,
	})
	require.True(t, ok)
	assert.True(t, mgr.State().Authenticated)
	assert.True(t, creds.IsLoggedIn())
}

func TestSessionManager_RegisterTransportFailureDoesNotFabricateAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	creds := NewMemStore()
	client := NewClient(WithBaseURL(url), WithCredentials(creds))
	mgr := NewSessionManager(client, nil, nil)

	ok := mgr.Register(context.Background(), RegisterParams{
		Email:    "new@example.com",
		Password: "secret123",
	})
	require.False(t, ok)
	assert.False(t, mgr.State().Authenticated)
	assert.False(t, creds.IsLoggedIn())
}

func TestSessionManager_LogoutIsIdempotent(t *testing.T) {
	mgr, creds, cache := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginSuccessBody))
	})

	require.True(t, mgr.Login(context.Background(), "a@b.dz", "pw"))
	require.True(t, mgr.State().Authenticated)

	mgr.Logout()
	mgr.Logout()

	state := mgr.State()
	assert.False(t, state.Authenticated)
	assert.Nil(t, state.User)
	assert.Empty(t, state.LastError)

	for _, key := range credentialKeys {
		_, ok := creds.Get(key)
		assert.False(t, ok, "key %s must be cleared", key)
	}

	snapshot, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSessionManager_ColdStartRestore(t *testing.T) {
	creds := NewMemStore()
	cache, err := NewUserCache(filepath.Join(t.TempDir(), "user.json"))
	require.NoError(t, err)

	// Simulate state left by a prior run.
	require.True(t, creds.SaveTokens(AuthTokens{AccessToken: "at-1", RefreshToken: "rt-1"}))
	require.NoError(t, cache.Save(&User{ID: "u-1", Email: "a@b.dz", Role: RoleClient}))

	client := NewClient(WithCredentials(creds))
	mgr := NewSessionManager(client, cache, nil)

	mgr.CheckAuthenticationStatus()

	state := mgr.State()
	assert.True(t, state.Authenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "u-1", state.User.ID)
}

func TestSessionManager_ColdStartWithoutToken(t *testing.T) {
	client := NewClient(WithCredentials(NewMemStore()))
	mgr := NewSessionManager(client, nil, nil)

	mgr.CheckAuthenticationStatus()

	assert.False(t, mgr.State().Authenticated)
}

func TestSessionManager_SubscribersSeeChangesBeforeReturn(t *testing.T) {
	mgr, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginSuccessBody))
	})

	var states []SessionState
	cancel := mgr.Subscribe(func(s SessionState) {
		states = append(states, s)
	})
	defer cancel()

	require.True(t, mgr.Login(context.Background(), "a@b.dz", "pw"))

	// First notification: loading. Last notification: authenticated.
	require.NotEmpty(t, states)
	assert.True(t, states[0].Loading)
	final := states[len(states)-1]
	assert.True(t, final.Authenticated)
	assert.False(t, final.Loading)

	// No intermediate state may claim authentication without a user.
	for _, s := range states {
		if s.Authenticated {
			assert.NotNil(t, s.User, "authenticated state published without user")
		}
	}
}

func TestSessionManager_UnsubscribeStopsDelivery(t *testing.T) {
	mgr, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginSuccessBody))
	})

	var count int
	cancel := mgr.Subscribe(func(SessionState) { count++ })
	cancel()

	mgr.Logout()
	assert.Zero(t, count)
}
