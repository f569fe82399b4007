package sahha

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStore_SaveGetRoundTrip(t *testing.T) {
	store := NewMemStore()

	require.True(t, store.Save(KeyAccessToken, "token-abc"))

	value, ok := store.Get(KeyAccessToken)
	require.True(t, ok)
	assert.Equal(t, "token-abc", value)
}

func TestCredentialStore_SaveOverwrites(t *testing.T) {
	store := NewMemStore()

	require.True(t, store.Save(KeyUserEmail, "old@example.com"))
	require.True(t, store.Save(KeyUserEmail, "new@example.com"))

	value, ok := store.Get(KeyUserEmail)
	require.True(t, ok)
	assert.Equal(t, "new@example.com", value)
}

func TestCredentialStore_GetMissing(t *testing.T) {
	store := NewMemStore()

	value, ok := store.Get(KeyRefreshToken)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestCredentialStore_DeleteMissingSucceeds(t *testing.T) {
	store := NewMemStore()

	assert.True(t, store.Delete(KeyAccessToken))
}

func TestCredentialStore_ClearAll(t *testing.T) {
	store := NewMemStore()
	store.Save(KeyAccessToken, "a")
	store.Save(KeyRefreshToken, "r")
	store.Save(KeyUserEmail, "e@example.com")
	store.Save(KeyUserID, "u-1")

	store.ClearAll()

	for _, key := range credentialKeys {
		_, ok := store.Get(key)
		assert.False(t, ok, "key %s should be cleared", key)
	}
	assert.False(t, store.IsLoggedIn())
}

func TestCredentialStore_IsLoggedIn(t *testing.T) {
	store := NewMemStore()
	assert.False(t, store.IsLoggedIn())

	store.Save(KeyAccessToken, "token")
	assert.True(t, store.IsLoggedIn())
}

func TestCredentialStore_SaveTokensRoundTrip(t *testing.T) {
	store := NewMemStore()

	require.True(t, store.SaveTokens(AuthTokens{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
	}))

	access, refresh := store.GetTokens()
	assert.Equal(t, "at-1", access)
	assert.Equal(t, "rt-1", refresh)
}

// failingBackend fails set calls for the configured keys.
type failingBackend struct {
	inner   secretBackend
	failSet map[string]bool
}

func (b *failingBackend) set(key, value string) error {
	if b.failSet[key] {
		return errors.New("backend write failure")
	}
	return b.inner.set(key, value)
}

func (b *failingBackend) get(key string) (string, error) { return b.inner.get(key) }
func (b *failingBackend) remove(key string) error        { return b.inner.remove(key) }

func TestCredentialStore_SaveTokensRollsBackHalfWrittenPair(t *testing.T) {
	backend := &failingBackend{
		inner:   &memBackend{values: make(map[string]string)},
		failSet: map[string]bool{string(KeyRefreshToken): true},
	}
	store := newStoreWithBackend(backend, nil)

	require.False(t, store.SaveTokens(AuthTokens{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
	}))

	// The access token written before the refresh failure must be gone.
	_, ok := store.Get(KeyAccessToken)
	assert.False(t, ok, "no half-written token pair may survive")
	assert.False(t, store.IsLoggedIn())
}

func TestCredentialStore_SaveFailureIsNonFatal(t *testing.T) {
	backend := &failingBackend{
		inner:   &memBackend{values: make(map[string]string)},
		failSet: map[string]bool{string(KeyUserEmail): true},
	}
	store := newStoreWithBackend(backend, nil)

	// Must not panic, just report failure.
	assert.False(t, store.Save(KeyUserEmail, "e@example.com"))
}
