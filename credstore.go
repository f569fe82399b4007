package sahha

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/99designs/keyring"
)

// Key names a credential slot. The key set is fixed and small.
type Key string

const (
	// KeyAccessToken holds the bearer token attached to API requests.
	KeyAccessToken Key = "accessToken"
	// KeyRefreshToken holds the refresh token paired with the access token.
	KeyRefreshToken Key = "refreshToken"
	// KeyUserEmail holds the signed-in user's email.
	KeyUserEmail Key = "userEmail"
	// KeyUserID holds the signed-in user's ID.
	KeyUserID Key = "userId"
)

// credentialKeys is every slot cleared on logout.
var credentialKeys = []Key{KeyAccessToken, KeyRefreshToken, KeyUserEmail, KeyUserID}

// errSecretNotFound is returned by backends for missing keys.
var errSecretNotFound = errors.New("sahha: secret not found")

// secretBackend is the minimal contract a credential backend provides.
// Backends may fail; the CredentialStore turns failures into boolean status.
type secretBackend interface {
	set(key, value string) error
	// get returns errSecretNotFound for a missing key.
	get(key string) (string, error)
	// remove is a no-op for a missing key.
	remove(key string) error
}

// CredentialStore persists short credential strings in protected at-rest
// storage. Every operation is best-effort and never panics: failures are
// reported through boolean results (and the logger) so callers decide whether
// a failed write is fatal.
type CredentialStore struct {
	backend secretBackend
	logger  *slog.Logger
}

// KeyringConfig configures a platform-keyring-backed store.
type KeyringConfig struct {
	// ServiceName scopes the entries; defaults to "sahha-auth".
	ServiceName string
	// FileDir is where the encrypted-file fallback backend keeps its data.
	FileDir string
	// FilePassword unlocks the encrypted-file fallback backend.
	FilePassword keyring.PromptFunc
	// Logger receives warnings for best-effort failures.
	Logger *slog.Logger
}

// NewKeyringStore opens a credential store backed by the platform keyring
// (macOS Keychain, Secret Service, wincred) with an encrypted file fallback.
// Entries are only readable while the user session is unlocked; the
// protection class is the platform backend's, not the SDK's.
func NewKeyringStore(cfg KeyringConfig) (*CredentialStore, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "sahha-auth"
	}
	if cfg.FilePassword == nil {
		cfg.FilePassword = keyring.TerminalPrompt
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:      cfg.ServiceName,
		FileDir:          cfg.FileDir,
		FilePasswordFunc: cfg.FilePassword,
	})
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CredentialStore{
		backend: &keyringBackend{ring: ring},
		logger:  logger,
	}, nil
}

// NewMemStore returns an in-memory credential store. Useful for tests and
// for clients that must not touch the platform keyring.
func NewMemStore() *CredentialStore {
	return &CredentialStore{
		backend: &memBackend{values: make(map[string]string)},
		logger:  slog.Default(),
	}
}

// newStoreWithBackend wires an arbitrary backend; used by tests to inject
// failing backends.
func newStoreWithBackend(backend secretBackend, logger *slog.Logger) *CredentialStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialStore{backend: backend, logger: logger}
}

// Save stores value under key, overwriting any existing value. Returns false
// on a store-layer failure.
func (s *CredentialStore) Save(key Key, value string) bool {
	// Delete-then-insert keeps overwrite semantics uniform across backends
	// that reject duplicate entries.
	if err := s.backend.remove(string(key)); err != nil {
		s.logger.Warn("credential delete before save failed", "key", key, "error", err)
	}
	if err := s.backend.set(string(key), value); err != nil {
		s.logger.Warn("credential save failed", "key", key, "error", err)
		return false
	}
	return true
}

// Get returns the value for key, or ok=false when the key is missing or the
// store is unreadable.
func (s *CredentialStore) Get(key Key) (string, bool) {
	value, err := s.backend.get(string(key))
	if err != nil {
		if !errors.Is(err, errSecretNotFound) {
			s.logger.Warn("credential read failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

// Delete removes key. Deleting a missing key succeeds; only a genuine store
// failure returns false.
func (s *CredentialStore) Delete(key Key) bool {
	if err := s.backend.remove(string(key)); err != nil {
		s.logger.Warn("credential delete failed", "key", key, "error", err)
		return false
	}
	return true
}

// ClearAll removes every credential slot, ignoring individual failures.
func (s *CredentialStore) ClearAll() {
	for _, key := range credentialKeys {
		s.Delete(key)
	}
}

// IsLoggedIn reports whether an access token is present. Presence is the sole
// cold-start signal; no server-side validity check happens here.
func (s *CredentialStore) IsLoggedIn() bool {
	_, ok := s.Get(KeyAccessToken)
	return ok
}

// SaveTokens persists the token pair. Both tokens are written or neither: if
// the refresh token write fails the access token is rolled back, so the store
// never holds an access token without a refresh path.
func (s *CredentialStore) SaveTokens(tokens AuthTokens) bool {
	if !s.Save(KeyAccessToken, tokens.AccessToken) {
		return false
	}
	if !s.Save(KeyRefreshToken, tokens.RefreshToken) {
		s.Delete(KeyAccessToken)
		return false
	}
	return true
}

// GetTokens returns the stored token pair; either value is empty when absent.
func (s *CredentialStore) GetTokens() (access, refresh string) {
	access, _ = s.Get(KeyAccessToken)
	refresh, _ = s.Get(KeyRefreshToken)
	return access, refresh
}

// keyringBackend stores secrets in the platform keyring.
type keyringBackend struct {
	ring keyring.Keyring
}

func (b *keyringBackend) set(key, value string) error {
	return b.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
}

func (b *keyringBackend) get(key string) (string, error) {
	item, err := b.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", errSecretNotFound
		}
		return "", err
	}
	return string(item.Data), nil
}

func (b *keyringBackend) remove(key string) error {
	if err := b.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// memBackend stores secrets in process memory.
type memBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

func (b *memBackend) set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	return nil
}

func (b *memBackend) get(key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, ok := b.values[key]
	if !ok {
		return "", errSecretNotFound
	}
	return value, nil
}

func (b *memBackend) remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.values, key)
	return nil
}
