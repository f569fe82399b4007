package sahha

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Sentinel errors - snapshot cache
var (
	ErrSnapshotPersist   = errors.New("sahha: failed to persist user snapshot")
	ErrSnapshotCorrupted = errors.New("sahha: user snapshot corrupted")
)

// UserCache keeps a serialized snapshot of the signed-in user on disk so a
// cold start can restore the session without a server round-trip.
//
// The snapshot is not a credential: tokens live in the CredentialStore. It
// only spares the profile fetch on startup.
type UserCache struct {
	mu   sync.Mutex
	path string
}

// NewUserCache creates a cache persisting to path. The parent directory is
// created with 0700 permissions if missing.
func NewUserCache(path string) (*UserCache, error) {
	if path == "" {
		return nil, errors.New("sahha: snapshot path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	return &UserCache{path: path}, nil
}

// Path returns the snapshot file path.
func (c *UserCache) Path() string {
	return c.path
}

// Save writes the user snapshot atomically using the temp file + rename
// pattern, so a crash mid-write never leaves a torn snapshot behind.
func (c *UserCache) Save(user *User) error {
	if user == nil {
		return errors.New("sahha: user cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmpPath := c.path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", ErrSnapshotPersist, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write: %v", ErrSnapshotPersist, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: fsync: %v", ErrSnapshotPersist, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close: %v", ErrSnapshotPersist, err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: rename: %v", ErrSnapshotPersist, err)
	}

	return nil
}

// Load reads the cached user. Returns (nil, nil) when no snapshot exists.
func (c *UserCache) Load() (*User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupted, err)
	}
	return &user, nil
}

// Clear removes the snapshot. Clearing a missing snapshot is not an error.
func (c *UserCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}
