package sahha

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserCache_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "user.json")

	cache, err := NewUserCache(path)
	require.NoError(t, err)
	require.NotNil(t, cache)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, path, cache.Path())
}

func TestUserCache_SaveLoadRoundTrip(t *testing.T) {
	cache, err := NewUserCache(filepath.Join(t.TempDir(), "user.json"))
	require.NoError(t, err)

	user := &User{
		ID:        "u-1",
		Email:     "amine@example.com",
		FullName:  "Amine B.",
		Phone:     "0551234567",
		Region:    "Algiers",
		Age:       Ptr(31),
		BloodType: Ptr(BloodOPositive),
		Role:      RoleClient,
	}
	require.NoError(t, cache.Save(user))

	loaded, err := cache.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, user, loaded)
}

func TestUserCache_LoadMissingReturnsNil(t *testing.T) {
	cache, err := NewUserCache(filepath.Join(t.TempDir(), "user.json"))
	require.NoError(t, err)

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestUserCache_LoadCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	cache, err := NewUserCache(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err = cache.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotCorrupted)
}

func TestUserCache_ClearIsIdempotent(t *testing.T) {
	cache, err := NewUserCache(filepath.Join(t.TempDir(), "user.json"))
	require.NoError(t, err)

	require.NoError(t, cache.Save(&User{ID: "u-1", Email: "a@b.dz", Role: RoleClient}))
	require.NoError(t, cache.Clear())
	require.NoError(t, cache.Clear())

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestUserCache_SaveLeavesNoTempFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "user.json")
	cache, err := NewUserCache(path)
	require.NoError(t, err)

	require.NoError(t, cache.Save(&User{ID: "u-1", Email: "a@b.dz", Role: RoleClient}))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")
}
