package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "metadata.toml"))
	require.NoError(t, err)

	registry := `{"accounts":[],"activeAccountId":null,"version":1}`
	require.NoError(t, store.Put(context.Background(), "account_registry", registry))
	require.NoError(t, store.Put(context.Background(), "wallet_avatar_acc-1", "3"))

	got, err := store.Get(context.Background(), "account_registry")
	require.NoError(t, err)
	assert.Equal(t, registry, got)

	got, err = store.Get(context.Background(), "wallet_avatar_acc-1")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestStoreGetMissingKeyReturnsKeyNotFound(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "metadata.toml"))
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "account_registry")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDeleteRemovesKeyAndIsIdempotent(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "metadata.toml"))
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "wallet_avatar_acc-1", "2"))
	require.NoError(t, store.Delete(context.Background(), "wallet_avatar_acc-1"))
	require.NoError(t, store.Delete(context.Background(), "wallet_avatar_acc-1"))

	_, err = store.Get(context.Background(), "wallet_avatar_acc-1")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreCreatesParentDirectoryAndEnforcesPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "metadata.toml")
	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "wallet_avatar", "4"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(metadataFileMode), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(metadataDirMode), dirInfo.Mode().Perm())
}

func TestStoreSyncFailureKeepsPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.toml")
	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "account_registry", "v1"))

	var synced int
	syncErr := errors.New("device not ready")
	previous := syncFile
	syncFile = func(*os.File) error {
		synced++
		return syncErr
	}
	defer func() { syncFile = previous }()

	err = store.Put(context.Background(), "account_registry", "v2")
	require.ErrorIs(t, err, syncErr)
	assert.Equal(t, 1, synced)

	got, err := store.Get(context.Background(), "account_registry")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), tempFilePattern))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStoreRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metadata.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 9",
		"",
		"[entries]",
		"wallet_avatar = \"2\"",
		"",
	}, "\n")), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "wallet_avatar")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported metadata schema version 9")
}

func TestStoreReadsFileWithoutVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metadata.toml")
	require.NoError(t, os.WriteFile(path, []byte("[entries]\nwallet_avatar = \"5\"\n"), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "wallet_avatar")
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestStoreRejectsEmptyPathAndKey(t *testing.T) {
	t.Parallel()

	_, err := NewStore("  ")
	require.Error(t, err)

	store, err := NewStore(filepath.Join(t.TempDir(), "metadata.toml"))
	require.NoError(t, err)
	require.Error(t, store.Put(context.Background(), " ", "value"))
}

func TestStoreConcurrentPutsKeepEveryKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metadata.toml")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store, err := NewStore(path)
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, store.Put(context.Background(), "key_"+strconv.Itoa(i), strconv.Itoa(i)))
		}(i)
	}
	wg.Wait()

	store, err := NewStore(path)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		got, err := store.Get(context.Background(), "key_"+strconv.Itoa(i))
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(i), got)
	}
}
