package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "metadata.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, path
}

func TestStoreRoundTripAndUpsert(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)

	require.NoError(t, store.Put(context.Background(), "wallet_avatar_acc-1", "2"))
	require.NoError(t, store.Put(context.Background(), "wallet_avatar_acc-1", "5"))

	got, err := store.Get(context.Background(), "wallet_avatar_acc-1")
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestStoreGetMissingKeyReturnsKeyNotFound(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)

	_, err := store.Get(context.Background(), "account_registry")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)

	require.NoError(t, store.Put(context.Background(), "wallet_avatar", "3"))
	require.NoError(t, store.Delete(context.Background(), "wallet_avatar"))
	require.NoError(t, store.Delete(context.Background(), "wallet_avatar"))

	_, err := store.Get(context.Background(), "wallet_avatar")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metadata.db")
	first, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, first.Put(context.Background(), "account_registry", `{"version":1}`))
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(context.Background(), "account_registry")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(dbFileMode), info.Mode().Perm())
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store, _ := openTestStore(t)
	require.Error(t, store.Put(context.Background(), "", "value"))
}
