package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/wallet-accounts-cli/internal/adapters/device"
	tomlkv "github.com/bnema/wallet-accounts-cli/internal/adapters/kv/toml"
	"github.com/bnema/wallet-accounts-cli/internal/adapters/repo/registry"
	runtimefile "github.com/bnema/wallet-accounts-cli/internal/adapters/runtime/file"
	filestore "github.com/bnema/wallet-accounts-cli/internal/adapters/secrets/file"
	"github.com/bnema/wallet-accounts-cli/internal/adapters/secrets/seedvault"
	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/bnema/wallet-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type unsavableRegistry struct {
	*registry.Repository
	err error
}

func (r unsavableRegistry) Save(context.Context, domain.Registry) error {
	return r.err
}

func TestAddFirstActiveAccountSaveFailureLeavesNoSeed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	secretsDir := filepath.Join(dir, "secrets")

	metadata, err := tomlkv.NewStore(filepath.Join(dir, "metadata.toml"))
	require.NoError(t, err)
	identity := device.NewIdentity(testDeviceID)
	runtime, err := runtimefile.NewRuntime(filepath.Join(dir, "session.toml"), identity, nil)
	require.NoError(t, err)

	ids := mocks.NewMockIDGenerator(t)
	ids.EXPECT().NewAccountID().Return(domain.AccountID("acc-first")).Once()

	saveErr := errors.New("disk full")
	repo := registry.NewRepository(metadata)
	avatars := registry.NewAvatarRepository(metadata)
	vault := seedvault.New(filestore.NewStore(secretsDir), "")
	binder := application.NewSessionBinder(runtime, 0)

	a := &app{
		logger: zap.NewNop(),
		binder: binder,
		engine: application.NewEngine(application.EngineDeps{
			Registry: unsavableRegistry{Repository: repo, err: saveErr},
			Journal:  repo,
			Avatars:  avatars,
			Seeds:    vault,
			Runtime:  runtime,
			Device:   identity,
			Binder:   binder,
			IDs:      ids,
		}),
	}
	require.NoError(t, a.engine.Load(ctx))

	_, err = addAccount(ctx, a, application.AddAccountCommand{
		Name:      "Main",
		Seed:      mainSeed,
		AvatarID:  3,
		SetActive: true,
	})
	require.ErrorIs(t, err, saveErr)

	session, err := binder.Session(ctx)
	require.NoError(t, err)
	assert.False(t, session.Initialized)

	_, ok, err := vault.RetrieveSeed(ctx, "acc-first")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, regularFiles(t, secretsDir))

	avatarID, err := avatars.Get(ctx, "acc-first")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAvatarID, avatarID)

	assert.Zero(t, a.engine.AccountCount())
	assert.False(t, a.engine.State().IsAddingAccount)
}

func regularFiles(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if entry.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}
