package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/wallet-accounts-cli/internal/adapters/device"
	sqlitekv "github.com/bnema/wallet-accounts-cli/internal/adapters/kv/sqlite"
	tomlkv "github.com/bnema/wallet-accounts-cli/internal/adapters/kv/toml"
	accountsrender "github.com/bnema/wallet-accounts-cli/internal/adapters/render/accounts"
	"github.com/bnema/wallet-accounts-cli/internal/adapters/repo/registry"
	runtimefile "github.com/bnema/wallet-accounts-cli/internal/adapters/runtime/file"
	chainstore "github.com/bnema/wallet-accounts-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/wallet-accounts-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/wallet-accounts-cli/internal/adapters/secrets/pass"
	"github.com/bnema/wallet-accounts-cli/internal/adapters/secrets/seedvault"
	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/bnema/wallet-accounts-cli/internal/config"
	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/bnema/wallet-accounts-cli/internal/ports"
	"go.uber.org/zap"
)

type app struct {
	cfg            config.Config
	logger         *zap.Logger
	engine         *application.Engine
	binder         *application.SessionBinder
	renderAccounts func([]application.AccountView, accountsrender.RenderOptions) (string, error)
	renderStatus   func(application.Status, accountsrender.RenderOptions) (string, error)
	renderCatalog  func([]domain.Avatar) (string, error)
	now            func() time.Time
	closers        []func() error
}

func (a *app) wire(ctx context.Context, cfg config.Config) error {
	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	metadata, err := a.openMetadataStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("wire metadata store: %w", err)
	}

	secrets, err := openSecretStore(cfg, a.logger)
	if err != nil {
		return fmt.Errorf("wire secret store: %w", err)
	}

	runtime, err := runtimefile.NewRuntime(cfg.RuntimePath, device.NewIdentity(cfg.DeviceID), ports.SystemClock{})
	if err != nil {
		return fmt.Errorf("wire wallet runtime: %w", err)
	}

	registryRepo := registry.NewRepository(metadata)
	binder := application.NewSessionBinder(runtime, cfg.SettleInterval)

	a.cfg = cfg
	a.binder = binder
	a.engine = application.NewEngine(application.EngineDeps{
		Registry: registryRepo,
		Journal:  registryRepo,
		Avatars:  registry.NewAvatarRepository(metadata),
		Seeds:    seedvault.New(secrets, cfg.SecretsPrefix),
		Runtime:  runtime,
		Device:   device.NewIdentity(cfg.DeviceID),
		Binder:   binder,
		IDs:      ports.UUIDGenerator{},
		Clock:    ports.SystemClock{},
		Logger:   a.logger.Named("engine"),
	})
	a.renderAccounts = accountsrender.Render
	a.renderStatus = accountsrender.RenderStatus
	a.renderCatalog = accountsrender.RenderCatalog
	a.now = time.Now

	return nil
}

// start loads the registry and runs the one-shot reconciliation, the same
// way every app launch does.
func (a *app) start(ctx context.Context) error {
	if err := a.engine.Load(ctx); err != nil {
		return err
	}

	a.engine.Reconcile(ctx)

	return nil
}

func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	if a.logger != nil {
		_ = a.logger.Sync()
	}

	return errors.Join(errs...)
}

func (a *app) openMetadataStore(ctx context.Context, cfg config.Config) (ports.MetadataStore, error) {
	switch cfg.MetadataBackend {
	case config.MetadataSQLite:
		store, err := sqlitekv.Open(ctx, cfg.MetadataPath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return tomlkv.NewStore(cfg.MetadataPath)
	}
}

func openSecretStore(cfg config.Config, logger *zap.Logger) (ports.SecretStore, error) {
	switch cfg.SecretsBackend {
	case config.SecretsPass:
		return passstore.NewStore(), nil
	case config.SecretsFile:
		return filestore.NewStore(cfg.SecretsDir), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir, logger.Named("secrets"))
	}
}
