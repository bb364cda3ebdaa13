package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"go.uber.org/zap"
)

const defaultMigratedAccountName = "Main wallet"

// migrateLegacyWallet converts a pre-registry install into a one-account
// registry using the seed held by the current runtime session. The account
// id is journaled before the seed is stored so an interrupted attempt is
// finished under the same id on the next start.
func (e *Engine) migrateLegacyWallet(ctx context.Context, session domain.Session) error {
	deviceKey, err := e.device.UniqueID(ctx)
	if err != nil {
		return fmt.Errorf("read device id: %w", err)
	}

	seed, ok, err := e.runtime.RetrieveLegacySeed(ctx, deviceKey)
	if err != nil {
		return fmt.Errorf("retrieve legacy seed: %w", err)
	}
	if !ok {
		e.logger.Warn("legacy migration: could not retrieve seed")
		return nil
	}

	id, err := e.migrationID(ctx)
	if err != nil {
		return err
	}

	avatarID, err := e.avatars.LegacyAvatarID(ctx)
	if err != nil {
		return fmt.Errorf("read legacy avatar: %w", err)
	}

	if err := e.seeds.StoreSeed(ctx, id, seed); err != nil {
		return fmt.Errorf("store migrated seed: %w", err)
	}
	if err := e.avatars.Set(ctx, id, avatarID); err != nil {
		return fmt.Errorf("store migrated avatar: %w", err)
	}

	name := strings.TrimSpace(session.Name)
	if name == "" {
		name = defaultMigratedAccountName
	}
	profile := domain.AccountProfile{
		ID:        id,
		Name:      name,
		IsPrimary: true,
		CreatedAt: time.UnixMilli(e.clock.Now().UnixMilli()).UTC(),
		AvatarID:  avatarID,
	}
	registry := domain.Registry{
		Accounts:        []domain.AccountProfile{profile},
		ActiveAccountID: id,
		Version:         domain.CurrentRegistryVersion,
	}
	if err := e.registry.Save(ctx, registry); err != nil {
		return fmt.Errorf("save migrated registry: %w", err)
	}

	if err := e.journal.ClearPendingMigrationID(ctx); err != nil {
		e.logger.Warn("legacy migration: clear pending id", zap.Error(err))
	}

	e.update(func() { e.current = registry })
	e.logger.Info("migrated legacy wallet", zap.String("account_id", string(id)))

	return nil
}

func (e *Engine) migrationID(ctx context.Context) (domain.AccountID, error) {
	id, err := e.journal.PendingMigrationID(ctx)
	if err != nil {
		return "", fmt.Errorf("read pending migration id: %w", err)
	}
	if id != "" {
		e.logger.Info("legacy migration: resuming", zap.String("account_id", string(id)))
		return id, nil
	}

	id = e.ids.NewAccountID()
	if id == "" {
		return "", errors.New("generated empty account id")
	}
	if err := e.journal.SetPendingMigrationID(ctx, id); err != nil {
		return "", fmt.Errorf("record pending migration id: %w", err)
	}

	return id, nil
}
