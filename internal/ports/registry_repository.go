package ports

import (
	"context"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
)

type RegistryRepository interface {
	Load(ctx context.Context) (registry domain.Registry, found bool, err error)
	Save(ctx context.Context, registry domain.Registry) error
}

type AvatarRepository interface {
	Get(ctx context.Context, id domain.AccountID) (int, error)
	Set(ctx context.Context, id domain.AccountID, avatarID int) error
	Clear(ctx context.Context, id domain.AccountID) error
	LegacyAvatarID(ctx context.Context) (int, error)
}

// MigrationJournal remembers the account id chosen by an unfinished legacy
// migration so a retry reuses it instead of orphaning the stored seed.
type MigrationJournal interface {
	PendingMigrationID(ctx context.Context) (domain.AccountID, error)
	SetPendingMigrationID(ctx context.Context, id domain.AccountID) error
	ClearPendingMigrationID(ctx context.Context) error
}
