package registry

import (
	"time"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
)

const (
	RegistryKey           = "account_registry"
	AvatarKeyPrefix       = "wallet_avatar_"
	LegacyAvatarKey       = "wallet_avatar"
	PendingMigrationIDKey = "migration_pending_account_id"
)

type registrySchema struct {
	Accounts        []profileSchema `json:"accounts"`
	ActiveAccountID *string         `json:"activeAccountId"`
	Version         int             `json:"version"`
}

type profileSchema struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPrimary bool   `json:"isPrimary"`
	CreatedAt int64  `json:"createdAt"`
	AvatarID  int    `json:"avatarId"`
}

func (s *registrySchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = domain.CurrentRegistryVersion
	}
}

func toSchema(registry domain.Registry) registrySchema {
	accounts := make([]profileSchema, 0, len(registry.Accounts))
	for _, account := range registry.Accounts {
		accounts = append(accounts, profileSchema{
			ID:        string(account.ID),
			Name:      account.Name,
			IsPrimary: account.IsPrimary,
			CreatedAt: formatTime(account.CreatedAt),
			AvatarID:  account.AvatarID,
		})
	}

	schema := registrySchema{Accounts: accounts, Version: registry.Version}
	if registry.ActiveAccountID != "" {
		active := string(registry.ActiveAccountID)
		schema.ActiveAccountID = &active
	}
	schema.applyDefaults()

	return schema
}

func fromSchema(schema registrySchema) domain.Registry {
	accounts := make([]domain.AccountProfile, 0, len(schema.Accounts))
	for _, account := range schema.Accounts {
		accounts = append(accounts, domain.AccountProfile{
			ID:        domain.AccountID(account.ID),
			Name:      account.Name,
			IsPrimary: account.IsPrimary,
			CreatedAt: parseTime(account.CreatedAt),
			AvatarID:  account.AvatarID,
		})
	}

	registry := domain.Registry{Accounts: accounts, Version: schema.Version}
	if schema.ActiveAccountID != nil {
		registry.ActiveAccountID = domain.AccountID(*schema.ActiveAccountID)
	}

	return registry
}

// createdAt is stored as unix milliseconds.
func formatTime(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}

	return value.UnixMilli()
}

func parseTime(raw int64) time.Time {
	if raw == 0 {
		return time.Time{}
	}

	return time.UnixMilli(raw).UTC()
}
