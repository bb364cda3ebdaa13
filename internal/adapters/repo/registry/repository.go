// Package registry persists the account registry, per-account avatar
// assignments and the legacy migration journal in a metadata key/value
// store. The registry is always written as one whole record.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/bnema/wallet-accounts-cli/internal/ports"
)

type Repository struct {
	kv ports.MetadataStore
}

var (
	_ ports.RegistryRepository = (*Repository)(nil)
	_ ports.MigrationJournal   = (*Repository)(nil)
)

func NewRepository(kv ports.MetadataStore) *Repository {
	return &Repository{kv: kv}
}

func (r *Repository) Load(ctx context.Context) (domain.Registry, bool, error) {
	raw, err := r.kv.Get(ctx, RegistryKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return domain.Registry{}, false, nil
		}
		return domain.Registry{}, false, fmt.Errorf("%w: read account registry: %w", domain.ErrStoreFailure, err)
	}
	if strings.TrimSpace(raw) == "" {
		return domain.Registry{}, false, nil
	}

	var schema registrySchema
	if err := json.Unmarshal([]byte(raw), &schema); err != nil {
		return domain.Registry{}, false, fmt.Errorf("%w: decode account registry: %w", domain.ErrStoreFailure, err)
	}
	schema.applyDefaults()
	if schema.Version > domain.CurrentRegistryVersion {
		return domain.Registry{}, false, fmt.Errorf("%w: %d (current %d)", domain.ErrUnsupportedRegistryVersion, schema.Version, domain.CurrentRegistryVersion)
	}

	return fromSchema(schema), true, nil
}

func (r *Repository) Save(ctx context.Context, registry domain.Registry) error {
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("validate account registry: %w", err)
	}

	data, err := json.Marshal(toSchema(registry))
	if err != nil {
		return fmt.Errorf("encode account registry: %w", err)
	}

	if err := r.kv.Put(ctx, RegistryKey, string(data)); err != nil {
		return fmt.Errorf("%w: write account registry: %w", domain.ErrStoreFailure, err)
	}

	return nil
}

func (r *Repository) PendingMigrationID(ctx context.Context) (domain.AccountID, error) {
	raw, err := r.kv.Get(ctx, PendingMigrationIDKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("%w: read pending migration id: %w", domain.ErrStoreFailure, err)
	}

	return domain.AccountID(strings.TrimSpace(raw)), nil
}

func (r *Repository) SetPendingMigrationID(ctx context.Context, id domain.AccountID) error {
	if err := r.kv.Put(ctx, PendingMigrationIDKey, string(id)); err != nil {
		return fmt.Errorf("%w: write pending migration id: %w", domain.ErrStoreFailure, err)
	}

	return nil
}

func (r *Repository) ClearPendingMigrationID(ctx context.Context) error {
	if err := r.kv.Delete(ctx, PendingMigrationIDKey); err != nil {
		return fmt.Errorf("%w: clear pending migration id: %w", domain.ErrStoreFailure, err)
	}

	return nil
}

// AvatarRepository stores avatar indexes next to, not inside, the registry
// record so reassigning one never rewrites the registry.
type AvatarRepository struct {
	kv ports.MetadataStore
}

var _ ports.AvatarRepository = (*AvatarRepository)(nil)

func NewAvatarRepository(kv ports.MetadataStore) *AvatarRepository {
	return &AvatarRepository{kv: kv}
}

func (r *AvatarRepository) Get(ctx context.Context, id domain.AccountID) (int, error) {
	return r.read(ctx, AvatarKeyPrefix+string(id))
}

func (r *AvatarRepository) Set(ctx context.Context, id domain.AccountID, avatarID int) error {
	if err := r.kv.Put(ctx, AvatarKeyPrefix+string(id), strconv.Itoa(avatarID)); err != nil {
		return fmt.Errorf("%w: write avatar for account %s: %w", domain.ErrStoreFailure, id, err)
	}

	return nil
}

func (r *AvatarRepository) Clear(ctx context.Context, id domain.AccountID) error {
	if err := r.kv.Delete(ctx, AvatarKeyPrefix+string(id)); err != nil {
		return fmt.Errorf("%w: clear avatar for account %s: %w", domain.ErrStoreFailure, id, err)
	}

	return nil
}

func (r *AvatarRepository) LegacyAvatarID(ctx context.Context) (int, error) {
	return r.read(ctx, LegacyAvatarKey)
}

// read falls back to the default avatar when the key is absent or does not
// hold an integer.
func (r *AvatarRepository) read(ctx context.Context, key string) (int, error) {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return domain.DefaultAvatarID, nil
		}
		return 0, fmt.Errorf("%w: read avatar %q: %w", domain.ErrStoreFailure, key, err)
	}

	avatarID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return domain.DefaultAvatarID, nil
	}

	return avatarID, nil
}
