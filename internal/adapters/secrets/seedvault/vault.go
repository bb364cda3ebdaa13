// Package seedvault maps account ids onto secret-store keys. Each account's
// seed lives under its own key, so two accounts can never share an entry.
package seedvault

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/bnema/wallet-accounts-cli/internal/ports"
)

const DefaultKeyPrefix = "wallet/account_seed_"

type Vault struct {
	store  ports.SecretStore
	prefix string
}

var _ ports.SeedVault = (*Vault)(nil)

func New(store ports.SecretStore, prefix string) *Vault {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &Vault{store: store, prefix: prefix}
}

func (v *Vault) Key(id domain.AccountID) string {
	return v.prefix + string(id)
}

func (v *Vault) StoreSeed(ctx context.Context, id domain.AccountID, seed string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if strings.TrimSpace(seed) == "" {
		return errors.New("seed is empty")
	}

	if err := v.store.Put(ctx, v.Key(id), seed); err != nil {
		return fmt.Errorf("%w: store seed for account %s: %w", domain.ErrStoreFailure, id, err)
	}

	return nil
}

func (v *Vault) RetrieveSeed(ctx context.Context, id domain.AccountID) (string, bool, error) {
	if err := validateID(id); err != nil {
		return "", false, err
	}

	seed, err := v.store.Get(ctx, v.Key(id))
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: retrieve seed for account %s: %w", domain.ErrStoreFailure, id, err)
	}
	if seed == "" {
		return "", false, nil
	}

	return seed, true, nil
}

func (v *Vault) DeleteSeed(ctx context.Context, id domain.AccountID) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := v.store.Delete(ctx, v.Key(id)); err != nil {
		return fmt.Errorf("%w: delete seed for account %s: %w", domain.ErrStoreFailure, id, err)
	}

	return nil
}

func validateID(id domain.AccountID) error {
	raw := string(id)
	if strings.TrimSpace(raw) == "" {
		return errors.New("account id is empty")
	}
	if strings.ContainsAny(raw, "/\\") || strings.Contains(raw, "..") {
		return fmt.Errorf("invalid account id %q", raw)
	}

	return nil
}
