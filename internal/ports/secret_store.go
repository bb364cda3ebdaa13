package ports

import (
	"context"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
)

// SecretStore is a raw key/value secret backend. Get returns an error
// wrapping domain.ErrSecretNotFound when the key has no value.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// SeedVault stores one seed phrase per account. A missing seed is reported
// as ok == false with a nil error.
type SeedVault interface {
	StoreSeed(ctx context.Context, id domain.AccountID, seed string) error
	RetrieveSeed(ctx context.Context, id domain.AccountID) (seed string, ok bool, err error)
	DeleteSeed(ctx context.Context, id domain.AccountID) error
}
