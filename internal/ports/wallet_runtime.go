package ports

import (
	"context"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
)

// WalletRuntime holds at most one materialized wallet session.
type WalletRuntime interface {
	Create(ctx context.Context, name string, seed string) error
	Clear(ctx context.Context) error
	Session(ctx context.Context) (domain.Session, error)
	RetrieveLegacySeed(ctx context.Context, deviceKey string) (seed string, ok bool, err error)
}

type DeviceIdentity interface {
	UniqueID(ctx context.Context) (string, error)
}
