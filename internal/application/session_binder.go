package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/bnema/wallet-accounts-cli/internal/ports"
)

// DefaultSettleInterval is how long a handoff waits between clearing the old
// session and creating the new one. The runtime cannot hold two live
// sessions, so it must release the cleared one first.
const DefaultSettleInterval = 100 * time.Millisecond

// SessionBinder is the only mutator of the wallet runtime session.
type SessionBinder struct {
	runtime ports.WalletRuntime
	settle  time.Duration
	wait    func(time.Duration)
}

func NewSessionBinder(runtime ports.WalletRuntime, settle time.Duration) *SessionBinder {
	if settle < 0 {
		settle = DefaultSettleInterval
	}

	return &SessionBinder{runtime: runtime, settle: settle, wait: time.Sleep}
}

func (b *SessionBinder) SettleInterval() time.Duration {
	return b.settle
}

func (b *SessionBinder) Materialize(ctx context.Context, name, seed string) error {
	if err := b.runtime.Create(ctx, name, seed); err != nil {
		return fmt.Errorf("%w: create wallet session: %w", domain.ErrSessionFailure, err)
	}

	return nil
}

func (b *SessionBinder) Clear(ctx context.Context) error {
	if err := b.runtime.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear wallet session: %w", domain.ErrSessionFailure, err)
	}

	return nil
}

// Handoff clears the current session, waits the settle interval and then
// materializes the new one. The wait ignores ctx.
func (b *SessionBinder) Handoff(ctx context.Context, name, seed string) error {
	if err := b.Clear(ctx); err != nil {
		return err
	}

	b.wait(b.settle)

	return b.Materialize(ctx, name, seed)
}

func (b *SessionBinder) Session(ctx context.Context) (domain.Session, error) {
	session, err := b.runtime.Session(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: read wallet session: %w", domain.ErrSessionFailure, err)
	}

	return session, nil
}
