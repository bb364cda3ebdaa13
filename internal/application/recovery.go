package application

import (
	"context"
	"fmt"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"go.uber.org/zap"
)

// recoverActiveAccount materializes the session for an active account whose
// session was lost, e.g. after a crash between registry write and session
// creation.
func (e *Engine) recoverActiveAccount(ctx context.Context, activeID domain.AccountID) error {
	registry, err := e.loadedRegistry()
	if err != nil {
		return err
	}

	profile, ok := registry.Find(activeID)
	if !ok {
		return fmt.Errorf("active account %s: %w", activeID, domain.ErrAccountNotFound)
	}

	seed, ok, err := e.seeds.RetrieveSeed(ctx, activeID)
	if err != nil {
		return fmt.Errorf("retrieve seed for account %s: %w", activeID, err)
	}
	if !ok {
		return fmt.Errorf("account %s: %w: %w", activeID, domain.ErrAccountNotRecoverable, domain.ErrSecretNotFound)
	}

	e.setSwitching(true)
	defer e.setSwitching(false)

	if err := e.binder.Materialize(ctx, profile.Name, seed); err != nil {
		return err
	}

	e.logger.Info("recovered active account session", zap.String("account_id", string(activeID)))

	return nil
}
