package application

import (
	"context"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"go.uber.org/zap"
)

// Reconcile runs the one-shot startup checks after Load: legacy migration
// for an empty registry, or crash recovery for a declared active account
// without a live session. It only acts from PhaseLoaded and leaves it for
// good once a decision is made. Failures are logged, never returned.
func (e *Engine) Reconcile(ctx context.Context) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if e.Phase() != domain.PhaseLoaded {
		return
	}
	if e.loadFailed() {
		e.logger.Warn("reconcile skipped: account registry could not be loaded")
		return
	}

	state := e.State()
	if len(state.Accounts) == 0 {
		e.reconcileEmptyRegistry(ctx, state)
		return
	}

	if state.ActiveAccountID == "" || state.IsSwitching {
		e.setPhase(domain.PhaseReady)
		return
	}

	session, err := e.binder.Session(ctx)
	if err != nil {
		e.logger.Error("crash recovery: read wallet session", zap.Error(err))
		e.setPhase(domain.PhaseReady)
		return
	}
	if session.Initialized {
		e.setPhase(domain.PhaseReady)
		return
	}

	e.setPhase(domain.PhaseRecovering)
	if err := e.recoverActiveAccount(ctx, state.ActiveAccountID); err != nil {
		e.logger.Error("crash recovery failed",
			zap.String("account_id", string(state.ActiveAccountID)),
			zap.Error(err),
		)
	}
	e.setPhase(domain.PhaseReady)
}

// An empty registry stays in PhaseLoaded until the session is unlocked so a
// later call can still migrate.
func (e *Engine) reconcileEmptyRegistry(ctx context.Context, state State) {
	if state.IsAddingAccount {
		return
	}

	session, err := e.binder.Session(ctx)
	if err != nil {
		e.logger.Warn("legacy migration: read wallet session", zap.Error(err))
		return
	}
	if !session.Initialized || !session.Unlocked {
		return
	}

	e.setPhase(domain.PhaseMigrating)
	if err := e.migrateLegacyWallet(ctx, session); err != nil {
		e.logger.Error("legacy migration failed", zap.Error(err))
	}
	e.setPhase(domain.PhaseReady)
}
