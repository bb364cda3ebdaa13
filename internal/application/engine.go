package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/bnema/wallet-accounts-cli/internal/ports"
	"go.uber.org/zap"
)

type EngineDeps struct {
	Registry ports.RegistryRepository
	Journal  ports.MigrationJournal
	Avatars  ports.AvatarRepository
	Seeds    ports.SeedVault
	Runtime  ports.WalletRuntime
	Device   ports.DeviceIdentity
	Binder   *SessionBinder
	IDs      ports.IDGenerator
	Clock    ports.Clock
	Logger   *zap.Logger
}

// Engine owns the in-memory account registry and the protocol that keeps it
// consistent with the secret store and the wallet session. Mutating
// operations are serialized by opMu; mu only guards the published fields so
// observers can read while an operation is in flight.
type Engine struct {
	registry ports.RegistryRepository
	journal  ports.MigrationJournal
	avatars  ports.AvatarRepository
	seeds    ports.SeedVault
	runtime  ports.WalletRuntime
	device   ports.DeviceIdentity
	binder   *SessionBinder
	ids      ports.IDGenerator
	clock    ports.Clock
	logger   *zap.Logger

	opMu sync.Mutex

	mu          sync.RWMutex
	phase       domain.Phase
	current     domain.Registry
	isSwitching bool
	isAdding    bool
	loadErr     error

	subMu   sync.Mutex
	subs    map[int]chan State
	nextSub int
}

func NewEngine(deps EngineDeps) *Engine {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.IDs == nil {
		deps.IDs = ports.UUIDGenerator{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Binder == nil {
		deps.Binder = NewSessionBinder(deps.Runtime, DefaultSettleInterval)
	}

	return &Engine{
		registry: deps.Registry,
		journal:  deps.Journal,
		avatars:  deps.Avatars,
		seeds:    deps.Seeds,
		runtime:  deps.Runtime,
		device:   deps.Device,
		binder:   deps.Binder,
		ids:      deps.IDs,
		clock:    deps.Clock,
		logger:   deps.Logger,
		phase:    domain.PhaseUninitialized,
		current:  domain.Registry{Version: domain.CurrentRegistryVersion},
		subs:     map[int]chan State{},
	}
}

// Load reads the registry store once. Later calls are no-ops; from then on
// the engine is authoritative and the store is only written to. A failed
// read still marks the engine loaded with no accounts, but every mutating
// operation is refused so the unreadable record is never overwritten.
func (e *Engine) Load(ctx context.Context) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if e.Phase() != domain.PhaseUninitialized {
		return nil
	}

	registry, found, err := e.registry.Load(ctx)
	if err != nil {
		e.logger.Error("load account registry", zap.Error(err))
		e.update(func() {
			e.current = domain.Registry{Version: domain.CurrentRegistryVersion}
			e.phase = domain.PhaseLoaded
			e.loadErr = err
		})
		return fmt.Errorf("load account registry: %w", err)
	}
	if !found {
		registry = domain.Registry{Version: domain.CurrentRegistryVersion}
	}

	e.update(func() {
		e.current = registry.Clone()
		e.phase = domain.PhaseLoaded
	})
	e.logger.Debug("account registry loaded",
		zap.Bool("found", found),
		zap.Int("accounts", len(registry.Accounts)),
		zap.String("active_account_id", string(registry.ActiveAccountID)),
	)

	return nil
}

func (e *Engine) SwitchAccount(ctx context.Context, targetID domain.AccountID) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	registry, err := e.loadedRegistry()
	if err != nil {
		return err
	}

	target, ok := registry.Find(targetID)
	if !ok {
		return fmt.Errorf("switch account %s: %w", targetID, domain.ErrAccountNotFound)
	}
	if registry.ActiveAccountID == targetID {
		return nil
	}

	// The destination seed must exist before the current session is cleared.
	seed, ok, err := e.seeds.RetrieveSeed(ctx, targetID)
	if err != nil {
		return fmt.Errorf("retrieve seed for account %s: %w", targetID, err)
	}
	if !ok {
		return fmt.Errorf("account %s: %w: %w", targetID, domain.ErrAccountNotRecoverable, domain.ErrSecretNotFound)
	}

	e.setSwitching(true)
	defer e.setSwitching(false)

	if err := e.binder.Handoff(ctx, target.Name, seed); err != nil {
		return fmt.Errorf("switch account %s: %w", targetID, err)
	}

	next := registry.Clone()
	next.ActiveAccountID = targetID
	if err := e.registry.Save(ctx, next); err != nil {
		return fmt.Errorf("save account registry: %w", err)
	}

	e.update(func() { e.current = next })
	e.logger.Info("switched account", zap.String("account_id", string(targetID)))

	return nil
}

// AddAccount stores a new account. With SetActive and an account already
// active the session is handed off to the new seed. With SetActive and no
// active account the caller must have materialized the session already.
func (e *Engine) AddAccount(ctx context.Context, cmd AddAccountCommand) (domain.AccountProfile, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	registry, err := e.loadedRegistry()
	if err != nil {
		return domain.AccountProfile{}, err
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return domain.AccountProfile{}, errors.New("account name is required")
	}
	if strings.TrimSpace(cmd.Seed) == "" {
		return domain.AccountProfile{}, errors.New("account seed is required")
	}
	avatarID := cmd.AvatarID
	if avatarID == 0 {
		avatarID = domain.DefaultAvatarID
	}
	if err := domain.ValidateAvatarID(avatarID); err != nil {
		return domain.AccountProfile{}, err
	}

	id := e.ids.NewAccountID()
	if _, exists := registry.Find(id); exists {
		return domain.AccountProfile{}, fmt.Errorf("generated account id %s already registered", id)
	}

	if err := e.seeds.StoreSeed(ctx, id, cmd.Seed); err != nil {
		return domain.AccountProfile{}, fmt.Errorf("store account seed: %w", err)
	}
	if err := e.avatars.Set(ctx, id, avatarID); err != nil {
		if rollbackErr := e.seeds.DeleteSeed(ctx, id); rollbackErr != nil {
			return domain.AccountProfile{}, fmt.Errorf("store account avatar and rollback stored seed: %w", errors.Join(err, rollbackErr))
		}
		return domain.AccountProfile{}, fmt.Errorf("store account avatar: %w", err)
	}

	profile := domain.AccountProfile{
		ID:        id,
		Name:      name,
		IsPrimary: len(registry.Accounts) == 0,
		CreatedAt: time.UnixMilli(e.clock.Now().UnixMilli()).UTC(),
		AvatarID:  avatarID,
	}

	next := registry.Clone()
	next.Accounts = append(next.Accounts, profile)
	if cmd.SetActive {
		next.ActiveAccountID = id
	}

	sessionBacked := cmd.SetActive && registry.ActiveAccountID == "" && !cmd.ProvisionalSession
	if cmd.SetActive && registry.ActiveAccountID != "" {
		e.setSwitching(true)
		err := e.binder.Handoff(ctx, name, cmd.Seed)
		e.setSwitching(false)
		if err != nil {
			return domain.AccountProfile{}, e.rollbackAdd(ctx, id, fmt.Errorf("activate account %s: %w", id, err))
		}
		sessionBacked = true
	}

	if err := e.registry.Save(ctx, next); err != nil {
		err = fmt.Errorf("save account registry: %w", err)
		if sessionBacked {
			e.logger.Warn("account registry not saved while session uses the new seed",
				zap.String("account_id", string(id)),
				zap.Error(err),
			)
			return domain.AccountProfile{}, err
		}
		return domain.AccountProfile{}, e.rollbackAdd(ctx, id, err)
	}

	e.update(func() {
		e.current = next
		e.isAdding = false
	})
	e.logger.Info("added account",
		zap.String("account_id", string(id)),
		zap.Bool("primary", profile.IsPrimary),
		zap.Bool("active", cmd.SetActive),
	)

	return profile, nil
}

func (e *Engine) rollbackAdd(ctx context.Context, id domain.AccountID, cause error) error {
	var rollbackErr error
	if err := e.avatars.Clear(ctx, id); err != nil {
		rollbackErr = errors.Join(rollbackErr, err)
	}
	if err := e.seeds.DeleteSeed(ctx, id); err != nil {
		rollbackErr = errors.Join(rollbackErr, err)
	}
	if rollbackErr != nil {
		return fmt.Errorf("%w; rollback new account: %w", cause, rollbackErr)
	}

	return cause
}

func (e *Engine) SetAddingAccount(adding bool) {
	e.update(func() { e.isAdding = adding })
}

// SetAvatar reassigns an account avatar in the avatar store. The registry
// record keeps the avatar chosen at creation.
func (e *Engine) SetAvatar(ctx context.Context, cmd SetAvatarCommand) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	registry, err := e.loadedRegistry()
	if err != nil {
		return err
	}
	if _, ok := registry.Find(cmd.ID); !ok {
		return fmt.Errorf("set avatar for account %s: %w", cmd.ID, domain.ErrAccountNotFound)
	}
	if err := domain.ValidateAvatarID(cmd.AvatarID); err != nil {
		return err
	}

	if err := e.avatars.Set(ctx, cmd.ID, cmd.AvatarID); err != nil {
		return fmt.Errorf("store account avatar: %w", err)
	}

	e.update(func() {
		for i := range e.current.Accounts {
			if e.current.Accounts[i].ID == cmd.ID {
				e.current.Accounts[i].AvatarID = cmd.AvatarID
			}
		}
	})

	return nil
}

func (e *Engine) Avatar(ctx context.Context, id domain.AccountID) (domain.Avatar, error) {
	if _, ok := e.State().Find(id); !ok {
		return domain.Avatar{}, fmt.Errorf("avatar for account %s: %w", id, domain.ErrAccountNotFound)
	}

	avatarID, err := e.avatars.Get(ctx, id)
	if err != nil {
		return domain.Avatar{}, fmt.Errorf("read account avatar: %w", err)
	}

	return domain.LookupAvatar(avatarID), nil
}

// ActiveAvatar resolves the active account avatar, or the pre-registry
// avatar when no account is active.
func (e *Engine) ActiveAvatar(ctx context.Context) (domain.Avatar, error) {
	active := e.State().ActiveAccountID
	if active != "" {
		return e.Avatar(ctx, active)
	}

	avatarID, err := e.avatars.LegacyAvatarID(ctx)
	if err != nil {
		return domain.Avatar{}, fmt.Errorf("read legacy avatar: %w", err)
	}

	return domain.LookupAvatar(avatarID), nil
}

func (e *Engine) ActiveAccount() (domain.AccountProfile, bool) {
	return e.State().ActiveAccount()
}

func (e *Engine) AccountCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.current.Accounts)
}

func (e *Engine) Phase() domain.Phase {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.phase
}

func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	accounts := make([]domain.AccountProfile, len(e.current.Accounts))
	copy(accounts, e.current.Accounts)

	return State{
		Phase:           e.phase,
		Accounts:        accounts,
		ActiveAccountID: e.current.ActiveAccountID,
		IsSwitching:     e.isSwitching,
		IsAddingAccount: e.isAdding,
		IsLoaded:        e.phase != domain.PhaseUninitialized,
	}
}

// Subscribe returns a channel receiving the latest state after every change.
// Slow readers only see the most recent snapshot. The returned func
// unsubscribes and closes the channel.
func (e *Engine) Subscribe() (<-chan State, func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextSub
	e.nextSub++
	ch := make(chan State, 1)
	e.subs[id] = ch
	ch <- e.State()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.subMu.Lock()
			defer e.subMu.Unlock()

			delete(e.subs, id)
			close(ch)
		})
	}
}

func (e *Engine) update(mutate func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	e.mu.Lock()
	mutate()
	state := e.stateLocked()
	e.mu.Unlock()

	for _, ch := range e.subs {
		select {
		case ch <- state:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}

func (e *Engine) setSwitching(switching bool) {
	e.update(func() { e.isSwitching = switching })
}

func (e *Engine) loadFailed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.loadErr != nil
}

func (e *Engine) setPhase(phase domain.Phase) {
	e.update(func() { e.phase = phase })
}

func (e *Engine) loadedRegistry() (domain.Registry, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.phase == domain.PhaseUninitialized {
		return domain.Registry{}, domain.ErrNotLoaded
	}
	if e.loadErr != nil {
		return domain.Registry{}, fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, e.loadErr)
	}

	return e.current.Clone(), nil
}
