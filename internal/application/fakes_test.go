package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/bnema/wallet-accounts-cli/internal/ports"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

type memoryRegistry struct {
	mu       sync.Mutex
	registry domain.Registry
	found    bool
	saves    int
	loadErr  error
	saveErr  error
}

func (r *memoryRegistry) Load(context.Context) (domain.Registry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loadErr != nil {
		return domain.Registry{}, false, r.loadErr
	}
	return r.registry.Clone(), r.found, nil
}

func (r *memoryRegistry) Save(_ context.Context, registry domain.Registry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}
	if err := registry.Validate(); err != nil {
		return err
	}
	r.registry = registry.Clone()
	r.found = true
	r.saves++
	return nil
}

func (r *memoryRegistry) snapshot() (domain.Registry, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.registry.Clone(), r.saves
}

type memoryJournal struct {
	mu      sync.Mutex
	pending domain.AccountID
}

func (j *memoryJournal) PendingMigrationID(context.Context) (domain.AccountID, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.pending, nil
}

func (j *memoryJournal) SetPendingMigrationID(_ context.Context, id domain.AccountID) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.pending = id
	return nil
}

func (j *memoryJournal) ClearPendingMigrationID(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.pending = ""
	return nil
}

type memoryVault struct {
	mu       sync.Mutex
	seeds    map[domain.AccountID]string
	storeErr error
}

func newMemoryVault(seeds map[domain.AccountID]string) *memoryVault {
	if seeds == nil {
		seeds = map[domain.AccountID]string{}
	}
	return &memoryVault{seeds: seeds}
}

func (v *memoryVault) StoreSeed(_ context.Context, id domain.AccountID, seed string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.storeErr != nil {
		return v.storeErr
	}
	v.seeds[id] = seed
	return nil
}

func (v *memoryVault) RetrieveSeed(_ context.Context, id domain.AccountID) (string, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	seed, ok := v.seeds[id]
	return seed, ok, nil
}

func (v *memoryVault) DeleteSeed(_ context.Context, id domain.AccountID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.seeds, id)
	return nil
}

func (v *memoryVault) len() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.seeds)
}

type memoryAvatars struct {
	mu     sync.Mutex
	values map[domain.AccountID]int
	legacy int
}

func newMemoryAvatars() *memoryAvatars {
	return &memoryAvatars{values: map[domain.AccountID]int{}}
}

func (a *memoryAvatars) Get(_ context.Context, id domain.AccountID) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if value, ok := a.values[id]; ok {
		return value, nil
	}
	return domain.DefaultAvatarID, nil
}

func (a *memoryAvatars) Set(_ context.Context, id domain.AccountID, avatarID int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.values[id] = avatarID
	return nil
}

func (a *memoryAvatars) Clear(_ context.Context, id domain.AccountID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.values, id)
	return nil
}

func (a *memoryAvatars) LegacyAvatarID(context.Context) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.legacy == 0 {
		return domain.DefaultAvatarID, nil
	}
	return a.legacy, nil
}

type liveSession struct {
	name string
	seed string
}

var errSessionExists = errors.New("wallet session already exists")

// fakeRuntime holds at most one session, like the real runtime, and records
// every call in order.
type fakeRuntime struct {
	mu        sync.Mutex
	session   *liveSession
	locked    bool
	legacyKey string
	calls     []string
	createErr error
	clearErr  error
	onCreate  func()
}

func (r *fakeRuntime) Create(_ context.Context, name string, seed string) error {
	if r.onCreate != nil {
		r.onCreate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, "create")
	if r.createErr != nil {
		return r.createErr
	}
	if r.session != nil {
		return errSessionExists
	}
	r.session = &liveSession{name: name, seed: seed}
	r.locked = false
	return nil
}

func (r *fakeRuntime) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, "clear")
	if r.clearErr != nil {
		return r.clearErr
	}
	r.session = nil
	return nil
}

func (r *fakeRuntime) Session(context.Context) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session == nil {
		return domain.Session{}, nil
	}
	return domain.Session{Initialized: true, Unlocked: !r.locked, Name: r.session.name}, nil
}

func (r *fakeRuntime) RetrieveLegacySeed(_ context.Context, deviceKey string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session == nil || deviceKey != r.legacyKey {
		return "", false, nil
	}
	return r.session.seed, true, nil
}

func (r *fakeRuntime) recordWait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, "wait")
}

func (r *fakeRuntime) current() (liveSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session == nil {
		return liveSession{}, false
	}
	return *r.session, true
}

func (r *fakeRuntime) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.calls...)
}

type staticDevice string

func (d staticDevice) UniqueID(context.Context) (string, error) {
	return string(d), nil
}

type sequenceIDs struct {
	mu  sync.Mutex
	ids []domain.AccountID
}

func (s *sequenceIDs) NewAccountID() domain.AccountID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type engineFixture struct {
	engine   *Engine
	registry *memoryRegistry
	journal  *memoryJournal
	vault    *memoryVault
	avatars  *memoryAvatars
	runtime  *fakeRuntime
	ids      *sequenceIDs
	clock    fixedClock
}

type fixtureOption func(*engineFixture)

// fixtureDeps adjusts the engine dependencies after the fakes are wired, so
// a test can swap a single collaborator for a mock.
type fixtureDeps func(*EngineDeps)

func withRegistry(registry domain.Registry) fixtureOption {
	return func(f *engineFixture) {
		f.registry.registry = registry
		f.registry.found = true
	}
}

func withSeeds(seeds map[domain.AccountID]string) fixtureOption {
	return func(f *engineFixture) {
		f.vault = newMemoryVault(seeds)
	}
}

func withSession(name, seed string) fixtureOption {
	return func(f *engineFixture) {
		f.runtime.session = &liveSession{name: name, seed: seed}
	}
}

func withIDs(ids ...domain.AccountID) fixtureOption {
	return func(f *engineFixture) {
		f.ids.ids = ids
	}
}

const testDeviceKey = "device-key-1"

func newEngineFixture(t *testing.T, logger *zap.Logger, opts ...fixtureOption) *engineFixture {
	t.Helper()

	return newEngineFixtureWithDeps(t, logger, nil, opts...)
}

func newEngineFixtureWithDeps(t *testing.T, logger *zap.Logger, override fixtureDeps, opts ...fixtureOption) *engineFixture {
	t.Helper()

	f := &engineFixture{
		registry: &memoryRegistry{},
		journal:  &memoryJournal{},
		vault:    newMemoryVault(nil),
		avatars:  newMemoryAvatars(),
		runtime:  &fakeRuntime{legacyKey: testDeviceKey},
		ids:      &sequenceIDs{ids: []domain.AccountID{"acc-new-1", "acc-new-2", "acc-new-3"}},
		clock:    fixedClock{now: time.Date(2026, 2, 28, 12, 0, 0, 123_456_789, time.UTC)},
	}
	for _, opt := range opts {
		opt(f)
	}

	binder := NewSessionBinder(f.runtime, DefaultSettleInterval)
	binder.wait = func(time.Duration) { f.runtime.recordWait() }

	deps := EngineDeps{
		Registry: f.registry,
		Journal:  f.journal,
		Avatars:  f.avatars,
		Seeds:    f.vault,
		Runtime:  f.runtime,
		Device:   staticDevice(testDeviceKey),
		Binder:   binder,
		IDs:      f.ids,
		Clock:    f.clock,
		Logger:   logger,
	}
	if override != nil {
		override(&deps)
	}
	f.engine = NewEngine(deps)

	return f
}

func twoAccountRegistry() domain.Registry {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return domain.Registry{
		Accounts: []domain.AccountProfile{
			{ID: "acc-a", Name: "Main", IsPrimary: true, CreatedAt: created, AvatarID: 1},
			{ID: "acc-b", Name: "Savings", CreatedAt: created.Add(time.Hour), AvatarID: 2},
		},
		ActiveAccountID: "acc-a",
		Version:         domain.CurrentRegistryVersion,
	}
}

var (
	_ ports.RegistryRepository = (*memoryRegistry)(nil)
	_ ports.MigrationJournal   = (*memoryJournal)(nil)
	_ ports.SeedVault          = (*memoryVault)(nil)
	_ ports.AvatarRepository   = (*memoryAvatars)(nil)
	_ ports.WalletRuntime      = (*fakeRuntime)(nil)
	_ ports.DeviceIdentity     = staticDevice("")
	_ ports.IDGenerator        = (*sequenceIDs)(nil)
	_ ports.Clock              = fixedClock{}
)
