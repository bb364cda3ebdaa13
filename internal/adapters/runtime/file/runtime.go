// Package file is a local wallet runtime holding a single session in one
// file. The seed is sealed under the device identity so the session only
// unlocks on the machine that created it.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/bnema/wallet-accounts-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	sessionFileMode = 0o600
	sessionDirMode  = 0o700
	tempFilePattern = ".session-*.toml.tmp"
)

var ErrSessionExists = errors.New("wallet session already exists")

type Runtime struct {
	path   string
	device ports.DeviceIdentity
	clock  ports.Clock
	mu     sync.Mutex
}

var _ ports.WalletRuntime = (*Runtime)(nil)

func NewRuntime(path string, device ports.DeviceIdentity, clock ports.Clock) (*Runtime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("session path is empty")
	}
	if device == nil {
		return nil, errors.New("device identity is required")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}

	return &Runtime{path: filepath.Clean(absPath), device: device, clock: clock}, nil
}

func (r *Runtime) Path() string {
	return r.path
}

func (r *Runtime) Create(ctx context.Context, name string, seed string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(seed) == "" {
		return errors.New("seed is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return ErrSessionExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat session file: %w", err)
	}

	deviceKey, err := r.device.UniqueID(ctx)
	if err != nil {
		return fmt.Errorf("read device id: %w", err)
	}

	salt, nonce, sealed, err := sealSeed(deviceKey, name, seed)
	if err != nil {
		return fmt.Errorf("seal seed: %w", err)
	}

	session := sessionSchema{
		Name:       name,
		CreatedAt:  r.clock.Now().UTC(),
		Salt:       salt,
		Nonce:      nonce,
		SealedSeed: sealed,
	}
	session.applyDefaults()

	return r.writeSession(session)
}

func (r *Runtime) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}

func (r *Runtime) Session(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok, err := r.readSession()
	if err != nil || !ok {
		return domain.Session{}, err
	}

	deviceKey, err := r.device.UniqueID(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("read device id: %w", err)
	}

	_, openErr := openSeed(deviceKey, session)

	return domain.Session{
		Initialized: true,
		Unlocked:    openErr == nil,
		Name:        session.Name,
	}, nil
}

// RetrieveLegacySeed reveals the seed of the current session. A wrong device
// key or a missing session is reported as ok == false.
func (r *Runtime) RetrieveLegacySeed(ctx context.Context, deviceKey string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok, err := r.readSession()
	if err != nil || !ok {
		return "", false, err
	}

	seed, err := openSeed(deviceKey, session)
	if err != nil {
		return "", false, nil
	}

	return seed, true, nil
}

func (r *Runtime) readSession() (sessionSchema, bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sessionSchema{}, false, nil
		}
		return sessionSchema{}, false, fmt.Errorf("read session file: %w", err)
	}

	var session sessionSchema
	if err := toml.Unmarshal(data, &session); err != nil {
		return sessionSchema{}, false, fmt.Errorf("decode session file: %w", err)
	}
	session.applyDefaults()
	if err := session.validateVersion(); err != nil {
		return sessionSchema{}, false, err
	}

	return session, true, nil
}

func (r *Runtime) writeSession(session sessionSchema) error {
	if err := os.MkdirAll(filepath.Dir(r.path), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}
	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp session file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	cleanup = false

	return nil
}
