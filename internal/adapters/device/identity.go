// Package device resolves the stable machine identity used as the
// device-bound key for sealing wallet sessions.
package device

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/wallet-accounts-cli/internal/ports"
)

var DefaultMachineIDPaths = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

var ErrNoDeviceID = errors.New("no device id available")

type Identity struct {
	override string
	paths    []string
	readFile func(string) ([]byte, error)
}

var _ ports.DeviceIdentity = (*Identity)(nil)

// NewIdentity returns an identity that prefers override and otherwise reads
// the first non-empty machine id file.
func NewIdentity(override string, paths ...string) *Identity {
	if len(paths) == 0 {
		paths = DefaultMachineIDPaths
	}

	return &Identity{
		override: strings.TrimSpace(override),
		paths:    paths,
		readFile: os.ReadFile,
	}
}

func (i *Identity) UniqueID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if i.override != "" {
		return i.override, nil
	}

	var errs []error
	for _, path := range i.paths {
		data, err := i.readFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, fmt.Errorf("read %s: %w", path, err))
			}
			continue
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	if len(errs) > 0 {
		return "", fmt.Errorf("%w: %w", ErrNoDeviceID, errors.Join(errs...))
	}

	return "", ErrNoDeviceID
}
