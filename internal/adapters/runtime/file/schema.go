package file

import (
	"fmt"
	"time"
)

const currentSchemaVersion = 1

type sessionSchema struct {
	Version    int       `toml:"version"`
	Name       string    `toml:"name"`
	CreatedAt  time.Time `toml:"created_at"`
	Salt       string    `toml:"salt"`
	Nonce      string    `toml:"nonce"`
	SealedSeed string    `toml:"sealed_seed"`
}

func (s *sessionSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s sessionSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
