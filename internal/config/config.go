// Package config resolves the CLI configuration from
// ~/.wallet-accounts/config.toml, WA_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".wallet-accounts"
	envPrefix  = "WA"

	MetadataBackendKey    = "metadata.backend"
	MetadataPathKey       = "metadata.path"
	SecretsBackendKey     = "secrets.backend"
	SecretsDirKey         = "secrets.dir"
	SecretsPrefixKey      = "secrets.prefix"
	RuntimePathKey        = "runtime.path"
	SettleIntervalKey     = "session.settle_interval"
	DeviceIDKey           = "device.id"
	LogLevelKey           = "log.level"
	defaultSecretsPrefix  = "wallet/account_seed_"
	defaultMetadataFile   = "metadata.toml"
	defaultSQLiteFile     = "metadata.db"
	defaultSecretsDirName = "secrets"
	defaultRuntimeFile    = "session.toml"
)

type MetadataBackend string

const (
	MetadataTOML   MetadataBackend = "toml"
	MetadataSQLite MetadataBackend = "sqlite"
)

type SecretsBackend string

const (
	SecretsChain SecretsBackend = "chain"
	SecretsPass  SecretsBackend = "pass"
	SecretsFile  SecretsBackend = "file"
)

type Config struct {
	ConfigFile      string
	MetadataBackend MetadataBackend
	MetadataPath    string
	SecretsBackend  SecretsBackend
	SecretsDir      string
	SecretsPrefix   string
	RuntimePath     string
	SettleInterval  time.Duration
	DeviceID        string
	LogLevel        string
}

// Load reads configuration into cfg. An explicit configFile must exist; the
// default location is optional.
func Load(cfg *viper.Viper, configFile string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigType(configType)
	if strings.TrimSpace(configFile) != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.AddConfigPath(baseDir)
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(MetadataBackendKey, string(MetadataTOML))
	cfg.SetDefault(MetadataPathKey, "")
	cfg.SetDefault(SecretsBackendKey, string(SecretsChain))
	cfg.SetDefault(SecretsDirKey, filepath.Join(baseDir, defaultSecretsDirName))
	cfg.SetDefault(SecretsPrefixKey, defaultSecretsPrefix)
	cfg.SetDefault(RuntimePathKey, filepath.Join(baseDir, defaultRuntimeFile))
	cfg.SetDefault(SettleIntervalKey, application.DefaultSettleInterval.String())
	cfg.SetDefault(DeviceIDKey, "")
	cfg.SetDefault(LogLevelKey, "warn")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	out := Config{
		ConfigFile:      cfg.ConfigFileUsed(),
		MetadataBackend: MetadataBackend(strings.ToLower(strings.TrimSpace(cfg.GetString(MetadataBackendKey)))),
		MetadataPath:    strings.TrimSpace(cfg.GetString(MetadataPathKey)),
		SecretsBackend:  SecretsBackend(strings.ToLower(strings.TrimSpace(cfg.GetString(SecretsBackendKey)))),
		SecretsDir:      strings.TrimSpace(cfg.GetString(SecretsDirKey)),
		SecretsPrefix:   cfg.GetString(SecretsPrefixKey),
		RuntimePath:     strings.TrimSpace(cfg.GetString(RuntimePathKey)),
		SettleInterval:  cfg.GetDuration(SettleIntervalKey),
		DeviceID:        strings.TrimSpace(cfg.GetString(DeviceIDKey)),
		LogLevel:        strings.TrimSpace(cfg.GetString(LogLevelKey)),
	}

	if out.MetadataPath == "" {
		out.MetadataPath = filepath.Join(baseDir, defaultMetadataPath(out.MetadataBackend))
	}

	if err := out.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}

func (c Config) Validate() error {
	switch c.MetadataBackend {
	case MetadataTOML, MetadataSQLite:
	default:
		return fmt.Errorf("unsupported %s %q (expected toml or sqlite)", MetadataBackendKey, c.MetadataBackend)
	}

	switch c.SecretsBackend {
	case SecretsChain, SecretsPass, SecretsFile:
	default:
		return fmt.Errorf("unsupported %s %q (expected chain, pass or file)", SecretsBackendKey, c.SecretsBackend)
	}

	if c.SecretsDir == "" && c.SecretsBackend != SecretsPass {
		return fmt.Errorf("%s is empty", SecretsDirKey)
	}
	if c.RuntimePath == "" {
		return fmt.Errorf("%s is empty", RuntimePathKey)
	}
	if c.SettleInterval < 0 {
		return fmt.Errorf("%s must not be negative", SettleIntervalKey)
	}

	return nil
}

func defaultMetadataPath(backend MetadataBackend) string {
	if backend == MetadataSQLite {
		return defaultSQLiteFile
	}

	return defaultMetadataFile
}
