package app

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"valkeys/internal/domain"
)

// EnvKeyFile overrides the key-file path when set.
const EnvKeyFile = "VALKEYS_KEYFILE"

const (
	defaultDir        = ".valkeys"
	defaultKeyFile    = "validator-keys.json"
	defaultConfigFile = "config.yaml"
)

// Config holds runtime options for the CLI.
type Config struct {
	KeyFile          string `yaml:"keyfile"`
	KeyType          string `yaml:"keyType"`
	EphemeralKeyType string `yaml:"ephemeralKeyType"`
}

// Default returns the built-in configuration: an ed25519 master key and
// secp256k1 ephemeral keys under $HOME/.valkeys.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		KeyFile:          filepath.Join(home, defaultDir, defaultKeyFile),
		KeyType:          domain.Ed25519.String(),
		EphemeralKeyType: domain.Secp256k1.String(),
	}, nil
}

// Load layers configuration: defaults, then the yaml file (the given
// path, or the default location when empty), then environment
// overrides. A missing file at the default location is fine; an
// explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(filepath.Dir(cfg.KeyFile), defaultConfigFile)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var overlay Config
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		merge(&cfg, overlay)
	case explicit:
		return Config{}, err
	}

	if v := os.Getenv(EnvKeyFile); v != "" {
		cfg.KeyFile = v
	}
	return cfg, nil
}

func merge(dst *Config, overlay Config) {
	if overlay.KeyFile != "" {
		dst.KeyFile = overlay.KeyFile
	}
	if overlay.KeyType != "" {
		dst.KeyType = overlay.KeyType
	}
	if overlay.EphemeralKeyType != "" {
		dst.EphemeralKeyType = overlay.EphemeralKeyType
	}
}

// MasterKeyType parses the configured master key type.
func (c Config) MasterKeyType() (domain.KeyType, error) {
	return domain.ParseKeyType(c.KeyType)
}

// EphemeralType parses the configured ephemeral key type.
func (c Config) EphemeralType() (domain.KeyType, error) {
	return domain.ParseKeyType(c.EphemeralKeyType)
}
