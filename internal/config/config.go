// Package config loads eatsplit preferences from a TOML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
)

// EnvPrefix prefixes every environment override, e.g. EATSPLIT_THEME.
const EnvPrefix = "EATSPLIT_"

// Config holds all eatsplit configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds ledger preferences.
type GeneralConfig struct {
	Currency     string `toml:"currency" env:"CURRENCY"`
	Seed         bool   `toml:"seed" env:"SEED"`
	IDFormat     string `toml:"id_format" env:"ID_FORMAT"` // uuid or ulid
	DefaultImage string `toml:"default_image" env:"DEFAULT_IMAGE"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"THEME"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file,omitempty" env:"LOG_FILE"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:     "₾",
			Seed:         true,
			IDFormat:     "uuid",
			DefaultImage: "https://i.pravatar.cc/48",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eatsplit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "eatsplit")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LogPath returns the log file the TUI writes to when none is configured.
func LogPath(cfg Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(Dir(), "eatsplit.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides apply either way.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path. See Load.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
