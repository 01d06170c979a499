package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/bachpan-balance/bachpan/internal/domain"
	"github.com/bachpan-balance/bachpan/internal/logging"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ConfigFile is the config file name inside the home directory.
const ConfigFile = "config.toml"

// Config holds all runtime configuration.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	Logging   LoggingConfig   `toml:"logging"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Display   DisplayConfig   `toml:"display"`
}

// StorageConfig selects where profiles live.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `toml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `toml:"format" validate:"omitempty,oneof=text json"`
	File   string `toml:"file"`
}

// TelemetryConfig controls the Prometheus textfile export. An empty
// Textfile disables it.
type TelemetryConfig struct {
	Textfile string `toml:"textfile"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	Plain bool   `toml:"plain"`
	Style string `toml:"style"`
	Width int    `toml:"width" validate:"omitempty,min=20,max=400"`
}

var validate = validator.New()

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	homeDir := Home()
	return Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Dir:     filepath.Join(homeDir, "data"),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Display: DisplayConfig{
			Style: "auto",
			Width: 80,
		},
	}
}

// Validate checks the backend name and the field bounds.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("%w %q (want %s or %s)", domain.ErrUnknownBackend, c.Storage.Backend, BackendJSON, BackendSQLite)
	}
	if err := validate.Struct(c.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := validate.Struct(c.Display); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// LogOptions converts the logging section for the logging package.
func (c Config) LogOptions() logging.Options {
	return logging.Options{Level: c.Logging.Level, Format: c.Logging.Format, File: c.Logging.File}
}

// LoadConfig reads $BACHPAN_HOME/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil // No config file yet, use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = DefaultConfig().Storage.Dir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfig writes the config to $BACHPAN_HOME/config.toml.
func SaveConfig(cfg Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// Home returns the Bachpan Balance home directory: $BACHPAN_HOME or ~/.bachpan.
func Home() string {
	if env := os.Getenv("BACHPAN_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bachpan")
}

// ConfigPath returns the config file location.
func ConfigPath() string {
	return filepath.Join(Home(), ConfigFile)
}
