package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"becoming/internal/logging"
)

const (
	// EnvPrefix marks environment overrides, e.g. BECOMING_STORAGE_DRIVER.
	EnvPrefix = "BECOMING_"

	// DriverFile keeps the check-in as JSON files in the home directory.
	DriverFile = "file"
	// DriverSQLite keeps the check-in in a single SQLite database.
	DriverSQLite = "sqlite"

	maxConfigFileSize = 64 * 1024
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string         `koanf:"home"`
	Storage StorageConfig  `koanf:"storage"`
	Log     logging.Config `koanf:"log"`
	UI      UIConfig       `koanf:"ui"`

	// Passphrase seals the check-in file. Flag only, never read from disk.
	Passphrase string `koanf:"-"`
	// DryRun keeps everything in memory.
	DryRun bool `koanf:"-"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
}

// UIConfig tunes terminal rendering.
type UIConfig struct {
	Width        int    `koanf:"width"`
	GlamourStyle string `koanf:"glamour_style"`
}

// LoadOptions are the command-line inputs to Load. Non-empty values take
// precedence over the config file and environment.
type LoadOptions struct {
	ConfigPath string
	Home       string
	LogLevel   string
}

// Load builds the config from, lowest to highest precedence: defaults, the
// YAML file, BECOMING_* environment variables, then opts.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	home, err := resolveHome(opts.Home)
	if err != nil {
		return nil, err
	}
	path := opts.ConfigPath
	if path == "" {
		path = filepath.Join(home, "config.yaml")
	}
	content, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	if content != nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if opts.Home != "" || cfg.Home == "" {
		cfg.Home = home
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envKey maps BECOMING_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

func resolveHome(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if v := os.Getenv(EnvPrefix + "HOME"); v != "" {
		return v, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(dir, ".becoming"), nil
}

// readConfigFile returns nil content when the file does not exist.
func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	return io.ReadAll(f)
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverFile
	}
	if cfg.Storage.Path == "" {
		if cfg.Storage.Driver == DriverSQLite {
			cfg.Storage.Path = filepath.Join(cfg.Home, "becoming.db")
		} else {
			cfg.Storage.Path = cfg.Home
		}
	}

	def := logging.DefaultConfig()
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Format
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.Home, "becoming.log")
	}

	if cfg.UI.Width == 0 {
		cfg.UI.Width = 80
	}
	if cfg.UI.GlamourStyle == "" {
		cfg.UI.GlamourStyle = "auto"
	}
}

// Validate rejects unknown drivers, bad log settings and unusable widths.
func (c *Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory is required")
	}
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", DriverFile, DriverSQLite, c.Storage.Driver)
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if c.UI.Width < 40 {
		return fmt.Errorf("ui.width must be at least 40, got %d", c.UI.Width)
	}
	return nil
}
