// Package config loads and saves the application settings file,
// ~/.deskgrid/config.toml. Everything in it has a working default so a
// missing file is not an error.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/arkadas/deskgrid/internal/apperrors"
	"github.com/arkadas/deskgrid/internal/files"
)

// Grid describes the icon grid new imports are laid out on.
type Grid struct {
	Rows int `toml:"rows,omitempty" json:"rows,omitempty" jsonschema:"minimum=1,description=Number of visible grid rows"`
	Cols int `toml:"cols,omitempty" json:"cols,omitempty" jsonschema:"minimum=1,description=Number of grid columns before imports wrap to the next row"`
}

// Config is the parsed settings file.
type Config struct {
	ProfilesDir    string `toml:"profiles_dir,omitempty" json:"profiles_dir,omitempty" jsonschema:"description=Directory holding the profile documents"`
	DesktopDir     string `toml:"desktop_dir,omitempty" json:"desktop_dir,omitempty" jsonschema:"description=Desktop directory to scan for importable files"`
	DefaultProfile string `toml:"default_profile,omitempty" json:"default_profile,omitempty" jsonschema:"description=Profile used when no --profile flag is given"`
	Grid           Grid   `toml:"grid,omitempty" json:"grid,omitempty" jsonschema:"description=Icon grid dimensions"`
	LogLevel       string `toml:"log_level,omitempty" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,description=Minimum log level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Grid:     Grid{Rows: 8, Cols: 12},
		LogLevel: "info",
	}
}

// DefaultPath returns ~/.deskgrid/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperrors.New(apperrors.KindIO,
			"Could not determine your home directory.", err)
	}
	return filepath.Join(home, ".deskgrid", "config.toml"), nil
}

// Load reads the file at path. A missing file yields Default() without an
// error; a file that exists but does not parse is an error, never silently
// replaced by defaults.
func Load(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, apperrors.New(apperrors.KindIO,
			"Failed to read the settings file.", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, apperrors.New(apperrors.KindMalformed,
			"The settings file is not valid TOML.", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path atomically, creating parent directories.
func Save(fs afero.Fs, path string, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return apperrors.New(apperrors.KindIO,
			"Failed to encode the settings file.", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return apperrors.New(apperrors.KindIO,
			"Failed to create the settings directory.", err)
	}
	return files.AtomicWrite(fs, path, data, 0o600)
}

func (c Config) validate() error {
	if c.Grid.Rows < 0 || c.Grid.Cols < 0 {
		return apperrors.New(apperrors.KindValidation,
			"Grid dimensions cannot be negative.", nil)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return apperrors.New(apperrors.KindValidation,
			"Log level must be one of debug, info, warn or error.", nil)
	}
	return nil
}
