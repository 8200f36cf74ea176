// Package config provides loading and parsing of the winechad configuration
// file using Viper. It defines the configuration schema and resolves the
// paths it contains against the file's own directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfulz/winechad/internal/configloader"
	"github.com/mfulz/winechad/internal/logging"
	"github.com/spf13/viper"
)

// FileName is the default top-level config file name.
const FileName = "config.toml"

// Config represents the full structure of the winechad configuration file.
type Config struct {
	General General        `mapstructure:"general"`
	Logger  logging.Config `mapstructure:"log"`

	// Path is the file the configuration was read from.
	Path string `mapstructure:"-"`
}

// General holds the [general] section.
type General struct {
	PrefixDirs []string `mapstructure:"prefix_dirs"` // directories scanned for prefixes, in order
	WineDir    string   `mapstructure:"wine_dir"`    // root of named wine installations
}

// ErrMissingGeneral is returned when the [general] section is absent.
var ErrMissingGeneral = errors.New("config has no [general] section")

// LoadConfig resolves the config location and loads it. An explicit path
// (e.g. from --config) takes precedence over the environment and defaults.
func LoadConfig(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		var err error
		path, err = configloader.ResolveConfigPath(FileName)
		if err != nil {
			return nil, err
		}
	}
	return LoadFile(path)
}

// LoadFile reads a TOML config file and returns it with all relative paths
// resolved against the file's directory.
func LoadFile(path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config path %q: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(abs)
	v.SetConfigType("toml")

	defaults := logging.DefaultConfig()
	v.SetDefault("log.level", defaults.Level)
	v.SetDefault("log.to_stderr", defaults.ToStderr)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error loading config %s: %w", abs, err)
	}

	if !v.IsSet("general") {
		return nil, fmt.Errorf("%s: %w", abs, ErrMissingGeneral)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	cfg.Path = abs

	if len(cfg.General.PrefixDirs) == 0 {
		return nil, fmt.Errorf("%s: general.prefix_dirs must list at least one directory", abs)
	}

	base := filepath.Dir(abs)
	for i, dir := range cfg.General.PrefixDirs {
		cfg.General.PrefixDirs[i] = ResolvePath(base, dir)
	}
	if cfg.General.WineDir != "" {
		cfg.General.WineDir = ResolvePath(base, cfg.General.WineDir)
	}
	if cfg.Logger.FilePath != "" {
		cfg.Logger.FilePath = ResolvePath(base, cfg.Logger.FilePath)
	}

	return &cfg, nil
}

// ResolvePath expands a leading "~" and makes p absolute relative to base.
func ResolvePath(base, p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
