package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "MCALC_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Shell   ShellConfig   `toml:"shell"`
	Plugins PluginsConfig `toml:"plugins"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt     string `toml:"prompt"`
	PluginsDir string `toml:"plugins_dir"`
}

// PluginsConfig holds plugin activation settings
type PluginsConfig struct {
	// Disabled lists plugin names that are skipped even when present
	Disabled []string `toml:"disabled"`
}

// ErrNotFound is returned by Discover when no config file exists
var ErrNotFound = errors.New("no config file found")

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mcerrors.ConfigError("load", fmt.Errorf("config file not found: %s", path))
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, mcerrors.ConfigError("parse", fmt.Errorf("failed to parse config: %w", err))
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, mcerrors.ConfigError("parse", fmt.Errorf("unknown config key: %s", undecoded[0]))
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Discover locates the config file. An explicit path wins, then the
// MCALC_CONFIG environment variable, then the default locations. It
// returns the path that was used, or ErrNotFound together with defaults.
func Discover(explicit string) (*Config, string, error) {
	if path := stringx.FirstNonBlank(explicit, os.Getenv(EnvConfigPath)); path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := Load(p)
			return cfg, p, err
		}
	}

	return Default(), "", ErrNotFound
}

// DefaultPaths returns the locations searched when no path is given
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mcalc", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "mcalc"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Shell.Prompt == "" {
		c.Shell.Prompt = ">>> "
	}
	if c.Shell.PluginsDir == "" {
		c.Shell.PluginsDir = "plugins"
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Shell.PluginsDir = os.ExpandEnv(c.Shell.PluginsDir)
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if _, err := mclog.ParseLevel(c.General.LogLevel); err != nil {
		return mcerrors.InvalidConfig("general.log_level", err)
	}
	if _, err := mclog.ParseFormat(c.General.LogFormat); err != nil {
		return mcerrors.InvalidConfig("general.log_format", err)
	}
	if stringx.IsBlank(c.Shell.Prompt) {
		return mcerrors.InvalidConfig("shell.prompt", errors.New("must not be blank"))
	}
	return nil
}

// IsPluginDisabled reports whether name is listed in plugins.disabled
func (c *Config) IsPluginDisabled(name string) bool {
	for _, d := range c.Plugins.Disabled {
		if stringx.EqualFoldTrim(d, name) {
			return true
		}
	}
	return false
}
