// Package config provides configuration management for the cachesweep CLI.
// It handles loading, validating, and managing application settings, per-tool
// cleaner overrides, and protected path patterns. The package supports YAML
// configuration files and provides sensible defaults while allowing for
// customization through configuration files.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cachesweep/cachesweep/pkg/errors"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	// Per-tool cleaner overrides
	Cleaners []*CleanerConfig `yaml:"cleaners"`

	// Protected path glob patterns, on top of the built-in defaults
	ProtectedPaths []string `yaml:"protected_paths"`

	// General settings
	Settings Settings `yaml:"settings"`
}

// CleanerConfig represents a single per-tool override.
type CleanerConfig struct {
	Name       string   `yaml:"name"`
	Enabled    *bool    `yaml:"enabled,omitempty"` // nil means enabled
	ExtraPaths []string `yaml:"extra_paths,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	// Size memo settings
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// Subprocess settings
	ProbeTimeout time.Duration `yaml:"probe_timeout"`

	// Deletion settings
	DryRun      bool   `yaml:"dry_run"`
	TrashDir    string `yaml:"trash_dir,omitempty"`
	SnapshotDir string `yaml:"snapshot_dir,omitempty"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json
	LogLevel     string `yaml:"log_level"`     // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultCacheTTL is the default time-to-live for memoized directory sizes.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultProbeTimeout is the default timeout for external tool probes.
	DefaultProbeTimeout = 10 * time.Second

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Cleaners:       []*CleanerConfig{},
		ProtectedPaths: []string{},
		Settings: Settings{
			CacheTTL:     DefaultCacheTTL,
			ProbeTimeout: DefaultProbeTimeout,
			OutputFormat: "text",
			LogLevel:     "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	// Write to a temporary file first so a crash never leaves a truncated
	// config behind.
	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	if err := os.Chmod(absPath, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigFileChmod, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if err := validateCleaners(c.Cleaners); err != nil {
		return err
	}
	return validateSettings(c.Settings)
}

func validateCleaners(cleaners []*CleanerConfig) error {
	names := make(map[string]bool)
	for i, cl := range cleaners {
		if cl.Name == "" {
			return fmt.Errorf("cleaner %d: %w: name cannot be empty", i, errors.ErrConfigValidation)
		}
		if names[cl.Name] {
			return fmt.Errorf("cleaner '%s': %w: duplicate entry", cl.Name, errors.ErrConfigValidation)
		}
		names[cl.Name] = true
	}
	return nil
}

func validateSettings(s Settings) error {
	if s.CacheTTL < 0 {
		return fmt.Errorf("%w: cache_ttl cannot be negative", errors.ErrConfigValidation)
	}
	if s.ProbeTimeout < 0 {
		return fmt.Errorf("%w: probe_timeout cannot be negative", errors.ErrConfigValidation)
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[s.OutputFormat] {
		return errors.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, fsutil.AppName, "config.yaml"), nil
}

// GetConfigDir returns the directory holding the config file and hook
// scripts.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, fsutil.AppName), nil
}

// CleanerEnabled reports whether the named cleaner is enabled. Cleaners are
// enabled unless explicitly disabled.
func (c *Config) CleanerEnabled(name string) bool {
	for _, cl := range c.Cleaners {
		if cl.Name == name {
			return cl.Enabled == nil || *cl.Enabled
		}
	}
	return true
}

// ExtraPaths returns additional candidate paths configured for the named
// cleaner.
func (c *Config) ExtraPaths(name string) []string {
	for _, cl := range c.Cleaners {
		if cl.Name == name {
			return cl.ExtraPaths
		}
	}
	return nil
}

// EnableCleaner enables or disables a cleaner, creating the override entry
// on demand.
func (c *Config) EnableCleaner(name string, enabled bool) {
	for _, cl := range c.Cleaners {
		if cl.Name == name {
			cl.Enabled = &enabled
			return
		}
	}
	c.Cleaners = append(c.Cleaners, &CleanerConfig{Name: name, Enabled: &enabled})
}

// GetTrashDir returns the configured trash directory, falling back to the
// platform default.
func (c *Config) GetTrashDir() string {
	if c.Settings.TrashDir != "" {
		return c.Settings.TrashDir
	}
	dir, err := fsutil.GetTrashDir()
	if err != nil {
		return filepath.Join(os.TempDir(), fsutil.AppName, "trash")
	}
	return dir
}

// GetSnapshotDir returns the configured snapshot directory, falling back to
// the platform default.
func (c *Config) GetSnapshotDir() string {
	if c.Settings.SnapshotDir != "" {
		return c.Settings.SnapshotDir
	}
	dir, err := fsutil.GetSnapshotDir()
	if err != nil {
		return filepath.Join(os.TempDir(), fsutil.AppName, "snapshots")
	}
	return dir
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.CacheTTL == 0 {
		c.Settings.CacheTTL = defaults.Settings.CacheTTL
	}
	if c.Settings.ProbeTimeout == 0 {
		c.Settings.ProbeTimeout = defaults.Settings.ProbeTimeout
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}
