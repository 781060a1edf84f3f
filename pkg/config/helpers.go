package config

import (
	"fmt"
	"strconv"
	"time"
)

// SetValue sets a configuration value by key.
// Supported keys:
//   - cache_ttl: duration - Time-to-live for memoized directory sizes
//   - probe_timeout: duration - Timeout for external tool probes
//   - dry_run: bool - Default dry-run mode
//   - trash_dir: string - Directory cleaned paths are moved to
//   - snapshot_dir: string - Directory pre-delete snapshots are written to
//   - output_format: string - Output format (text, json)
//   - log_level: string - Logging level (error, warn, info, debug)
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "cache_ttl":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		c.Settings.CacheTTL = d
	case "probe_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		c.Settings.ProbeTimeout = d
	case "dry_run":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		c.Settings.DryRun = boolVal
	case "trash_dir":
		c.Settings.TrashDir = value
	case "snapshot_dir":
		c.Settings.SnapshotDir = value
	case "output_format":
		c.Settings.OutputFormat = value
	case "log_level":
		c.Settings.LogLevel = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// GetValue returns the value of a configuration key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "cache_ttl":
		return c.Settings.CacheTTL.String(), nil
	case "probe_timeout":
		return c.Settings.ProbeTimeout.String(), nil
	case "dry_run":
		return strconv.FormatBool(c.Settings.DryRun), nil
	case "trash_dir":
		return c.Settings.TrashDir, nil
	case "snapshot_dir":
		return c.Settings.SnapshotDir, nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "log_level":
		return c.Settings.LogLevel, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// ToMap converts the settings to a string map for display.
func (c *Config) ToMap() map[string]string {
	return map[string]string{
		"cache_ttl":     c.Settings.CacheTTL.String(),
		"probe_timeout": c.Settings.ProbeTimeout.String(),
		"dry_run":       strconv.FormatBool(c.Settings.DryRun),
		"trash_dir":     c.Settings.TrashDir,
		"snapshot_dir":  c.Settings.SnapshotDir,
		"output_format": c.Settings.OutputFormat,
		"log_level":     c.Settings.LogLevel,
	}
}
