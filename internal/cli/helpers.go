package cli

import (
	"fmt"

	"github.com/cachesweep/cachesweep/internal/logger"
	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/cleaners"
	"github.com/cachesweep/cachesweep/pkg/config"
	"github.com/cachesweep/cachesweep/pkg/dirsize"
	"github.com/cachesweep/cachesweep/pkg/manager"
	"github.com/cachesweep/cachesweep/pkg/probe"
	"github.com/cachesweep/cachesweep/pkg/protect"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
)

// loadConfig loads the configuration from the --config flag path or the
// default location, then applies flag overrides on top.
func loadConfig() (*config.Config, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return nil, fmt.Errorf("failed to determine config path")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags if provided
	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.OutputFormat))

	return cfg, nil
}

// loadConfigAndManager loads the configuration and builds the manager over
// the full cleaner registry. This is the bridge function the commands use.
func loadConfigAndManager() (*config.Config, *manager.Manager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	env, err := buildEnv(cfg)
	if err != nil {
		return nil, nil, err
	}

	registry, err := cleaners.DefaultRegistry(env, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build cleaner registry: %w", err)
	}

	mgr := manager.New(registry)
	if hookMgr, err := loadHooks(); err != nil {
		logger.Warn("Failed to load hooks", logger.Fields{"error": err.Error()})
	} else if hookMgr != nil {
		mgr.SetHooks(hookMgr)
	}

	return cfg, mgr, nil
}

// buildEnv wires the shared cleaner services from the config.
func buildEnv(cfg *config.Config) (*cleaner.Env, error) {
	matcher, err := protect.NewMatcher(cfg.ProtectedPaths)
	if err != nil {
		return nil, fmt.Errorf("invalid protected_paths pattern: %w", err)
	}

	return &cleaner.Env{
		Sizes:   dirsize.NewCalculator(cfg.Settings.CacheTTL),
		Protect: matcher,
		Prober:  probe.New(cfg.Settings.ProbeTimeout),
	}, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}
