package cli

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/config"
	"github.com/cachesweep/cachesweep/pkg/hooks"
)

// loadHooks loads pre/post-clean scripts from the config directory. A nil
// executor means no hooks are configured.
func loadHooks() (hooks.HookManager, error) {
	configDir, err := hooksConfigDir()
	if err != nil {
		return nil, err
	}

	executor := hooks.NewTengoExecutor()
	if err := hooks.LoadHooksFromConfigDir(executor, configDir); err != nil {
		return nil, err
	}

	if !executor.HasHook(hooks.PreClean) && !executor.HasHook(hooks.PostClean) {
		return nil, nil
	}
	return executor, nil
}

// hooksConfigDir resolves the directory scanned for hook scripts. An
// explicit --config flag keeps hooks next to that file.
func hooksConfigDir() (string, error) {
	if ConfigPath != nil && *ConfigPath != "" {
		return filepath.Dir(*ConfigPath), nil
	}
	return config.GetConfigDir()
}
