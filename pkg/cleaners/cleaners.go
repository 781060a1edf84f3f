// Package cleaners contains the per-tool cache cleaners. Each cleaner is a
// thin declaration of cache locations on top of cleaner.Base; only tools
// with their own cleanup command (docker, homebrew) carry extra logic.
package cleaners

import (
	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/config"
)

// All returns every known cleaner in display order.
func All(env *cleaner.Env) []cleaner.Cleaner {
	return []cleaner.Cleaner{
		NewNpm(env),
		NewYarn(env),
		NewPnpm(env),
		NewPip(env),
		NewGo(env),
		NewCargo(env),
		NewMaven(env),
		NewGradle(env),
		NewHomebrew(env),
		NewDocker(env),
		NewVSCode(env),
		NewJetBrains(env),
		NewChrome(env),
		NewFirefox(env),
		NewSystemTemp(env),
	}
}

// DefaultRegistry builds the registry of all cleaners, honoring per-cleaner
// enable flags and extra paths from the config.
func DefaultRegistry(env *cleaner.Env, cfg *config.Config) (*cleaner.Registry, error) {
	reg := cleaner.NewRegistry()

	for _, c := range All(env) {
		if cfg != nil && !cfg.CleanerEnabled(c.Name()) {
			continue
		}
		if cfg != nil {
			if extras := cfg.ExtraPaths(c.Name()); len(extras) > 0 {
				if ext, ok := c.(interface{ AddExtraPaths([]string) }); ok {
					ext.AddExtraPaths(extras)
				}
			}
		}
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
