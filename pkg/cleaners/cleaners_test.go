package cleaners_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/cleaners"
	"github.com/cachesweep/cachesweep/pkg/config"
	"github.com/cachesweep/cachesweep/pkg/dirsize"
	"github.com/cachesweep/cachesweep/pkg/probe"
	"github.com/cachesweep/cachesweep/pkg/protect"
)

func newTestEnv(t *testing.T) *cleaner.Env {
	t.Helper()
	matcher, err := protect.NewMatcher(nil)
	require.NoError(t, err)
	return &cleaner.Env{
		Sizes:   dirsize.NewCalculator(time.Minute),
		Protect: matcher,
		Prober:  probe.New(time.Second),
	}
}

func TestAll_NamesAreUniqueAndStable(t *testing.T) {
	all := cleaners.All(newTestEnv(t))
	require.NotEmpty(t, all)

	seen := make(map[string]bool, len(all))
	for _, c := range all {
		name := c.Name()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate cleaner name %q", name)
		seen[name] = true
	}

	for _, expected := range []string{"npm", "pip", "go", "cargo", "docker", "vscode", "chrome", "system-temp"} {
		assert.True(t, seen[expected], "missing cleaner %q", expected)
	}
}

func TestAll_CategoriesNeverError(t *testing.T) {
	ctx := context.Background()
	for _, c := range cleaners.All(newTestEnv(t)) {
		categories, err := c.Categories(ctx)
		require.NoError(t, err, "cleaner %s", c.Name())
		for _, cat := range categories {
			assert.NotEmpty(t, cat.ID, "cleaner %s has a category without id", c.Name())
		}
	}
}

func TestAll_CacheInfoNeverErrors(t *testing.T) {
	ctx := context.Background()
	for _, c := range cleaners.All(newTestEnv(t)) {
		info, err := c.CacheInfo(ctx)
		require.NoError(t, err, "cleaner %s", c.Name())
		assert.Equal(t, c.Name(), info.Name)
		assert.GreaterOrEqual(t, info.Size, int64(0))
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg, err := cleaners.DefaultRegistry(newTestEnv(t), nil)
	require.NoError(t, err)
	assert.Equal(t, len(cleaners.All(newTestEnv(t))), reg.Len())

	c, err := reg.Get("npm")
	require.NoError(t, err)
	assert.Equal(t, cleaner.KindPackageManager, c.Kind())
}

func TestDefaultRegistry_DisabledCleanersAreSkipped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableCleaner("docker", false)
	cfg.EnableCleaner("chrome", false)

	reg, err := cleaners.DefaultRegistry(newTestEnv(t), cfg)
	require.NoError(t, err)

	_, err = reg.Get("docker")
	assert.Error(t, err)
	_, err = reg.Get("chrome")
	assert.Error(t, err)
	_, err = reg.Get("npm")
	assert.NoError(t, err)
}

func TestDefaultRegistry_ExtraPathsAreApplied(t *testing.T) {
	extraDir := t.TempDir()

	cfg := config.DefaultConfig()
	require.NoError(t, cfg.SetValue("dry_run", "true"))
	cfg.Cleaners = append(cfg.Cleaners, &config.CleanerConfig{
		Name:       "npm",
		ExtraPaths: []string{extraDir},
	})

	reg, err := cleaners.DefaultRegistry(newTestEnv(t), cfg)
	require.NoError(t, err)

	npm, err := reg.Get("npm")
	require.NoError(t, err)

	info, err := npm.CacheInfo(context.Background())
	require.NoError(t, err)
	assert.Contains(t, info.Paths, extraDir)
}
