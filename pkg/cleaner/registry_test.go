package cleaner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
)

func TestRegistry(t *testing.T) {
	env := newTestEnv(t)
	reg := cleaner.NewRegistry()

	npm := cleaner.NewBase(env, "npm", cleaner.KindPackageManager, "npm cache", nil)
	pip := cleaner.NewBase(env, "pip", cleaner.KindPackageManager, "pip cache", nil)

	require.NoError(t, reg.Register(npm))
	require.NoError(t, reg.Register(pip))

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"npm", "pip"}, reg.Names(), "registration order is preserved")

	got, err := reg.Get("pip")
	require.NoError(t, err)
	assert.Equal(t, "pip", got.Name())

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "npm", all[0].Name())
}

func TestRegistry_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	reg := cleaner.NewRegistry()

	require.NoError(t, reg.Register(cleaner.NewBase(env, "npm", cleaner.KindPackageManager, "", nil)))
	err := reg.Register(cleaner.NewBase(env, "npm", cleaner.KindPackageManager, "", nil))
	require.Error(t, err)
}

func TestRegistry_UnknownName(t *testing.T) {
	reg := cleaner.NewRegistry()

	_, err := reg.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}
