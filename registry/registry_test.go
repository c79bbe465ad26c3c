package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamekit/engine"
)

func TestRegisterLookup(t *testing.T) {
	built := false
	Register("zz.test", func() engine.Plugin {
		return engine.PluginFunc(func(*engine.App) { built = true })
	})
	defer Unregister("zz.test")

	f, err := Lookup("zz.test")
	require.NoError(t, err)
	engine.NewApp().AddPlugins(f())
	assert.True(t, built)
	assert.Contains(t, Names(), "zz.test")
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("zz.none")
	assert.ErrorIs(t, err, ErrUnknownPlugin)
	assert.False(t, Unregister("zz.none"))
}

func TestNamesSorted(t *testing.T) {
	for _, n := range []string{"zz.c", "zz.a", "zz.b"} {
		Register(n, func() engine.Plugin { return engine.PluginFunc(func(*engine.App) {}) })
		defer Unregister(n)
	}

	var ours []string
	for _, n := range Names() {
		if len(n) > 3 && n[:3] == "zz." {
			ours = append(ours, n)
		}
	}
	assert.Equal(t, []string{"zz.a", "zz.b", "zz.c"}, ours)
}
