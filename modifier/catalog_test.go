package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/registry"
)

type fogResource struct{ Density float64 }

func TestFromCatalog_ActivatesRegisteredPlugin(t *testing.T) {
	registry.Register("test.fog", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) {
			engine.AddResource(app.Resources, &fogResource{Density: 0.4})
		})
	})
	defer registry.Unregister("test.fog")

	leaf, err := FromCatalog("test.fog")
	require.NoError(t, err)
	assert.Equal(t, "test.fog", leaf.Name())

	app := engine.NewApp()
	leaf.Behavior().Activate(app)

	fog, ok := engine.GetResource[*fogResource](app.Resources)
	require.True(t, ok)
	assert.Equal(t, 0.4, fog.Density)
}

func TestFromCatalog_Unknown(t *testing.T) {
	_, err := FromCatalog("test.missing")
	assert.ErrorIs(t, err, registry.ErrUnknownPlugin)
}
