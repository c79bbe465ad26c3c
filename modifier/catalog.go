package modifier

import (
	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/registry"
)

// catalogModifier instantiates a registered plugin at activation time
type catalogModifier struct {
	factory registry.PluginFactory
}

func (c catalogModifier) Activate(app *engine.App) {
	app.AddPlugins(c.factory())
}

// FromCatalog creates a leaf named after a registered plugin
// Unknown names fail here rather than at activation
func FromCatalog(name string) (*Single, error) {
	f, err := registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewSingle(name, catalogModifier{factory: f}), nil
}
