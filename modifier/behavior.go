package modifier

import "github.com/lixenwraith/gamekit/engine"

// Func adapts a plain function into a Modifier
type Func func(app *engine.App)

// Activate calls f(app)
func (f Func) Activate(app *engine.App) {
	f(app)
}

// PluginModifier activates by adding its plugin to the App
type PluginModifier struct {
	Plugin engine.Plugin
}

// FromPlugin wraps p as a Modifier
func FromPlugin(p engine.Plugin) PluginModifier {
	return PluginModifier{Plugin: p}
}

// Activate adds the wrapped plugin
func (m PluginModifier) Activate(app *engine.App) {
	app.AddPlugins(m.Plugin)
}
