// Package registry is a process-wide catalog of named plugin factories
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/gamekit/engine"
)

// ErrUnknownPlugin is returned when a name has no registered factory
var ErrUnknownPlugin = errors.New("unknown plugin")

// PluginFactory creates a fresh plugin instance
type PluginFactory func() engine.Plugin

var (
	pluginsMu sync.RWMutex
	plugins   = make(map[string]PluginFactory)
)

// Register adds or replaces a plugin factory by name
func Register(name string, factory PluginFactory) {
	pluginsMu.Lock()
	defer pluginsMu.Unlock()
	plugins[name] = factory
}

// Get retrieves a plugin factory by name
func Get(name string) (PluginFactory, bool) {
	pluginsMu.RLock()
	defer pluginsMu.RUnlock()
	f, ok := plugins[name]
	return f, ok
}

// Lookup is Get with an error for unknown names
func Lookup(name string) (PluginFactory, error) {
	f, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
	}
	return f, nil
}

// Names returns all registered names in sorted order
func Names() []string {
	pluginsMu.RLock()
	defer pluginsMu.RUnlock()
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes a factory, reporting whether it existed
func Unregister(name string) bool {
	pluginsMu.Lock()
	defer pluginsMu.Unlock()
	_, ok := plugins[name]
	delete(plugins, name)
	return ok
}
