package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/gamekit/status"
)

// Plugin is a unit of registration into an App
// Build installs resources and systems; it runs once per AddPlugins call
type Plugin interface {
	Build(app *App)
}

// PluginFunc adapts a plain function into a Plugin
type PluginFunc func(app *App)

// Build calls f(app)
func (f PluginFunc) Build(app *App) {
	f(app)
}

// System is updated once per App.Update
type System interface {
	Update(app *App, dt time.Duration)
	Priority() int // Lower values run first
}

// App is the host runtime that plugins and modifiers register into
type App struct {
	// ===== Immutable After Init =====
	Resources *ResourceStore
	Status    *status.Registry

	// ===== Mutex-Protected =====
	mu          sync.RWMutex
	systems     []System
	pluginCount int
	frame       int64
}

// NewApp creates an App with an empty resource store and status registry
func NewApp() *App {
	return &App{
		Resources: NewResourceStore(),
		Status:    status.NewRegistry(),
		systems:   make([]System, 0),
	}
}

// AddPlugins builds each plugin against the app in argument order
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		if p == nil {
			continue
		}
		p.Build(a)
		a.mu.Lock()
		a.pluginCount++
		a.mu.Unlock()
	}
	return a
}

// AddSystem adds a system and keeps the schedule sorted by priority
// Systems with equal priority keep insertion order
func (a *App) AddSystem(systems ...System) *App {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.systems = append(a.systems, systems...)
	sort.SliceStable(a.systems, func(i, j int) bool {
		return a.systems[i].Priority() < a.systems[j].Priority()
	})
	return a
}

// Systems returns a copy of the current schedule
func (a *App) Systems() []System {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]System, len(a.systems))
	copy(out, a.systems)
	return out
}

// PluginCount returns the number of plugins built so far
func (a *App) PluginCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.pluginCount
}

// Frame returns the number of completed updates
func (a *App) Frame() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frame
}

// Update runs every system once in priority order
func (a *App) Update(dt time.Duration) {
	for _, s := range a.Systems() {
		s.Update(a, dt)
	}

	a.mu.Lock()
	a.frame++
	a.mu.Unlock()
}
