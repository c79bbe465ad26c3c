package main

import (
	"time"

	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/input"
	"github.com/lixenwraith/gamekit/registry"
	"github.com/lixenwraith/gamekit/vmath"
)

// Gameplay resources written by modifier plugins and read by the screen loop

// Physics holds movement tuning
type Physics struct {
	Gravity float64
	Speed   float64
}

// View holds presentation toggles
type View struct {
	Mirror  bool
	Weather rune
}

// Trail keeps recent cursor world positions
type Trail struct {
	Points []vmath.Vec2
	Max    int
}

func physics(app *engine.App) *Physics {
	if p, ok := engine.GetResource[*Physics](app.Resources); ok {
		return p
	}
	p := &Physics{Gravity: 1, Speed: 1}
	engine.AddResource(app.Resources, p)
	return p
}

func view(app *engine.App) *View {
	if v, ok := engine.GetResource[*View](app.Resources); ok {
		return v
	}
	v := &View{Weather: ' '}
	engine.AddResource(app.Resources, v)
	return v
}

type trailSystem struct {
	trail *Trail
	mouse *input.MouseWorldCoords
}

func (s *trailSystem) Priority() int { return 0 }

func (s *trailSystem) Update(_ *engine.App, _ time.Duration) {
	if s.mouse.Diff() == (vmath.Vec2{}) {
		return
	}
	s.trail.Points = append(s.trail.Points, s.mouse.Pos())
	if len(s.trail.Points) > s.trail.Max {
		s.trail.Points = s.trail.Points[len(s.trail.Points)-s.trail.Max:]
	}
}

func init() {
	registry.Register("low_gravity", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) { physics(app).Gravity = 0.4 })
	})
	registry.Register("high_gravity", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) { physics(app).Gravity = 2.5 })
	})
	registry.Register("fast", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) { physics(app).Speed = 1.5 })
	})
	registry.Register("slow", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) { physics(app).Speed = 0.6 })
	})
	registry.Register("mirror", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) { view(app).Mirror = true })
	})
	registry.Register("rain", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) { view(app).Weather = '|' })
	})
	registry.Register("snow", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) { view(app).Weather = '*' })
	})
	registry.Register("trail", func() engine.Plugin {
		return engine.PluginFunc(func(app *engine.App) {
			trail := &Trail{Max: 24}
			engine.AddResource(app.Resources, trail)
			// Pointer resources must exist; the screen installs MouseCoordsPlugin first
			app.AddSystem(&trailSystem{
				trail: trail,
				mouse: engine.MustGetResource[*input.MouseWorldCoords](app.Resources),
			})
		})
	})
}
