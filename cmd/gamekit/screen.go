package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gamekit/audio"
	"github.com/lixenwraith/gamekit/config"
	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/input"
	"github.com/lixenwraith/gamekit/modifier"
	"github.com/lixenwraith/gamekit/seed"
	"github.com/lixenwraith/gamekit/vmath"
)

const frameInterval = 33 * time.Millisecond

// screenCamera maps terminal cells to world units using the current screen size
type screenCamera struct {
	mu     sync.RWMutex
	width  int
	height int
}

func (c *screenCamera) resize(w, h int) {
	c.mu.Lock()
	c.width, c.height = w, h
	c.mu.Unlock()
}

func (c *screenCamera) ViewportToWorld(screen vmath.Vec2) (vmath.Vec2, error) {
	c.mu.RLock()
	grid := input.GridCamera{Width: c.width, Height: c.height, CellSize: vmath.V2(1, 2)}
	c.mu.RUnlock()
	return grid.ViewportToWorld(screen)
}

func runScreen(cfg *config.Config, src *seed.Source, runID string, log logrus.FieldLogger) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			crashReport(r)
			err = fmt.Errorf("%w: %v", errCrashed, r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	cam := &screenCamera{}
	cam.resize(screen.Size())

	app := engine.NewApp()
	app.Status.Strings.Get("run").Store(runID)
	active, err := selectModifiers(app, cam, src.Seed(), log)
	if err != nil {
		return err
	}

	if cues := startAudio(cfg, log); cues != nil {
		defer cues.Cleanup()
		app.AddPlugins(audio.CuePlugin{Player: cues})
	}

	queue := engine.MustGetResource[*input.PointerQueue](app.Resources)
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventMouse:
				queue.PushTcell(ev)
			case *tcell.EventResize:
				cam.resize(ev.Size())
				screen.Sync()
			}
		case now := <-ticker.C:
			app.Update(now.Sub(last))
			last = now
			draw(screen, app, src, active)
		}
	}
}

func draw(screen tcell.Screen, app *engine.App, src *seed.Source, active modifier.ActiveModifiers) {
	screen.Clear()
	w, h := screen.Size()
	plain := tcell.StyleDefault
	dim := plain.Foreground(tcell.ColorGray)

	if v, ok := engine.GetResource[*View](app.Resources); ok && v.Weather != ' ' {
		for y := 0; y < h; y += 3 {
			for x := int(app.Frame()+int64(y)) % 7; x < w; x += 7 {
				screen.SetContent(x, y, v.Weather, nil, dim)
			}
		}
	}

	mirror := false
	if v, ok := engine.GetResource[*View](app.Resources); ok {
		mirror = v.Mirror
	}
	mouse := engine.MustGetResource[*input.MouseWorldCoords](app.Resources)

	if trail, ok := engine.GetResource[*Trail](app.Resources); ok {
		for _, p := range trail.Points {
			x, y := worldToCell(p, w, h, mirror)
			screen.SetContent(x, y, '.', nil, dim)
		}
	}
	cx, cy := worldToCell(mouse.Pos(), w, h, mirror)
	screen.SetContent(cx, cy, '@', nil, plain.Foreground(tcell.ColorYellow))

	lines := []string{
		"seed   " + src.Seed().String(),
		"active " + active.String(),
		fmt.Sprintf("mouse  %.1f, %.1f  diff %.1f, %.1f", mouse.Pos().X, mouse.Pos().Y, mouse.Diff().X, mouse.Diff().Y),
	}
	if p, ok := engine.GetResource[*Physics](app.Resources); ok {
		lines = append(lines, fmt.Sprintf("gravity %.1f  speed %.1f", p.Gravity, p.Speed))
	}
	lines = append(lines, app.Status.Snapshot()...)
	lines = append(lines, "q/esc to quit")

	for i, line := range lines {
		if i >= h {
			break
		}
		for j, r := range line {
			if j >= w {
				break
			}
			screen.SetContent(j, i, r, nil, plain)
		}
	}
	screen.Show()
}

// worldToCell inverts the screen camera mapping
func worldToCell(p vmath.Vec2, w, h int, mirror bool) (int, int) {
	x := int(p.X + float64(w)/2)
	y := int(float64(h)/2 - p.Y/2)
	if mirror {
		x = w - 1 - x
	}
	return x, y
}
