// Package audio announces activated modifiers with short synthesized chimes
package audio

import (
	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/modifier"
)

// CuePlayer is the playback surface used by CuePlugin
type CuePlayer interface {
	PlayActivation(step int) bool
}

// CuePlugin plays one cue per active modifier when built
// It must be added after the ActiveModifiers record is installed
type CuePlugin struct {
	Player CuePlayer
}

// Build reads the installed ActiveModifiers and queues a cue for each name
func (p CuePlugin) Build(app *engine.App) {
	if p.Player == nil {
		return
	}
	active, ok := modifier.FromApp(app)
	if !ok {
		return
	}
	played := 0
	for i := range active.Len() {
		if p.Player.PlayActivation(i) {
			played++
		}
	}
	app.Status.Ints.Get("audio.cues").Store(int64(played))
}
