// Package modifier chooses, from a seed, which optional gameplay modifiers are active for a run
// and activates each chosen modifier against the host App.
//
// A pool is an ordered list of entries. Each entry is gated by an independent percentage roll
// and wraps either a single modifier or a weighted group of nodes. Every roll and weighted draw
// comes from one ChaCha8 generator seeded with the run seed, consumed strictly in entry order and
// depth-first within an entry, so a seed always reproduces the same selection for the same pool.
package modifier

//go:generate mockgen -destination=mock/mock_modifier.go -package=mockmodifier -source=modifier.go

import "github.com/lixenwraith/gamekit/engine"

// Modifier is a gameplay behavior that registers itself into the App when selected
type Modifier interface {
	// Activate is called exactly once, and only if the modifier was selected
	Activate(app *engine.App)
}
