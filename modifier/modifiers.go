package modifier

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/seed"
)

// Choice is one selected leaf and the index of the entry that produced it
type Choice struct {
	Entry  int
	Single *Single
}

// Modifiers is the pool of entries for a run, bound to the run seed
type Modifiers struct {
	entries []*Entry
	seed    seed.Seed
	log     logrus.FieldLogger
}

// New creates an empty pool for s
func New(s seed.Seed) *Modifiers {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Modifiers{seed: s, log: l}
}

// WithEntry appends an entry; evaluation follows append order
func (m *Modifiers) WithEntry(e *Entry) *Modifiers {
	m.entries = append(m.entries, e)
	return m
}

// WithLogger sets the logger used to report activations
func (m *Modifiers) WithLogger(l logrus.FieldLogger) *Modifiers {
	if l != nil {
		m.log = l
	}
	return m
}

// Seed returns the pool seed
func (m *Modifiers) Seed() seed.Seed {
	return m.seed
}

// Len returns the number of entries
func (m *Modifiers) Len() int {
	return len(m.entries)
}

// Choose runs the selection pass against rng without activating anything
func (m *Modifiers) Choose(rng Source) []Choice {
	var choices []Choice
	for i, e := range m.entries {
		if leaf, ok := e.choose(rng); ok {
			choices = append(choices, Choice{Entry: i, Single: leaf})
		}
	}
	return choices
}

// Apply seeds a fresh generator, selects at most one leaf per entry in order and
// activates each selected leaf against app before evaluating the next entry
// Calling Apply again with the same pool reproduces the same selection
func (m *Modifiers) Apply(app *engine.App) ActiveModifiers {
	rng := NewRNG(m.seed)
	names := make([]string, 0, len(m.entries))

	for i, e := range m.entries {
		leaf, ok := e.choose(rng)
		if !ok {
			m.log.WithFields(logrus.Fields{
				"entry": i,
				"node":  e.node.Name(),
			}).Debug("modifier not selected")
			continue
		}

		leaf.behavior.Activate(app)
		names = append(names, leaf.name)

		m.log.WithFields(logrus.Fields{
			"entry":    i,
			"modifier": leaf.name,
		}).Info("modifier activated")
	}

	return ActiveModifiers{names: names}
}
