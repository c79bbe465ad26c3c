package modifier

import (
	"slices"
	"strings"

	"github.com/lixenwraith/gamekit/engine"
)

// Status keys published by ActiveModifiers.Build
const (
	StatusPrefix = "modifier."
	StatusCount  = "modifier.count"
)

// ActiveModifiers is the ordered record of modifiers activated for a run
// It is read-only after construction
type ActiveModifiers struct {
	names []string
}

// NewActiveModifiers copies names into a new record
func NewActiveModifiers(names ...string) ActiveModifiers {
	return ActiveModifiers{names: slices.Clone(names)}
}

// Names returns the activated names in activation order
func (a ActiveModifiers) Names() []string {
	return slices.Clone(a.names)
}

// Len returns the number of activated modifiers
func (a ActiveModifiers) Len() int {
	return len(a.names)
}

// Has reports whether name was activated
func (a ActiveModifiers) Has(name string) bool {
	return slices.Contains(a.names, name)
}

// String joins the names for display
func (a ActiveModifiers) String() string {
	if len(a.names) == 0 {
		return "none"
	}
	return strings.Join(a.names, ", ")
}

// Build installs the record as an App resource and publishes it to the status registry
func (a ActiveModifiers) Build(app *engine.App) {
	record := NewActiveModifiers(a.names...)
	engine.AddResource(app.Resources, &record)

	for _, name := range record.names {
		app.Status.Bools.Get(StatusPrefix + name).Store(true)
	}
	app.Status.Ints.Get(StatusCount).Store(int64(record.Len()))
}

// FromApp returns the record installed by Build
func FromApp(app *engine.App) (*ActiveModifiers, bool) {
	return engine.GetResource[*ActiveModifiers](app.Resources)
}
