package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Update(_ *App, _ time.Duration) { *s.log = append(*s.log, s.name) }
func (s *recordingSystem) Priority() int                  { return s.priority }

func TestApp_SystemsRunInPriorityOrder(t *testing.T) {
	var log []string
	app := NewApp()
	app.AddSystem(
		&recordingSystem{name: "late", priority: 20, log: &log},
		&recordingSystem{name: "early", priority: 5, log: &log},
		&recordingSystem{name: "mid-a", priority: 10, log: &log},
	)
	app.AddSystem(&recordingSystem{name: "mid-b", priority: 10, log: &log})

	app.Update(16 * time.Millisecond)

	assert.Equal(t, []string{"early", "mid-a", "mid-b", "late"}, log)
	assert.Equal(t, int64(1), app.Frame())
}

func TestApp_AddPluginsBuildsInOrder(t *testing.T) {
	var order []int
	app := NewApp()
	app.AddPlugins(
		PluginFunc(func(*App) { order = append(order, 1) }),
		nil,
		PluginFunc(func(*App) { order = append(order, 2) }),
	)

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 2, app.PluginCount())
}

func TestApp_PluginInstallsSystem(t *testing.T) {
	var log []string
	app := NewApp()
	app.AddPlugins(PluginFunc(func(a *App) {
		a.AddSystem(&recordingSystem{name: "from-plugin", log: &log})
	}))

	require.Len(t, app.Systems(), 1)
	app.Update(time.Millisecond)
	assert.Equal(t, []string{"from-plugin"}, log)
}
