package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/vmath"
)

func TestMouseWorldCoords_SetPosShiftsHistory(t *testing.T) {
	var m MouseWorldCoords
	m.setPos(vmath.V2(1, 1), vmath.V2(10, 10))
	m.setPos(vmath.V2(4, 5), vmath.V2(12, 9))

	assert.Equal(t, vmath.V2(4, 5), m.Pos())
	assert.Equal(t, vmath.V2(1, 1), m.PrevPos())
	assert.Equal(t, vmath.V2(12, 9), m.ScreenPos())
	assert.Equal(t, vmath.V2(10, 10), m.PrevScreenPos())
	assert.Equal(t, vmath.V2(3, 4), m.Diff())
}

func TestTouchTracker(t *testing.T) {
	tr := NewTouchTracker()
	tr.Touch(7, vmath.V2(1, 2))
	tr.Touch(7, vmath.V2(3, 5))

	info, ok := tr.Get(7)
	require.True(t, ok)
	assert.Equal(t, vmath.V2(1, 2), info.InitialPos)
	assert.Equal(t, vmath.V2(3, 5), info.CurrPos)
	assert.Equal(t, vmath.V2(2, 3), info.Delta())

	tr.EndTouch(7)
	_, ok = tr.Get(7)
	assert.False(t, ok)
	assert.Zero(t, tr.Len())
}

func TestGridCamera(t *testing.T) {
	cam := GridCamera{Width: 80, Height: 24, CellSize: vmath.V2(1, 2), Center: vmath.V2(100, 0)}

	world, err := cam.ViewportToWorld(vmath.V2(40, 12))
	require.NoError(t, err)
	assert.Equal(t, vmath.V2(100, 0), world)

	world, err = cam.ViewportToWorld(vmath.V2(0, 0))
	require.NoError(t, err)
	assert.Equal(t, vmath.V2(60, 24), world)

	_, err = cam.ViewportToWorld(vmath.V2(80, 3))
	assert.ErrorIs(t, err, ErrOutsideViewport)
	_, err = cam.ViewportToWorld(vmath.V2(-1, 3))
	assert.ErrorIs(t, err, ErrOutsideViewport)
}

func newPointerApp(t *testing.T) (*engine.App, *PointerQueue) {
	t.Helper()
	app := engine.NewApp()
	app.AddPlugins(MouseCoordsPlugin{Camera: GridCamera{Width: 10, Height: 10, CellSize: vmath.V2(1, 1)}})
	return app, engine.MustGetResource[*PointerQueue](app.Resources)
}

func TestPointerSystem_TracksMouse(t *testing.T) {
	app, queue := newPointerApp(t)
	mouse := engine.MustGetResource[*MouseWorldCoords](app.Resources)

	queue.PushMouse(5, 5)
	queue.PushTcell(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone))
	queue.PushMouse(50, 50) // outside viewport, dropped
	app.Update(time.Millisecond)

	assert.Zero(t, queue.Len())
	assert.Equal(t, vmath.V2(2, 3), mouse.Pos())
	assert.Equal(t, vmath.V2(0, 0), mouse.PrevPos())
	assert.Equal(t, vmath.V2(7, 2), mouse.ScreenPos())
	assert.True(t, mouse.Pressed())

	x, ok := app.Status.Floats.Lookup(StatusMouseX)
	require.True(t, ok)
	assert.Equal(t, 2.0, x.Get())
}

func TestPointerSystem_DiffIsPerFrame(t *testing.T) {
	app, queue := newPointerApp(t)
	mouse := engine.MustGetResource[*MouseWorldCoords](app.Resources)

	queue.PushMouse(5, 5)
	app.Update(time.Millisecond)
	queue.PushMouse(8, 1)
	app.Update(time.Millisecond)
	assert.Equal(t, vmath.V2(3, 4), mouse.Diff())

	app.Update(time.Millisecond)
	assert.Equal(t, vmath.Vec2{}, mouse.Diff())
	assert.Equal(t, vmath.V2(3, 4), mouse.Pos())
	assert.Equal(t, vmath.V2(3, 4), mouse.PrevPos())

	app.Update(time.Millisecond)
	assert.Equal(t, vmath.Vec2{}, mouse.Diff())
}

func TestPointerSystem_SeveralEventsInOneFrame(t *testing.T) {
	app, queue := newPointerApp(t)
	mouse := engine.MustGetResource[*MouseWorldCoords](app.Resources)

	queue.PushMouse(5, 5)
	app.Update(time.Millisecond)

	queue.PushMouse(6, 5)
	queue.PushMouse(7, 5)
	queue.PushMouse(8, 5)
	app.Update(time.Millisecond)

	assert.Equal(t, vmath.V2(0, 0), mouse.PrevPos())
	assert.Equal(t, vmath.V2(3, 0), mouse.Pos())
	assert.Equal(t, vmath.V2(5, 5), mouse.PrevScreenPos())
}

func TestPointerSystem_NoSampleBeforeFirstEvent(t *testing.T) {
	app, _ := newPointerApp(t)
	mouse := engine.MustGetResource[*MouseWorldCoords](app.Resources)

	app.Update(time.Millisecond)
	assert.Equal(t, vmath.Vec2{}, mouse.Pos())
	assert.Equal(t, vmath.Vec2{}, mouse.Diff())
}

func TestPointerSystem_TracksTouches(t *testing.T) {
	app, queue := newPointerApp(t)
	touches := engine.MustGetResource[*TouchTracker](app.Resources)

	queue.PushTouch(1, TouchStarted, 5, 5)
	queue.PushTouch(2, TouchStarted, 6, 5)
	queue.PushTouch(1, TouchMoved, 8, 5)
	app.Update(time.Millisecond)

	require.Equal(t, 2, touches.Len())
	one, _ := touches.Get(1)
	assert.Equal(t, vmath.V2(0, 0), one.InitialPos)
	assert.Equal(t, vmath.V2(3, 0), one.CurrPos)

	queue.PushTouch(1, TouchEnded, 0, 0)
	queue.PushTouch(2, TouchCanceled, 99, 99)
	app.Update(time.Millisecond)
	assert.Zero(t, touches.Len())
	assert.Equal(t, int64(0), app.Status.Ints.Get(StatusTouches).Load())
}

func TestMouseCoordsPlugin_NilCameraIsIdentity(t *testing.T) {
	app := engine.NewApp()
	app.AddPlugins(MouseCoordsPlugin{})
	queue := engine.MustGetResource[*PointerQueue](app.Resources)

	queue.PushMouse(3, 4)
	app.Update(time.Millisecond)
	assert.Equal(t, vmath.V2(3, 4), engine.MustGetResource[*MouseWorldCoords](app.Resources).Pos())
}
