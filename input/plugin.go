package input

import (
	"time"

	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/vmath"
)

// Status keys published by the pointer system
const (
	StatusMouseX  = "mouse.x"
	StatusMouseY  = "mouse.y"
	StatusTouches = "touch.count"
)

// PointerPriority runs pointer tracking before gameplay systems
const PointerPriority = -100

// MouseCoordsPlugin installs pointer resources and the system that maintains them
// A nil Camera falls back to IdentityCamera
type MouseCoordsPlugin struct {
	Camera Camera
}

// Build installs *PointerQueue, *MouseWorldCoords and *TouchTracker and schedules the pointer system
func (p MouseCoordsPlugin) Build(app *engine.App) {
	camera := p.Camera
	if camera == nil {
		camera = IdentityCamera{}
	}
	queue := &PointerQueue{}
	mouse := &MouseWorldCoords{}
	touches := NewTouchTracker()

	engine.AddResource(app.Resources, queue)
	engine.AddResource(app.Resources, mouse)
	engine.AddResource(app.Resources, touches)

	app.AddSystem(&pointerSystem{
		camera:  camera,
		queue:   queue,
		mouse:   mouse,
		touches: touches,
	})
}

type pointerSystem struct {
	camera  Camera
	queue   *PointerQueue
	mouse   *MouseWorldCoords
	touches *TouchTracker

	// Latest cursor sample, kept across frames until the next mouse event
	cursorWorld  vmath.Vec2
	cursorScreen vmath.Vec2
	hasCursor    bool
}

func (s *pointerSystem) Priority() int { return PointerPriority }

// Update applies queued pointer events; samples the camera cannot convert are dropped,
// except touch end and cancel which always release the id
// The mouse is sampled once per frame so Diff is the movement since the previous frame
func (s *pointerSystem) Update(app *engine.App, _ time.Duration) {
	for _, ev := range s.queue.Drain() {
		switch ev.Kind {
		case PointerMouse:
			world, err := ScreenToWorld(s.camera, ev.Screen)
			if err != nil {
				continue
			}
			s.cursorWorld = world
			s.cursorScreen = ev.Screen
			s.hasCursor = true
			s.mouse.buttons = uint16(ev.Buttons)
		case PointerTouch:
			switch ev.Phase {
			case TouchStarted, TouchMoved:
				if world, err := ScreenToWorld(s.camera, ev.Screen); err == nil {
					s.touches.Touch(ev.TouchID, world)
				}
			case TouchEnded, TouchCanceled:
				s.touches.EndTouch(ev.TouchID)
			}
		}
	}

	if s.hasCursor {
		s.mouse.setPos(s.cursorWorld, s.cursorScreen)
	}

	pos := s.mouse.Pos()
	app.Status.Floats.Get(StatusMouseX).Set(pos.X)
	app.Status.Floats.Get(StatusMouseY).Set(pos.Y)
	app.Status.Ints.Get(StatusTouches).Store(int64(s.touches.Len()))
}
