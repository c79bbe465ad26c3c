// Package input tracks pointer positions in world coordinates
//
// The main loop pushes raw terminal mouse and touch events into a PointerQueue; the pointer
// system drains it once per update, converts screen cells to world units through a Camera and
// caches the results in the MouseWorldCoords and TouchTracker resources.
package input

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamekit/vmath"
)

// ErrOutsideViewport is returned when a screen position is not inside the camera viewport
var ErrOutsideViewport = errors.New("position outside viewport")

// TouchPhase is the lifecycle stage of a touch event
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCanceled
)

// PointerKind discriminates queued pointer events
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// PointerEvent is one raw pointer sample in screen coordinates
type PointerEvent struct {
	Kind    PointerKind
	Screen  vmath.Vec2
	TouchID uint64
	Phase   TouchPhase
	Buttons tcell.ButtonMask
}

// PointerQueue buffers events between the input goroutine and the update loop
type PointerQueue struct {
	mu     sync.Mutex
	events []PointerEvent
}

// Push appends an event
func (q *PointerQueue) Push(ev PointerEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// PushMouse queues a cursor position in screen cells
func (q *PointerQueue) PushMouse(x, y int) {
	q.Push(PointerEvent{Kind: PointerMouse, Screen: vmath.V2(float64(x), float64(y))})
}

// PushTouch queues a touch sample
func (q *PointerQueue) PushTouch(id uint64, phase TouchPhase, x, y float64) {
	q.Push(PointerEvent{Kind: PointerTouch, TouchID: id, Phase: phase, Screen: vmath.V2(x, y)})
}

// PushTcell queues a tcell mouse event
func (q *PointerQueue) PushTcell(ev *tcell.EventMouse) {
	x, y := ev.Position()
	q.Push(PointerEvent{
		Kind:    PointerMouse,
		Screen:  vmath.V2(float64(x), float64(y)),
		Buttons: ev.Buttons(),
	})
}

// Drain removes and returns all queued events in arrival order
func (q *PointerQueue) Drain() []PointerEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events
func (q *PointerQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
