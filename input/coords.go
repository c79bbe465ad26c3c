package input

import "github.com/lixenwraith/gamekit/vmath"

// MouseWorldCoords caches the last two cursor positions in world and screen space
type MouseWorldCoords struct {
	currPos       vmath.Vec2
	prevPos       vmath.Vec2
	currScreenPos vmath.Vec2
	prevScreenPos vmath.Vec2
	buttons       uint16
}

func (m *MouseWorldCoords) Pos() vmath.Vec2           { return m.currPos }
func (m *MouseWorldCoords) PrevPos() vmath.Vec2       { return m.prevPos }
func (m *MouseWorldCoords) ScreenPos() vmath.Vec2     { return m.currScreenPos }
func (m *MouseWorldCoords) PrevScreenPos() vmath.Vec2 { return m.prevScreenPos }

// Diff returns the world-space movement between the last two reported positions
func (m *MouseWorldCoords) Diff() vmath.Vec2 {
	return m.currPos.Sub(m.prevPos)
}

// Pressed reports whether any button was held in the last sample
func (m *MouseWorldCoords) Pressed() bool {
	return m.buttons != 0
}

func (m *MouseWorldCoords) setPos(world, screen vmath.Vec2) {
	m.prevPos = m.currPos
	m.currPos = world
	m.prevScreenPos = m.currScreenPos
	m.currScreenPos = screen
}

// TouchInfo is the start and latest world position of one touch
type TouchInfo struct {
	InitialPos vmath.Vec2
	CurrPos    vmath.Vec2
}

// Delta returns movement since the touch started
func (t TouchInfo) Delta() vmath.Vec2 {
	return t.CurrPos.Sub(t.InitialPos)
}

// TouchTracker maps active touch ids to their positions
type TouchTracker struct {
	touches map[uint64]*TouchInfo
}

// NewTouchTracker creates an empty tracker
func NewTouchTracker() *TouchTracker {
	return &TouchTracker{touches: make(map[uint64]*TouchInfo)}
}

// Touch records pos for id, starting a new touch if id is unknown
func (t *TouchTracker) Touch(id uint64, pos vmath.Vec2) {
	if info, ok := t.touches[id]; ok {
		info.CurrPos = pos
		return
	}
	t.touches[id] = &TouchInfo{InitialPos: pos, CurrPos: pos}
}

// EndTouch forgets id
func (t *TouchTracker) EndTouch(id uint64) {
	delete(t.touches, id)
}

// Get returns a copy of the touch state for id
func (t *TouchTracker) Get(id uint64) (TouchInfo, bool) {
	info, ok := t.touches[id]
	if !ok {
		return TouchInfo{}, false
	}
	return *info, true
}

// Len returns the number of active touches
func (t *TouchTracker) Len() int {
	return len(t.touches)
}
