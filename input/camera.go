package input

import "github.com/lixenwraith/gamekit/vmath"

// Camera converts viewport positions into world positions
type Camera interface {
	ViewportToWorld(screen vmath.Vec2) (vmath.Vec2, error)
}

// GridCamera maps a terminal cell grid onto world space
// Screen y grows downward, world y grows upward; Center is the world point at the viewport middle
type GridCamera struct {
	Width, Height int
	CellSize      vmath.Vec2
	Center        vmath.Vec2
}

// ViewportToWorld converts a cell position, rejecting positions outside the grid
func (c GridCamera) ViewportToWorld(screen vmath.Vec2) (vmath.Vec2, error) {
	if screen.X < 0 || screen.Y < 0 || screen.X >= float64(c.Width) || screen.Y >= float64(c.Height) {
		return vmath.Vec2{}, ErrOutsideViewport
	}
	offset := vmath.V2(
		(screen.X-float64(c.Width)/2)*c.CellSize.X,
		(float64(c.Height)/2-screen.Y)*c.CellSize.Y,
	)
	return c.Center.Add(offset), nil
}

// ScreenToWorld converts coords with cam
func ScreenToWorld(cam Camera, coords vmath.Vec2) (vmath.Vec2, error) {
	return cam.ViewportToWorld(coords)
}

// IdentityCamera treats screen positions as world positions
type IdentityCamera struct{}

// ViewportToWorld returns screen unchanged
func (IdentityCamera) ViewportToWorld(screen vmath.Vec2) (vmath.Vec2, error) {
	return screen, nil
}
