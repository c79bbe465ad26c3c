package vmath

import "math"

// Vec2 is a 2D float vector in world or screen units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Length() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec2) Extend(z float64) Vec3F { return Vec3F{X: v.X, Y: v.Y, Z: z} }

// Vec3F is a float 3D vector
type Vec3F struct {
	X, Y, Z float64
}

// Truncate drops Z
func (v Vec3F) Truncate() Vec2 { return Vec2{v.X, v.Y} }

// Rect is an axis-aligned rectangle given by its min and max corners
type Rect struct {
	Min, Max Vec2
}

// RectFromCorners normalizes two arbitrary corners into a Rect
func RectFromCorners(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Center() Vec2    { return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2} }

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
