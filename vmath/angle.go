package vmath

import "math"

// DoublePi is a full turn in radians
const DoublePi = 2 * math.Pi

// AngNorm wraps angle into (-π, π] and flips its sign
// The sign flip converts between screen (y down) and world (y up) rotation
func AngNorm(angle float64) float64 {
	a := math.Mod(angle+math.Pi, DoublePi) - math.Pi
	if a < -math.Pi {
		a += DoublePi
	}
	return -a
}

// Quat is a rotation quaternion
type Quat struct {
	X, Y, Z, W float64
}

// QuatFromZ builds a rotation of angle radians about Z
func QuatFromZ(angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{Z: s, W: c}
}

// ZRotation returns the Z component of the XYZ Euler decomposition of q
func ZRotation(q Quat) float64 {
	// Rotation matrix terms m00 and m01 for R = Rx * Ry * Rz
	m00 := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	m01 := 2 * (q.X*q.Y - q.W*q.Z)
	return math.Atan2(-m01, m00)
}
