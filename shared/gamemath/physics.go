// Package gamemath holds the small numeric helpers shared by the character
// controller, the collision world and the renderer. It has no dependencies on
// ebitengine or donburi.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// ApproachSpeed moves speed toward target by at most maxDelta.
func ApproachSpeed(speed, target, maxDelta float64) float64 {
	if speed < target {
		return math.Min(speed+maxDelta, target)
	}
	return math.Max(speed-maxDelta, target)
}

// MoveTowards moves current toward target by at most maxDelta and never
// overshoots.
func MoveTowards(current, target mgl64.Vec2, maxDelta float64) mgl64.Vec2 {
	diff := target.Sub(current)
	dist := diff.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(diff.Mul(maxDelta / dist))
}

// Lerp interpolates from a to b. t is clamped to [0, 1].
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// Flatten drops the vertical component of v, returning its XZ projection.
func Flatten(v mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{v.X(), v.Z()}
}

// Lift turns an XZ vector back into world space with the given height.
func Lift(v mgl64.Vec2, y float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), y, v.Y()}
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func NormalizeOrZero(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / l)
}

// JumpLaunchSpeed is the upward speed that reaches height under constant
// gravity. The sign of gravity is ignored.
func JumpLaunchSpeed(height, gravity float64) float64 {
	return math.Sqrt(height * 2 * math.Abs(gravity))
}
