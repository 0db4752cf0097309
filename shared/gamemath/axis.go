package gamemath

import "math"

// SmoothAxis moves a digital axis value towards target. It rises at
// sensitivity units/sec while a direction is held, falls back to rest at
// gravity units/sec, and snaps through zero when the direction reverses.
func SmoothAxis(current, target, sensitivity, gravity, dt float64) float64 {
	if target == 0 {
		return ApproachSpeed(current, 0, gravity*dt)
	}
	if current != 0 && math.Signbit(current) != math.Signbit(target) {
		current = 0
	}
	return ApproachSpeed(current, target, sensitivity*dt)
}

// Deadzone zeroes analog values inside the deadzone and rescales the rest
// so the output still spans [-1, 1].
func Deadzone(v, deadzone float64) float64 {
	a := math.Abs(v)
	if a <= deadzone {
		return 0
	}
	scaled := math.Min((a-deadzone)/(1-deadzone), 1)
	return math.Copysign(scaled, v)
}
