package character

import (
	"math"

	"github.com/automoto/kidclunk/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// idleReturnRate is how fast the camera eases back to rest, per second.
const idleReturnRate = 10.0

// HeadBob produces the procedural camera offset. While moving the oscillator
// runs off absolute time, so its frequency and amplitude do not scale with
// speed. When idle the offset eases back to rest from the last value this
// controller produced, not from wherever the camera currently is.
type HeadBob struct {
	cfg    HeadBobConfig
	rest   mgl64.Vec3
	offset mgl64.Vec3
}

// NewHeadBob captures rest as the camera's resting local position.
func NewHeadBob(cfg HeadBobConfig, rest mgl64.Vec3) *HeadBob {
	return &HeadBob{cfg: cfg, rest: rest, offset: rest}
}

func (h *HeadBob) Rest() mgl64.Vec3   { return h.rest }
func (h *HeadBob) Offset() mgl64.Vec3 { return h.offset }

// Update computes this frame's camera local position and applies it when a
// camera is bound.
func (h *HeadBob) Update(cam Camera, horizontalVelocity mgl64.Vec2, elapsed, dt float64) mgl64.Vec3 {
	if horizontalVelocity.Len() > h.cfg.BobSpeedThreshold {
		t := elapsed * h.cfg.BobFrequency
		bob := mgl64.Vec3{
			math.Cos(t*0.5) * h.cfg.BobSway,
			math.Sin(t) * h.cfg.BobAmplitude,
			0,
		}
		h.offset = h.rest.Add(bob)
	} else {
		h.offset = gamemath.Lerp(h.offset, h.rest, idleReturnRate*dt)
	}

	if cam != nil {
		cam.SetLocalPosition(h.offset)
	}
	return h.offset
}
