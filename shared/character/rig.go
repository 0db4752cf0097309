// Package character is the per-frame first person controller: mouse look,
// locomotion with coyote-time jumping, and camera head bob. Everything the
// controller touches in the world (the body mover, the ground overlap query,
// the camera) is passed in through the interfaces in collaborators.go, so the
// package runs the same under the game host, the headless simulator and tests.
package character

import "github.com/go-gl/mathgl/mgl64"

// Output is everything one tick produced.
type Output struct {
	YawDelta           float64
	Pitch              float64
	Displacement       mgl64.Vec3
	HorizontalVelocity mgl64.Vec2
	VerticalVelocity   float64
	Grounded           bool
	GroundedRemember   float64
	Jumped             bool
	LaunchSpeed        float64
	CameraOffset       mgl64.Vec3
}

// Rig runs the three controllers for one body in a fixed order:
// look, then locomotion, then head bob.
type Rig struct {
	Look       *Look
	Locomotion *Locomotion
	HeadBob    *HeadBob

	body   Body
	ground OverlapQuery
	camera Camera
}

// NewRig builds the controllers for body. The camera's current local position
// becomes the head bob rest offset. camera may be nil.
func NewRig(cfg Config, body Body, ground OverlapQuery, camera Camera) *Rig {
	var rest mgl64.Vec3
	if camera != nil {
		rest = camera.LocalPosition()
	}
	return &Rig{
		Look:       NewLook(cfg.Look),
		Locomotion: NewLocomotion(cfg.Movement, cfg.Grounding),
		HeadBob:    NewHeadBob(cfg.HeadBob, rest),
		body:       body,
		ground:     ground,
		camera:     camera,
	}
}

// Tick advances the rig by one frame.
func (r *Rig) Tick(f Frame, in Input) Output {
	var out Output

	out.YawDelta, out.Pitch = r.Look.Update(r.body, r.camera, in.PointerDX, in.PointerDY, f.Delta)

	step := r.Locomotion.Update(r.body, r.ground, MoveInput{
		Horizontal: in.Horizontal,
		Vertical:   in.Vertical,
		Jump:       in.Jump,
	}, f.Delta)
	out.Displacement = step.Displacement
	out.Grounded = step.Grounded
	out.Jumped = step.Jumped
	out.LaunchSpeed = step.LaunchSpeed
	out.HorizontalVelocity = r.Locomotion.HorizontalVelocity()
	out.VerticalVelocity = r.Locomotion.VerticalVelocity()
	out.GroundedRemember = r.Locomotion.GroundedRemember()

	out.CameraOffset = r.HeadBob.Update(r.camera, out.HorizontalVelocity, f.Elapsed, f.Delta)
	return out
}

// GroundCheckSphere exposes the ground check placement for debug drawing.
func (r *Rig) GroundCheckSphere() (center mgl64.Vec3, radius float64) {
	if r.body == nil {
		return mgl64.Vec3{}, 0
	}
	return r.Locomotion.GroundCheckSphere(r.body)
}
