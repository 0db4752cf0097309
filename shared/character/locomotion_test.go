package character

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestLocomotion() *Locomotion {
	cfg := DefaultConfig()
	return NewLocomotion(cfg.Movement, cfg.Grounding)
}

func TestLocomotion_GroundedResetsGrace(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()

	loco.Update(body, always(false), MoveInput{}, 0.03)
	loco.Update(body, always(true), MoveInput{}, 0.03)

	approxEqual(t, loco.GroundedRemember(), 0.08, 0, "groundedRemember")
	if !loco.Grounded() {
		t.Fatalf("grounded = false, want true")
	}
}

func TestLocomotion_AirborneGraceNeverIncreases(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()
	loco.Update(body, always(true), MoveInput{}, 1.0/60)

	prev := loco.GroundedRemember()
	for i := 0; i < 30; i++ {
		loco.Update(body, always(false), MoveInput{}, 1.0/60)
		if loco.GroundedRemember() > prev {
			t.Fatalf("frame %d: grace increased %.5f -> %.5f", i, prev, loco.GroundedRemember())
		}
		prev = loco.GroundedRemember()
	}
}

func TestLocomotion_JumpSetsLaunchSpeedAndConsumesGrace(t *testing.T) {
	loco := newTestLocomotion()
	loco.groundedRemember = 0.05

	if !loco.tryJump() {
		t.Fatalf("tryJump = false, want true")
	}
	approxEqual(t, loco.VerticalVelocity(), math.Sqrt(1.6*2*13), 1e-12, "verticalVelocity")
	approxEqual(t, loco.VerticalVelocity(), 6.45, 0.01, "verticalVelocity")
	approxEqual(t, loco.GroundedRemember(), 0, 0, "groundedRemember")

	if loco.tryJump() {
		t.Fatalf("second tryJump in the same window succeeded")
	}
}

func TestLocomotion_JumpRejectedWithoutGrace(t *testing.T) {
	for _, remember := range []float64{0, -0.001, -1} {
		loco := newTestLocomotion()
		loco.groundedRemember = remember
		loco.vertical = -3
		if loco.tryJump() {
			t.Fatalf("tryJump accepted with groundedRemember=%.3f", remember)
		}
		approxEqual(t, loco.VerticalVelocity(), -3, 0, "verticalVelocity")
	}
}

func TestLocomotion_GroundedJumpScenario(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()
	dt := 1.0 / 60

	step := loco.Update(body, always(true), MoveInput{Jump: true}, dt)

	if !step.Jumped {
		t.Fatalf("jumped = false, want true")
	}
	approxEqual(t, step.LaunchSpeed, math.Sqrt(1.6*26), 1e-12, "launchSpeed")
	// Gravity integrates in the same frame as the launch.
	approxEqual(t, loco.VerticalVelocity(), step.LaunchSpeed-13*dt, 1e-12, "verticalVelocity")
	approxEqual(t, loco.GroundedRemember(), 0, 0, "groundedRemember")
}

func TestLocomotion_CoyoteTime(t *testing.T) {
	tests := []struct {
		name      string
		airFrames int
		wantJump  bool
	}{
		{"jump 0.05s after leaving ground", 5, true},
		{"jump 0.09s after leaving ground", 9, false},
	}
	const dt = 0.01
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loco := newTestLocomotion()
			body := newFakeBody()
			loco.Update(body, always(true), MoveInput{}, dt)
			approxEqual(t, loco.GroundedRemember(), 0.08, 0, "groundedRemember")

			for i := 0; i < tt.airFrames-1; i++ {
				loco.Update(body, always(false), MoveInput{}, dt)
			}
			step := loco.Update(body, always(false), MoveInput{Jump: true}, dt)
			if step.Jumped != tt.wantJump {
				t.Fatalf("jumped = %v, want %v (groundedRemember %.4f)", step.Jumped, tt.wantJump, loco.GroundedRemember())
			}
		})
	}
}

func TestLocomotion_AccelerationScenario(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()
	dt := 1.0 / 60

	reachedAt := -1.0
	prev := 0.0
	for i := 1; i <= 120; i++ {
		loco.Update(body, always(true), MoveInput{Vertical: 1}, dt)
		speed := loco.Speed()
		if speed-prev > 10*dt+1e-9 {
			t.Fatalf("frame %d: speed jumped by %.5f, limit %.5f", i, speed-prev, 10*dt)
		}
		if speed > 7.5+1e-9 {
			t.Fatalf("frame %d: speed %.5f overshoots 7.5", i, speed)
		}
		if reachedAt < 0 && speed >= 7.49 {
			reachedAt = float64(i) * dt
		}
		prev = speed
	}

	if reachedAt < 0 || reachedAt > 0.76 {
		t.Fatalf("reached 7.49 m/s at %.3fs, want within ~0.75s", reachedAt)
	}
	approxEqual(t, loco.Speed(), 7.5, 1e-9, "plateau speed")

	// Forward is -Z for an unrotated body.
	v := loco.HorizontalVelocity()
	approxEqual(t, v.X(), 0, 1e-9, "velocity.x")
	approxEqual(t, v.Y(), -7.5, 1e-9, "velocity.z")
}

func TestLocomotion_DecelerationMonotonic(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()
	dt := 1.0 / 60
	loco.horizontal = mgl64.Vec2{4, -3}

	prev := loco.Speed()
	for i := 0; i < 60; i++ {
		loco.Update(body, always(true), MoveInput{}, dt)
		speed := loco.Speed()
		if speed > prev {
			t.Fatalf("frame %d: speed grew %.5f -> %.5f", i, prev, speed)
		}
		if prev-speed > 12*dt+1e-9 {
			t.Fatalf("frame %d: speed dropped by %.5f, limit %.5f", i, prev-speed, 12*dt)
		}
		prev = speed
	}
	if loco.Speed() != 0 {
		t.Fatalf("speed = %.6f, want 0", loco.Speed())
	}
}

func TestLocomotion_DiagonalInputIsNormalized(t *testing.T) {
	loco := newTestLocomotion()
	loco.movement.Accel = 1e6
	body := newFakeBody()

	loco.Update(body, always(true), MoveInput{Horizontal: 1, Vertical: 1}, 1.0/60)
	approxEqual(t, loco.Speed(), 7.5, 1e-9, "speed")
}

func TestLocomotion_HorizontalFollowsBodyYaw(t *testing.T) {
	loco := newTestLocomotion()
	loco.movement.Accel = 1e6
	body := newFakeBody()
	body.yaw = 90

	loco.Update(body, always(true), MoveInput{Vertical: 1}, 1.0/60)
	v := loco.HorizontalVelocity()
	approxEqual(t, v.X(), 7.5, 1e-9, "velocity.x")
	approxEqual(t, v.Y(), 0, 1e-9, "velocity.z")
}

func TestLocomotion_StickToGround(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()
	loco.vertical = -8

	loco.Update(body, always(true), MoveInput{}, 1.0/60)
	approxEqual(t, loco.VerticalVelocity(), StickToGroundVelocity, 0, "verticalVelocity")

	loco.Update(body, always(true), MoveInput{}, 1.0/60)
	approxEqual(t, loco.VerticalVelocity(), StickToGroundVelocity, 0, "verticalVelocity")
}

func TestLocomotion_GravityWhileAirborne(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()
	dt := 0.02

	loco.Update(body, always(false), MoveInput{}, dt)
	loco.Update(body, always(false), MoveInput{}, dt)
	approxEqual(t, loco.VerticalVelocity(), -13*2*dt, 1e-12, "verticalVelocity")
}

func TestLocomotion_TwoSeparateMoves(t *testing.T) {
	loco := newTestLocomotion()
	loco.horizontal = mgl64.Vec2{3, 0}
	body := newFakeBody()
	dt := 0.1

	loco.Update(body, always(false), MoveInput{Horizontal: 1}, dt)

	if len(body.moves) != 2 {
		t.Fatalf("moves = %d, want 2", len(body.moves))
	}
	h, v := body.moves[0], body.moves[1]
	if h.Y() != 0 {
		t.Fatalf("horizontal move has vertical part %.4f", h.Y())
	}
	if v.X() != 0 || v.Z() != 0 {
		t.Fatalf("vertical move has horizontal part %v", v)
	}
	approxEqual(t, v.Y(), -13*dt*dt, 1e-12, "vertical displacement")
}

func TestLocomotion_VelocityIgnoresBlockedMove(t *testing.T) {
	loco := newTestLocomotion()
	loco.horizontal = mgl64.Vec2{5, 0}
	body := &blockedBody{fakeBody: newFakeBody()}

	step := loco.Update(body, always(true), MoveInput{Horizontal: 1}, 0.1)

	if step.Displacement.X() != 0 {
		t.Fatalf("displacement.x = %.4f, want 0 when blocked", step.Displacement.X())
	}
	if loco.HorizontalVelocity().X() <= 5 {
		t.Fatalf("velocity.x = %.4f, want it to keep accelerating", loco.HorizontalVelocity().X())
	}
}

func TestLocomotion_GroundCheckPlacement(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()
	body.pos = mgl64.Vec3{3, 5, -2}
	ground := always(true)

	loco.Update(body, ground, MoveInput{}, 0.01)

	want := mgl64.Vec3{3, 5 - (1 - 0.08 - 0.1), -2}
	approxVec3(t, ground.last.center, want, 1e-12, "ground check center")
	approxEqual(t, ground.last.radius, 0.25, 0, "radius")
	if ground.last.mask != AllLayers {
		t.Fatalf("mask = %x, want all layers", ground.last.mask)
	}
	if ground.last.trig != IgnoreTriggers {
		t.Fatalf("trigger interaction = %v, want IgnoreTriggers", ground.last.trig)
	}
}

func TestLocomotion_NilGroundIsAirborne(t *testing.T) {
	loco := newTestLocomotion()
	step := loco.Update(newFakeBody(), nil, MoveInput{}, 0.01)
	if step.Grounded {
		t.Fatalf("grounded = true with no ground query")
	}
}

// blockedBody refuses every horizontal move.
type blockedBody struct {
	*fakeBody
}

func (b *blockedBody) Move(d mgl64.Vec3) mgl64.Vec3 {
	d[0], d[2] = 0, 0
	return b.fakeBody.Move(d)
}

func TestLocomotion_Reset(t *testing.T) {
	loco := newTestLocomotion()
	body := newFakeBody()
	for i := 0; i < 20; i++ {
		loco.Update(body, always(true), MoveInput{Vertical: 1}, 0.01)
	}
	loco.Update(body, always(true), MoveInput{Jump: true}, 0.01)

	loco.Reset()

	if loco.Speed() != 0 || loco.VerticalVelocity() != 0 || loco.GroundedRemember() != 0 || loco.Grounded() {
		t.Fatalf("after Reset: speed=%v vertical=%v grace=%v grounded=%v",
			loco.Speed(), loco.VerticalVelocity(), loco.GroundedRemember(), loco.Grounded())
	}
}
