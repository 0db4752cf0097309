package character

import (
	"github.com/automoto/kidclunk/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// desiredEpsilon is the squared speed below which the desired velocity counts
// as "no input" and the decel rate applies.
const desiredEpsilon = 0.001

// MoveInput is the locomotion part of a frame's input.
type MoveInput struct {
	Horizontal float64
	Vertical   float64
	Jump       bool
}

// Step reports what one locomotion update did.
type Step struct {
	Displacement mgl64.Vec3 // total applied by the mover, both passes
	Grounded     bool       // raw ground check result this frame
	Jumped       bool
	LaunchSpeed  float64 // vertical speed set by the jump, 0 when no jump
}

// Locomotion owns horizontal smoothing, gravity, jumping and coyote time.
//
// The ground state machine has two states: grounded, which re-arms the grace
// timer every frame, and airborne, which drains it. A jump is honored while
// the timer is above zero and consumes it.
type Locomotion struct {
	movement  MovementConfig
	grounding GroundingConfig

	horizontal       mgl64.Vec2 // smoothed XZ velocity
	vertical         float64
	groundedRemember float64
	grounded         bool
}

// NewLocomotion starts at rest with no coyote time banked.
func NewLocomotion(movement MovementConfig, grounding GroundingConfig) *Locomotion {
	return &Locomotion{movement: movement, grounding: grounding}
}

func (l *Locomotion) HorizontalVelocity() mgl64.Vec2 { return l.horizontal }
func (l *Locomotion) VerticalVelocity() float64      { return l.vertical }
func (l *Locomotion) GroundedRemember() float64      { return l.groundedRemember }
func (l *Locomotion) Grounded() bool                 { return l.grounded }

// GroundCheckSphere returns where the ground check sphere sits for body.
func (l *Locomotion) GroundCheckSphere(body Body) (center mgl64.Vec3, radius float64) {
	drop := body.Height()*0.5 - body.SkinWidth() - l.grounding.GroundCheckOffset
	return body.Position().Sub(gamemath.Up.Mul(drop)), l.grounding.GroundCheckRadius
}

// Update runs one frame: ground check, grace timer, horizontal move, jump,
// gravity and vertical move. The horizontal and vertical displacements go to
// the mover as two separate requests.
func (l *Locomotion) Update(body Body, ground OverlapQuery, in MoveInput, dt float64) Step {
	var step Step
	if body == nil {
		return step
	}

	l.updateGrounding(l.checkGround(body, ground), dt)
	step.Grounded = l.grounded

	l.updateHorizontal(body, in.Horizontal, in.Vertical, dt)
	step.Displacement = body.Move(gamemath.Lift(l.horizontal.Mul(dt), 0))

	if in.Jump && l.tryJump() {
		step.Jumped = true
		step.LaunchSpeed = l.vertical
	}

	l.updateVertical(dt)
	step.Displacement = step.Displacement.Add(body.Move(mgl64.Vec3{0, l.vertical * dt, 0}))
	return step
}

func (l *Locomotion) checkGround(body Body, ground OverlapQuery) bool {
	if ground == nil {
		return false
	}
	center, radius := l.GroundCheckSphere(body)
	return ground.OverlapSphere(center, radius, l.grounding.GroundMask, IgnoreTriggers)
}

func (l *Locomotion) updateGrounding(grounded bool, dt float64) {
	l.grounded = grounded
	if grounded {
		l.groundedRemember = l.grounding.GroundedRememberTime
		return
	}
	l.groundedRemember -= dt
}

// tryJump launches if the grace timer allows it.
func (l *Locomotion) tryJump() bool {
	if l.groundedRemember <= 0 {
		return false
	}
	l.vertical = gamemath.JumpLaunchSpeed(l.movement.JumpHeight, l.movement.Gravity)
	l.groundedRemember = 0
	return true
}

func (l *Locomotion) updateHorizontal(body Transform, h, v, dt float64) {
	wish := gamemath.Flatten(body.Right().Mul(h).Add(body.Forward().Mul(v)))
	desired := gamemath.NormalizeOrZero(wish).Mul(l.movement.MoveSpeed)

	rate := l.movement.Decel
	if desired.LenSqr() > desiredEpsilon {
		rate = l.movement.Accel
	} else {
		desired = mgl64.Vec2{}
	}
	l.horizontal = gamemath.MoveTowards(l.horizontal, desired, rate*dt)
}

func (l *Locomotion) updateVertical(dt float64) {
	if l.grounded && l.vertical < 0 {
		l.vertical = StickToGroundVelocity
		return
	}
	l.vertical += l.movement.Gravity * dt
}

// Speed is the planar speed of the smoothed velocity.
func (l *Locomotion) Speed() float64 {
	return l.horizontal.Len()
}

// Reset stops all motion and forgets the coyote grace, as after a teleport.
func (l *Locomotion) Reset() {
	l.horizontal = mgl64.Vec2{}
	l.vertical = 0
	l.groundedRemember = 0
	l.grounded = false
}
