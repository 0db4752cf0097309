package character

import "github.com/go-gl/mathgl/mgl64"

// Transform is the orientation side of the controlled body. The body owns yaw;
// the controllers only ever rotate it incrementally.
type Transform interface {
	Position() mgl64.Vec3
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
	// Rotate turns the body about world up. Positive yaw turns right.
	Rotate(yawDegrees float64)
}

// Mover resolves displacement requests against the world and reports what was
// actually applied. It also owns the geometry used to place the ground check.
type Mover interface {
	Move(displacement mgl64.Vec3) mgl64.Vec3
	Height() float64
	SkinWidth() float64
}

// Body is the collision-aware character body driven by the rig.
type Body interface {
	Transform
	Mover
}

// TriggerInteraction tells an overlap query whether trigger volumes count.
type TriggerInteraction int

const (
	IgnoreTriggers TriggerInteraction = iota
	CollideTriggers
)

// OverlapQuery answers sphere overlap tests against world geometry.
type OverlapQuery interface {
	OverlapSphere(center mgl64.Vec3, radius float64, mask LayerMask, triggers TriggerInteraction) bool
}

// Camera receives the look pitch and the bob offset in the body's local space.
type Camera interface {
	LocalPosition() mgl64.Vec3
	SetLocalPosition(p mgl64.Vec3)
	SetLocalPitch(degrees float64)
}

// Input is one frame of player intent. Horizontal and Vertical are in [-1, 1];
// Jump is true only on the frame the jump button went down.
type Input struct {
	Horizontal float64
	Vertical   float64
	PointerDX  float64
	PointerDY  float64
	Jump       bool
}

// Frame carries the host clock for one tick.
type Frame struct {
	Delta   float64 // seconds since the previous tick
	Elapsed float64 // seconds since the session started
}
