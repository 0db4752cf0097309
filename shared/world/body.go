package world

import (
	"math"

	"github.com/automoto/kidclunk/shared/character"
	"github.com/automoto/kidclunk/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// contactEpsilon absorbs floating point error when comparing heights.
const contactEpsilon = 1e-6

// BodyGeometry is the collision shape of a character body: an upright box
// with a square footprint of side 2*Radius.
type BodyGeometry struct {
	Height     float64             `yaml:"height"`
	Radius     float64             `yaml:"radius"`
	SkinWidth  float64             `yaml:"skinWidth"`
	StepOffset float64             `yaml:"stepOffset"` // obstacles this far above the feet are stepped onto
	Mask       character.LayerMask `yaml:"mask"`
}

// Body is a character body in a Space. It implements character.Body.
type Body struct {
	space    *Space
	geom     BodyGeometry
	object   *resolv.Object
	x, z     float64 // footprint center
	feet     float64
	rotation mgl64.Quat
}

var _ character.Body = (*Body)(nil)

// NewBody places a body with its center at position, facing yaw degrees
// clockwise from -Z.
func (s *Space) NewBody(geom BodyGeometry, position mgl64.Vec3, yaw float64) *Body {
	b := &Body{
		space:    s,
		geom:     geom,
		object:   resolv.NewObject(0, 0, 1, 1, TagBody),
		rotation: mgl64.QuatIdent(),
	}
	b.object.Data = b
	s.space.Add(b.object)
	s.bodies = append(s.bodies, b)
	b.Teleport(position, yaw)
	return b
}

// Remove takes the body out of its space.
func (b *Body) Remove() {
	b.space.space.Remove(b.object)
	for i, other := range b.space.bodies {
		if other == b {
			b.space.bodies = append(b.space.bodies[:i], b.space.bodies[i+1:]...)
			break
		}
	}
}

// Teleport moves the body without collision and resets its heading.
func (b *Body) Teleport(position mgl64.Vec3, yaw float64) {
	b.x, b.z = position.X(), position.Z()
	b.feet = position.Y() - b.geom.Height/2
	b.syncObject()
	b.rotation = mgl64.QuatIdent()
	b.Rotate(yaw)
}

func (b *Body) Geometry() BodyGeometry { return b.geom }
func (b *Body) Height() float64        { return b.geom.Height }
func (b *Body) SkinWidth() float64     { return b.geom.SkinWidth }
func (b *Body) Feet() float64          { return b.feet }
func (b *Body) Rotation() mgl64.Quat   { return b.rotation }

// Position is the center of the body.
func (b *Body) Position() mgl64.Vec3 {
	return mgl64.Vec3{b.x, b.feet + b.geom.Height/2, b.z}
}

func (b *Body) syncObject() {
	size := b.geom.Radius * 2 * UnitsPerMeter
	b.object.X = (b.x - b.geom.Radius) * UnitsPerMeter
	b.object.Y = (b.z - b.geom.Radius) * UnitsPerMeter
	b.object.W, b.object.H = size, size
	b.object.Update()
}

func (b *Body) Forward() mgl64.Vec3 { return b.rotation.Rotate(mgl64.Vec3{0, 0, -1}) }
func (b *Body) Right() mgl64.Vec3   { return b.rotation.Rotate(mgl64.Vec3{1, 0, 0}) }

// Rotate turns the body about world up; positive yaw turns right.
func (b *Body) Rotate(yawDegrees float64) {
	turn := mgl64.QuatRotate(-mgl64.DegToRad(yawDegrees), gamemath.Up)
	b.rotation = turn.Mul(b.rotation).Normalize()
}

// Yaw returns the heading in degrees, clockwise from -Z, in (-180, 180].
func (b *Body) Yaw() float64 {
	f := b.Forward()
	return mgl64.RadToDeg(math.Atan2(f.X(), -f.Z()))
}

// Move resolves a displacement against the world and returns what was
// applied. X and Z are resolved one axis at a time so the body slides along
// walls; Y is resolved last.
func (b *Body) Move(d mgl64.Vec3) mgl64.Vec3 {
	start := b.Position()
	if d.X() != 0 {
		b.moveHorizontal(d.X(), 0)
	}
	if d.Z() != 0 {
		b.moveHorizontal(0, d.Z())
	}
	if d.Y() != 0 {
		b.moveVertical(d.Y())
	}
	return b.Position().Sub(start)
}

func (b *Body) head() float64 { return b.feet + b.geom.Height }

func (b *Body) solid(blk *Block) bool {
	return !blk.Trigger && b.geom.Mask.Has(blk.Layer)
}

// footprint returns the XZ bounds of the body moved by (dx, dz).
func (b *Body) footprint(dx, dz float64) (minX, minZ, maxX, maxZ float64) {
	r := b.geom.Radius
	return b.x + dx - r, b.z + dz - r, b.x + dx + r, b.z + dz + r
}

// swept returns the XZ bounds covered while moving by (dx, dz).
func (b *Body) swept(dx, dz float64) (minX, minZ, maxX, maxZ float64) {
	minX, minZ, maxX, maxZ = b.footprint(0, 0)
	return minX + math.Min(dx, 0), minZ + math.Min(dz, 0), maxX + math.Max(dx, 0), maxZ + math.Max(dz, 0)
}

func (b *Body) moveHorizontal(dx, dz float64) {
	blocks := b.space.candidates(b.swept(dx, dz))
	minX, minZ, maxX, maxZ := b.footprint(0, 0)

	// Clamp against everything in the path that is neither under the feet,
	// above the head, nor low enough to step onto. Blocks the body already
	// overlaps are left alone so it can walk out of them.
	for _, blk := range blocks {
		if !b.solid(blk) || !b.overlapsSpan(blk) || b.canStepOnto(blk) {
			continue
		}
		if !blk.overlapsXZ(b.swept(dx, dz)) || blk.overlapsXZ(minX, minZ, maxX, maxZ) {
			continue
		}
		switch {
		case dx > 0:
			dx = math.Max(0, math.Min(dx, blk.Min.X()-maxX))
		case dx < 0:
			dx = math.Min(0, math.Max(dx, blk.Max.X()-minX))
		case dz > 0:
			dz = math.Max(0, math.Min(dz, blk.Min.Z()-maxZ))
		case dz < 0:
			dz = math.Min(0, math.Max(dz, blk.Max.Z()-minZ))
		}
	}

	// Step up onto whatever low obstacle is under the final footprint.
	step := b.feet
	for _, blk := range blocks {
		if !b.solid(blk) || !b.overlapsSpan(blk) || !b.canStepOnto(blk) {
			continue
		}
		if blk.overlapsXZ(b.footprint(dx, dz)) {
			step = math.Max(step, blk.Top())
		}
	}

	b.x += dx
	b.z += dz
	b.feet = step
	b.syncObject()
}

func (b *Body) moveVertical(dy float64) {
	blocks := b.space.candidates(b.footprint(0, 0))
	if dy < 0 {
		floor := math.Inf(-1)
		for _, blk := range blocks {
			if !b.solid(blk) || !blk.overlapsXZ(b.footprint(0, 0)) {
				continue
			}
			if blk.Top() <= b.feet+b.geom.StepOffset+contactEpsilon && blk.Top() < b.head() {
				floor = math.Max(floor, blk.Top())
			}
		}
		b.feet = math.Max(b.feet+dy, floor)
		return
	}

	ceiling := math.Inf(1)
	for _, blk := range blocks {
		if !b.solid(blk) || !blk.overlapsXZ(b.footprint(0, 0)) {
			continue
		}
		if blk.Bottom() >= b.head()-contactEpsilon {
			ceiling = math.Min(ceiling, blk.Bottom())
		}
	}
	b.feet = math.Min(b.feet+dy, math.Max(b.feet, ceiling-b.geom.Height))
}

// overlapsSpan reports whether the block's vertical span meets the body's.
func (b *Body) overlapsSpan(blk *Block) bool {
	return blk.Top() > b.feet+contactEpsilon && blk.Bottom() < b.head()-contactEpsilon
}

func (b *Body) canStepOnto(blk *Block) bool {
	return blk.Top() <= b.feet+b.geom.StepOffset+contactEpsilon
}
