package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// BlockDef describes an axis aligned box to add to a Space.
type BlockDef struct {
	Name    string
	Min     mgl64.Vec3
	Max     mgl64.Vec3
	Layer   int
	Trigger bool // trigger volumes never block the body
}

// Block is a box in the world. Its XZ footprint is mirrored into the resolv
// space for broadphase lookups.
type Block struct {
	Name    string
	Min     mgl64.Vec3
	Max     mgl64.Vec3
	Layer   int
	Trigger bool

	id     int
	object *resolv.Object
}

func (b *Block) Top() float64    { return b.Max.Y() }
func (b *Block) Bottom() float64 { return b.Min.Y() }
func (b *Block) Height() float64 { return b.Max.Y() - b.Min.Y() }

// SetBase moves the block vertically so its bottom sits at y.
func (b *Block) SetBase(y float64) {
	h := b.Height()
	b.Min[1] = y
	b.Max[1] = y + h
}

// syncObject mirrors the footprint into the broadphase.
func (b *Block) syncObject() {
	b.object.X = b.Min.X() * UnitsPerMeter
	b.object.Y = b.Min.Z() * UnitsPerMeter
	b.object.W = (b.Max.X() - b.Min.X()) * UnitsPerMeter
	b.object.H = (b.Max.Z() - b.Min.Z()) * UnitsPerMeter
	b.object.Update()
}

// overlapsXZ reports whether the footprint [minX,maxX]x[minZ,maxZ] overlaps
// the block's footprint. Touching edges do not count.
func (b *Block) overlapsXZ(minX, minZ, maxX, maxZ float64) bool {
	return minX < b.Max.X() && b.Min.X() < maxX && minZ < b.Max.Z() && b.Min.Z() < maxZ
}

// distanceSqToPoint is the squared distance from p to the closest point of
// the block.
func (b *Block) distanceSqToPoint(p mgl64.Vec3) float64 {
	var d float64
	for i := 0; i < 3; i++ {
		c := mgl64.Clamp(p[i], b.Min[i], b.Max[i])
		d += (p[i] - c) * (p[i] - c)
	}
	return d
}
