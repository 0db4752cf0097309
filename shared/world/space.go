// Package world is the collision side of the character: a resolv space of
// axis aligned blocks, a body that resolves move requests against them, and a
// sphere overlap query for ground checks. Y is up; resolv's 2D plane holds the
// XZ footprints and each block keeps its own vertical span.
package world

import (
	"sort"

	"github.com/automoto/kidclunk/shared/character"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// UnitsPerMeter scales meters into the resolv grid. Debug drawing divides
// resolv coordinates by it to get back to meters.
const UnitsPerMeter = 16

// Resolv tags.
const (
	TagBlock   = "block"
	TagTrigger = "trigger"
	TagBody    = "body"
	TagProbe   = "probe"
)

type Space struct {
	space  *resolv.Space
	blocks []*Block
	bodies []*Body
	probe  *resolv.Object
	width  float64
	depth  float64
	nextID int
}

// NewSpace creates an empty world covering [0,width]x[0,depth] in XZ, split
// into square broadphase cells of cellSize meters.
func NewSpace(width, depth, cellSize int) *Space {
	s := &Space{
		space: resolv.NewSpace(width*UnitsPerMeter, depth*UnitsPerMeter, cellSize*UnitsPerMeter, cellSize*UnitsPerMeter),
		width: float64(width),
		depth: float64(depth),
	}
	s.probe = resolv.NewObject(0, 0, 1, 1, TagProbe)
	s.space.Add(s.probe)
	return s
}

func (s *Space) Width() float64   { return s.width }
func (s *Space) Depth() float64   { return s.depth }
func (s *Space) Blocks() []*Block { return s.blocks }

// Resolv exposes the broadphase space for debug drawing.
func (s *Space) Resolv() *resolv.Space { return s.space }

// AddBlock inserts a box and returns it.
func (s *Space) AddBlock(def BlockDef) *Block {
	s.nextID++
	b := &Block{
		id:      s.nextID,
		Name:    def.Name,
		Min:     def.Min,
		Max:     def.Max,
		Layer:   def.Layer,
		Trigger: def.Trigger,
	}
	tags := []string{TagBlock}
	if def.Trigger {
		tags = append(tags, TagTrigger)
	}
	b.object = resolv.NewObject(0, 0, 1, 1, tags...)
	b.object.Data = b
	b.syncObject()
	s.space.Add(b.object)
	s.blocks = append(s.blocks, b)
	return b
}

// RemoveBlock takes a block out of the world.
func (s *Space) RemoveBlock(b *Block) {
	s.space.Remove(b.object)
	for i, other := range s.blocks {
		if other == b {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			break
		}
	}
}

// OverlapSphere reports whether a sphere touches any block on a layer in mask.
// Trigger blocks count only with CollideTriggers.
func (s *Space) OverlapSphere(center mgl64.Vec3, radius float64, mask character.LayerMask, triggers character.TriggerInteraction) bool {
	candidates := s.candidates(center.X()-radius, center.Z()-radius, center.X()+radius, center.Z()+radius)
	for _, b := range candidates {
		if !mask.Has(b.Layer) {
			continue
		}
		if b.Trigger && triggers == character.IgnoreTriggers {
			continue
		}
		if b.distanceSqToPoint(center) <= radius*radius {
			return true
		}
	}
	return false
}

// TriggersAt returns the trigger blocks a sphere touches, in insertion order.
func (s *Space) TriggersAt(center mgl64.Vec3, radius float64) []*Block {
	var hits []*Block
	for _, b := range s.candidates(center.X()-radius, center.Z()-radius, center.X()+radius, center.Z()+radius) {
		if b.Trigger && b.distanceSqToPoint(center) <= radius*radius {
			hits = append(hits, b)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].id < hits[j].id })
	return hits
}

// candidates returns the blocks sharing broadphase cells with the XZ
// rectangle. The probe is padded by one grid unit on every side since resolv
// rounds object bounds to whole units.
func (s *Space) candidates(minX, minZ, maxX, maxZ float64) []*Block {
	s.probe.X = minX*UnitsPerMeter - 1
	s.probe.Y = minZ*UnitsPerMeter - 1
	s.probe.W = (maxX-minX)*UnitsPerMeter + 2
	s.probe.H = (maxZ-minZ)*UnitsPerMeter + 2
	s.probe.Update()

	check := s.probe.Check(0, 0, TagBlock)
	if check == nil {
		return nil
	}
	objects := check.ObjectsByTags(TagBlock)
	blocks := make([]*Block, 0, len(objects))
	for _, o := range objects {
		if b, ok := o.Data.(*Block); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
