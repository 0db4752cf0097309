package world

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// riderTolerance is how far feet may sit from a platform top and still ride it.
const riderTolerance = 1e-3

// Platform is a block that travels up and back down forever.
type Platform struct {
	space *Space
	block *Block
	tween *gween.Sequence
}

// NewPlatform adds a block that rises travel meters above its base over
// duration seconds, then returns.
func (s *Space) NewPlatform(def BlockDef, travel, duration float64) *Platform {
	b := s.AddBlock(def)
	base := float32(def.Min.Y())
	tw := gween.NewSequence()
	tw.Add(
		gween.New(base, base+float32(travel), float32(duration), ease.InOutQuad),
		gween.New(base+float32(travel), base, float32(duration), ease.InOutQuad),
	)
	tw.SetLoop(-1)
	return &Platform{space: s, block: b, tween: tw}
}

func (p *Platform) Block() *Block { return p.block }

// Update advances the platform by dt seconds. Bodies standing on it are
// lifted with it; on the way down they follow by falling.
func (p *Platform) Update(dt float64) {
	oldTop := p.block.Top()
	base, _, _ := p.tween.Update(float32(dt))
	p.block.SetBase(float64(base))

	rise := p.block.Top() - oldTop
	if rise <= 0 {
		return
	}
	for _, b := range p.space.bodies {
		if !b.solid(p.block) || !p.block.overlapsXZ(b.footprint(0, 0)) {
			continue
		}
		if math.Abs(b.feet-oldTop) <= riderTolerance {
			b.feet = p.block.Top()
		}
	}
}
