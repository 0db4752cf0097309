package world

import (
	"math"

	"github.com/automoto/kidclunk/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

// Arena is a Space populated from level data.
type Arena struct {
	*Space
	Name      string
	Platforms []*Platform
	Triggers  []*Block
	Spawns    []leveldata.Spawn
}

// BuildArena creates a Space holding every block, platform and trigger of
// the level.
func BuildArena(level *leveldata.Arena, cellSize int) *Arena {
	s := NewSpace(int(math.Ceil(level.Width)), int(math.Ceil(level.Depth)), cellSize)
	a := &Arena{Space: s, Name: level.Name, Spawns: level.Spawns}

	for _, box := range level.Blocks {
		s.AddBlock(boxDef(box, false))
	}
	for _, p := range level.Platforms {
		a.Platforms = append(a.Platforms, s.NewPlatform(boxDef(p.Box, false), p.Travel, p.Duration))
	}
	for _, box := range level.Triggers {
		a.Triggers = append(a.Triggers, s.AddBlock(boxDef(box, true)))
	}
	return a
}

// Update advances the moving parts of the arena by dt seconds.
func (a *Arena) Update(dt float64) {
	for _, p := range a.Platforms {
		p.Update(dt)
	}
}

// SpawnPosition returns the body center and yaw for spawn index i, wrapping
// around when there are fewer spawns than players.
func (a *Arena) SpawnPosition(i int, geom BodyGeometry) (mgl64.Vec3, float64) {
	sp := a.Spawns[i%len(a.Spawns)]
	return mgl64.Vec3{sp.X, sp.Y + geom.Height/2, sp.Z}, sp.Yaw
}

func boxDef(box leveldata.Box, trigger bool) BlockDef {
	return BlockDef{
		Name:    box.Name,
		Min:     mgl64.Vec3{box.X, box.Base, box.Z},
		Max:     mgl64.Vec3{box.X + box.Width, box.Base + box.Height, box.Z + box.Depth},
		Layer:   box.Layer,
		Trigger: trigger,
	}
}
