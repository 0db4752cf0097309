package systems

import (
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances gameplay time by one fixed tick.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Ticks++
	clock.Elapsed += tickDelta()
}

func tickDelta() float64 {
	return 1.0 / float64(cfg.C.TPS)
}

// GetOrCreateClock returns the singleton clock component.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{})
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}
