package factory

import (
	"github.com/automoto/kidclunk/archetypes"
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/shared/leveldata"
	"github.com/automoto/kidclunk/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the collision world for a level and spawns an entity
// for it and for each of its moving platforms.
func CreateArena(ecs *ecs.ECS, level *leveldata.Arena) *donburi.Entry {
	arena := world.BuildArena(level, cfg.World.CellSize)

	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: arena})

	for _, p := range arena.Platforms {
		CreatePlatform(ecs, p)
	}
	return entry
}
