package factory

import (
	"github.com/automoto/kidclunk/archetypes"
	"github.com/automoto/kidclunk/components"
	"github.com/automoto/kidclunk/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns an entity for a moving platform. The platform rides
// its own tween up and down; UpdatePlatforms advances it.
func CreatePlatform(ecs *ecs.ECS, platform *world.Platform) *donburi.Entry {
	entry := archetypes.Platform.Spawn(ecs)
	components.Platform.SetValue(entry, components.PlatformData{Platform: platform})
	return entry
}
