package archetypes

import (
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
	)
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Character,
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
