package factory

import (
	"github.com/automoto/kidclunk/archetypes"
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/shared/character"
	"github.com/automoto/kidclunk/shared/view"
	"github.com/automoto/kidclunk/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places a body at the arena spawn and mounts a camera and the
// character controllers on it.
func CreatePlayer(ecs *ecs.ECS, arena *world.Arena, spawnIndex int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	position, yaw := arena.SpawnPosition(spawnIndex, cfg.Body)
	body := arena.NewBody(cfg.Body, position, yaw)
	components.Body.SetValue(player, components.BodyData{Body: body})

	cam := view.NewCamera(cfg.Camera.EyeOffset, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	components.Camera.SetValue(player, components.CameraData{Camera: cam})

	components.Character.SetValue(player, components.CharacterData{
		Rig:             character.NewRig(cfg.Character, body, arena, cam),
		RespawnPosition: position,
		RespawnYaw:      yaw,
	})

	return player
}
