package systems

import (
	"log"

	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/shared/world"
	"github.com/automoto/kidclunk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints moves a player's respawn point to any checkpoint trigger
// they are touching.
func UpdateCheckpoints(ecs *ecs.ECS) {
	arena, ok := getArena(ecs)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		c := components.Character.Get(e)

		for _, trigger := range arena.TriggersAt(body.Position(), body.Geometry().Radius) {
			if trigger.Name == c.Checkpoint {
				continue
			}
			c.Checkpoint = trigger.Name
			c.RespawnPosition = checkpointPosition(trigger, body.Height())
			c.RespawnYaw = body.Yaw()
			log.Printf("Checkpoint %q reached", trigger.Name)
		}
	})
}

// UpdateRespawn returns players that fell below the kill height to their
// respawn point.
func UpdateRespawn(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Feet() >= cfg.World.KillHeight {
			return
		}

		c := components.Character.Get(e)
		body.Teleport(c.RespawnPosition, c.RespawnYaw)
		c.Rig.Locomotion.Reset()
		c.Respawns++
	})
}

// checkpointPosition is the body center standing at the middle of a trigger's
// floor.
func checkpointPosition(trigger *world.Block, bodyHeight float64) mgl64.Vec3 {
	center := trigger.Min.Add(trigger.Max).Mul(0.5)
	return mgl64.Vec3{center.X(), trigger.Bottom() + bodyHeight/2, center.Z()}
}

func getArena(ecs *ecs.ECS) (*world.Arena, bool) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Arena.Get(entry).Arena, true
}
