package components

import (
	"github.com/automoto/kidclunk/shared/character"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CharacterData drives a body with the look, locomotion and head bob
// controllers.
type CharacterData struct {
	Rig  *character.Rig
	Last character.Output // result of the most recent tick

	// Respawn point: the arena spawn at first, then the last checkpoint
	// touched.
	RespawnPosition mgl64.Vec3
	RespawnYaw      float64
	Checkpoint      string
	Respawns        int
}

var Character = donburi.NewComponentType[CharacterData]()
