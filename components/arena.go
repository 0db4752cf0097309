package components

import (
	"github.com/automoto/kidclunk/shared/world"
	"github.com/yohamta/donburi"
)

// ArenaData is the collision world built from the loaded level.
type ArenaData struct {
	*world.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
