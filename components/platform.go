package components

import (
	"github.com/automoto/kidclunk/shared/world"
	"github.com/yohamta/donburi"
)

// PlatformData is a moving platform. Its block lives in the arena; the
// platform owns the tween that moves it.
type PlatformData struct {
	*world.Platform
}

var Platform = donburi.NewComponentType[PlatformData]()
