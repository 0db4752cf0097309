package components

import (
	"github.com/automoto/kidclunk/shared/view"
	"github.com/yohamta/donburi"
)

// CameraData is the head of a player: a view.Camera mounted on its body.
type CameraData struct {
	*view.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
