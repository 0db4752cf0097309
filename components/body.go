package components

import (
	"github.com/automoto/kidclunk/shared/world"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*world.Body
}

var Body = donburi.NewComponentType[BodyData]()
