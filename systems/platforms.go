package systems

import (
	"github.com/automoto/kidclunk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves every platform along its tween. It runs before the
// character so riders ground on the platform's new top.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := tickDelta()
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		components.Platform.Get(e).Update(dt)
	})
}
