package systems

import (
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/shared/character"
	"github.com/automoto/kidclunk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacter feeds this tick's input to every player rig.
func UpdateCharacter(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)
	clock := GetOrCreateClock(ecs)

	in := characterInput(input, settings)
	frame := character.Frame{Delta: tickDelta(), Elapsed: clock.Elapsed}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		c.Last = c.Rig.Tick(frame, in)
	})
}

func characterInput(input *components.InputData, settings *components.SettingsData) character.Input {
	dy := input.LookY
	if settings.InvertY {
		dy = -dy
	}
	return character.Input{
		Horizontal: input.Horizontal,
		Vertical:   input.Vertical,
		PointerDX:  input.LookX,
		PointerDY:  dy,
		Jump:       GetAction(input, cfg.ActionJump).JustPressed,
	}
}
