package systems

import (
	"fmt"

	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/fonts"
	"github.com/automoto/kidclunk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's movement readout in the top-left corner. The
// controller internals are only listed while the debug overlay is on.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := components.Character.Get(entry)
	body := components.Body.Get(entry)
	settings := GetOrCreateSettings(ecs)

	lines := []string{
		fmt.Sprintf("speed %.2f m/s", c.Rig.Locomotion.Speed()),
		fmt.Sprintf("sensitivity %.0f  invert %v", settings.MouseSensitivity, settings.InvertY),
	}
	if c.Checkpoint != "" {
		lines = append(lines, fmt.Sprintf("checkpoint %s  respawns %d", c.Checkpoint, c.Respawns))
	}
	if settings.Debug {
		pos := body.Position()
		lines = append(lines,
			fmt.Sprintf("pos %.2f %.2f %.2f", pos.X(), body.Feet(), pos.Z()),
			fmt.Sprintf("yaw %.1f  pitch %.1f", body.Yaw(), c.Last.Pitch),
			fmt.Sprintf("grounded %v  remember %.3f", c.Last.Grounded, c.Last.GroundedRemember),
			fmt.Sprintf("vy %.2f  jumped %v", c.Last.VerticalVelocity, c.Last.Jumped),
			fmt.Sprintf("bob %.3f %.3f", c.Last.CameraOffset.X(), c.Last.CameraOffset.Y()),
		)
	}

	face := fonts.GoMono.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	for _, line := range lines {
		text.Draw(screen, line, face, x+1, y+1, cfg.HUD.ShadowColor)
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
		y += int(cfg.HUD.LineHeight)
	}
}
