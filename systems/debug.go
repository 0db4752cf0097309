package systems

import (
	"image/color"

	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/shared/world"
	"github.com/automoto/kidclunk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug draws a top-down map of the collision space in the bottom-right
// corner: every resolv object, each player's footprint, facing and ground
// check sphere.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	arena, ok := getArena(ecs)
	if !ok {
		return
	}

	scale := cfg.Debug.MapScale
	mapW := arena.Width() * scale
	mapH := arena.Depth() * scale
	originX := float64(screen.Bounds().Dx()) - cfg.Debug.MapMargin - mapW
	originY := float64(screen.Bounds().Dy()) - cfg.Debug.MapMargin - mapH

	// toMap converts world XZ meters to screen pixels. North (-Z) is up.
	toMap := func(x, z float64) (float32, float32) {
		return float32(originX + x*scale), float32(originY + z*scale)
	}

	vector.FillRect(screen, float32(originX), float32(originY), float32(mapW), float32(mapH), cfg.Pause.OverlayColor, false)

	// Resolv coordinates are meters scaled by UnitsPerMeter.
	for _, obj := range arena.Resolv().Objects() {
		var c color.RGBA
		switch {
		case obj.HasTags(world.TagTrigger):
			c = cfg.Render.TriggerColor
		case obj.HasTags(world.TagBlock):
			c = cfg.Render.BlockColor
		case obj.HasTags(world.TagBody):
			c = cfg.Debug.BodyColor
		default:
			continue
		}
		x, y := toMap(obj.X/world.UnitsPerMeter, obj.Y/world.UnitsPerMeter)
		w := float32(obj.W / world.UnitsPerMeter * scale)
		h := float32(obj.H / world.UnitsPerMeter * scale)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		c := components.Character.Get(e)

		pos := body.Position()
		px, py := toMap(pos.X(), pos.Z())
		facing := pos.Add(body.Forward().Mul(1.5))
		fx, fy := toMap(facing.X(), facing.Z())
		vector.StrokeLine(screen, px, py, fx, fy, 1, cfg.Debug.GizmoColor, true)

		center, radius := c.Rig.GroundCheckSphere()
		gx, gy := toMap(center.X(), center.Z())
		clr := cfg.Debug.AirColor
		if c.Last.Grounded {
			clr = cfg.Debug.GroundColor
		}
		vector.StrokeCircle(screen, gx, gy, float32(radius*scale), 1, clr, true)
	})
}
