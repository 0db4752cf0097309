package systems

import (
	"image/color"
	"math"

	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/shared/view"
	"github.com/automoto/kidclunk/shared/world"
	"github.com/automoto/kidclunk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// floorGridSpacing is the distance in meters between floor grid lines.
const floorGridSpacing = 2.0

// DrawArena renders the arena as wireframe boxes seen through the first
// player's camera.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	arena, ok := getArena(ecs)
	if !ok {
		return
	}
	proj, ok := playerProjector(ecs, screen)
	if !ok {
		return
	}

	platforms := map[*world.Block]bool{}
	for _, p := range arena.Platforms {
		platforms[p.Block()] = true
	}

	for _, b := range arena.Blocks() {
		clr := blockColor(b, platforms[b])
		if isFloor(b) {
			drawFloorGrid(screen, proj, b, clr)
		}
		for _, edge := range view.BoxEdges(b.Min, b.Max) {
			drawSegment(screen, proj, edge[0], edge[1], clr)
		}
	}
}

// DrawCrosshair marks the screen center.
func DrawCrosshair(ecs *ecs.ECS, screen *ebiten.Image) {
	cx := float32(screen.Bounds().Dx()) / 2
	cy := float32(screen.Bounds().Dy()) / 2
	arm := cfg.HUD.Crosshair
	vector.StrokeLine(screen, cx-arm, cy, cx+arm, cy, 1, cfg.HUD.TextColor, false)
	vector.StrokeLine(screen, cx, cy-arm, cx, cy+arm, 1, cfg.HUD.TextColor, false)
}

func playerProjector(ecs *ecs.ECS, screen *ebiten.Image) (view.Projector, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return view.Projector{}, false
	}
	body := components.Body.Get(entry)
	cam := components.Camera.Get(entry)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	return view.NewProjector(cam.Camera, body.Position(), body.Rotation(), w, h), true
}

func blockColor(b *world.Block, platform bool) color.RGBA {
	switch {
	case b.Trigger:
		return cfg.Render.TriggerColor
	case platform:
		return cfg.Render.PlatformColor
	case isFloor(b):
		return cfg.Render.FloorColor
	default:
		return cfg.Render.BlockColor
	}
}

func isFloor(b *world.Block) bool {
	return !b.Trigger && b.Top() <= 0
}

// drawFloorGrid draws lines across the top of a floor block so movement reads
// on an otherwise empty plane.
func drawFloorGrid(screen *ebiten.Image, proj view.Projector, b *world.Block, clr color.RGBA) {
	y := b.Top()
	for x := math.Ceil(b.Min.X()/floorGridSpacing) * floorGridSpacing; x < b.Max.X(); x += floorGridSpacing {
		drawSegment(screen, proj, mgl64.Vec3{x, y, b.Min.Z()}, mgl64.Vec3{x, y, b.Max.Z()}, clr)
	}
	for z := math.Ceil(b.Min.Z()/floorGridSpacing) * floorGridSpacing; z < b.Max.Z(); z += floorGridSpacing {
		drawSegment(screen, proj, mgl64.Vec3{b.Min.X(), y, z}, mgl64.Vec3{b.Max.X(), y, z}, clr)
	}
}

func drawSegment(screen *ebiten.Image, proj view.Projector, a, b mgl64.Vec3, clr color.RGBA) {
	seg, ok := proj.Segment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen,
		float32(seg.X0), float32(seg.Y0),
		float32(seg.X1), float32(seg.Y1),
		cfg.Render.LineWidth, clr, true)
}
