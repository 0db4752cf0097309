package systems

import (
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause and keeps the cursor mode in step with it: the
// cursor is captured while playing and released while paused. Losing window
// focus pauses the game.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	switch {
	case !pause.IsPaused && (GetAction(input, cfg.ActionPause).JustPressed || !ebiten.IsFocused()):
		setPaused(pause, true)
	case pause.IsPaused && GetAction(input, cfg.ActionPause).JustPressed:
		setPaused(pause, false)
	case pause.IsPaused && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.IsFocused():
		setPaused(pause, false)
	case pause.IsPaused && GetAction(input, cfg.ActionQuit).JustPressed:
		pause.QuitRequested = true
	}
}

func setPaused(pause *components.PauseData, paused bool) {
	pause.IsPaused = paused
	if cfg.Debug.NoCapture {
		return
	}
	if paused {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFont := fonts.GoTitle.Get()
	titleWidth := text.BoundString(titleFont, cfg.Pause.Title).Dx()
	text.Draw(screen, cfg.Pause.Title, titleFont, int(width)/2-titleWidth/2, int(height/2), cfg.Pause.TextColor)

	hintFont := fonts.GoSmall.Get()
	hintWidth := text.BoundString(hintFont, cfg.Pause.Hint).Dx()
	text.Draw(screen, cfg.Pause.Hint, hintFont, int(width)/2-hintWidth/2, int(height)-12, cfg.Pause.TextColor)
}

// IsPaused reports whether gameplay is suspended.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// QuitRequested reports whether the player asked to leave from the pause
// screen.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).QuitRequested
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
