package config

import (
	"image/color"

	"github.com/automoto/kidclunk/shared/character"
	"github.com/automoto/kidclunk/shared/tuning"
	"github.com/automoto/kidclunk/shared/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // fixed update rate; the controllers get 1/TPS as their delta
}

// CameraConfig describes the first-person view
type CameraConfig struct {
	EyeOffset mgl64.Vec3 // camera rest position relative to the body center
	FOV       float64    // vertical field of view in degrees
	Near      float64
	Far       float64
}

// WorldConfig contains arena and collision settings
type WorldConfig struct {
	LevelsDir      string
	DefaultArena   string
	PixelsPerMeter float64 // Tiled pixels per world meter
	CellSize       int     // broadphase cell size in meters
	KillHeight     float64 // bodies whose feet fall below this respawn
}

// RenderConfig contains wireframe colors
type RenderConfig struct {
	Background    color.RGBA
	BlockColor    color.RGBA
	FloorColor    color.RGBA
	PlatformColor color.RGBA
	TriggerColor  color.RGBA
	LineWidth     float32
}

// HUDConfig contains the on-screen readout layout
type HUDConfig struct {
	Margin      float64
	LineHeight  float64
	TextColor   color.RGBA
	ShadowColor color.RGBA
	Crosshair   float32 // half length of the crosshair arms in pixels
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug overlay and command-line options
type DebugConfig struct {
	// Overlay starts the game with the top-down map visible
	Overlay bool
	// MapScale is pixels per meter on the top-down map
	MapScale  float64
	MapMargin float64
	// NoCapture leaves the cursor free, useful under a debugger
	NoCapture bool

	GizmoColor  color.RGBA
	BodyColor   color.RGBA
	GroundColor color.RGBA // ground-check sphere while grounded
	AirColor    color.RGBA // ground-check sphere while airborne
}

// Global configuration instances
var C *Config
var Character character.Config
var Body world.BodyGeometry
var Camera CameraConfig
var World WorldConfig
var Render RenderConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	stock := tuning.Default()
	Character = stock.Character
	Body = stock.Body

	Camera = CameraConfig{
		EyeOffset: mgl64.Vec3{0, 0.6, 0},
		FOV:       70,
		Near:      0.05,
		Far:       120,
	}

	World = WorldConfig{
		LevelsDir:      "levels",
		DefaultArena:   "arena",
		PixelsPerMeter: 16,
		CellSize:       2,
		KillHeight:     -10,
	}

	Render = RenderConfig{
		Background:    color.RGBA{R: 12, G: 14, B: 24, A: 255},
		BlockColor:    LightBlue,
		FloorColor:    Grey,
		PlatformColor: Orange,
		TriggerColor:  color.RGBA{R: 255, G: 0, B: 255, A: 120},
		LineWidth:     1,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineHeight:  14,
		TextColor:   White,
		ShadowColor: Black,
		Crosshair:   6,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "Paused",
		Hint:         "Click or Esc to resume   Q to quit",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:     false,
		MapScale:    5,
		MapMargin:   10,
		NoCapture:   false,
		GizmoColor:  Yellow,
		BodyColor:   LightGreen,
		GroundColor: Green,
		AirColor:    LightRed,
	}
}
