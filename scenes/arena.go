package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/kidclunk/assets"
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/systems"
	"github.com/automoto/kidclunk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is a single player walking around one arena.
type ArenaScene struct {
	ecs        *ecs.ECS
	arenaName  string
	spawnIndex int
	once       sync.Once
}

func NewArenaScene(arenaName string, spawnIndex int) *ArenaScene {
	return &ArenaScene{arenaName: arenaName, spawnIndex: spawnIndex}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// QuitRequested reports whether the player chose to quit from the pause
// screen.
func (as *ArenaScene) QuitRequested() bool {
	return as.ecs != nil && systems.QuitRequested(as.ecs)
}

func (as *ArenaScene) configure() {
	level, err := assets.GetArena(as.arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Gameplay systems. Platforms move before the character so riders ground
	// on the new top.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCharacter))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCheckpoints))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRespawn))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawCrosshair)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = ecs

	arenaEntry := factory.CreateArena(as.ecs, level)
	factory.CreatePlayer(as.ecs, components.Arena.Get(arenaEntry).Arena, as.spawnIndex)
}
