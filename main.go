package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/kidclunk/assets"
	"github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/fonts"
	"github.com/automoto/kidclunk/scenes"
	"github.com/automoto/kidclunk/shared/tuning"
	"github.com/automoto/kidclunk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
}

type Game struct {
	scene Scene
}

func NewGame(arena string, spawn int) *Game {
	fonts.LoadDefaults()
	return &Game{scene: scenes.NewArenaScene(arena, spawn)}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	arena := flag.String("arena", config.World.DefaultArena, "arena to load")
	spawn := flag.Int("spawn", 0, "spawn point index")
	tuningPath := flag.String("tuning", "", "YAML file overriding controller tuning")
	debug := flag.Bool("debug", false, "start with the debug overlay")
	noCapture := flag.Bool("nocapture", false, "leave the cursor free")
	list := flag.Bool("list", false, "list bundled arenas and exit")
	flag.Parse()

	if *list {
		names, err := assets.ArenaNames()
		if err != nil {
			log.Fatalf("Failed to load arenas: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *tuningPath != "" {
		t, err := tuning.Load(os.DirFS(filepath.Dir(*tuningPath)), filepath.Base(*tuningPath), config.CurrentTuning())
		if err != nil {
			log.Printf("Warning: Could not load tuning, using defaults: %v", err)
		}
		config.ApplyTuning(t)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	config.Debug.Overlay = config.Debug.Overlay || *debug
	config.Debug.NoCapture = *noCapture

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("kidclunk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)
	if !config.Debug.NoCapture {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	if err := ebiten.RunGame(NewGame(*arena, *spawn)); err != nil {
		log.Fatal(err)
	}
}
