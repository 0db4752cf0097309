// Command fpsim replays a scripted input sequence through the character
// controller in an arena, without a window, and prints the result as CSV.
//
// Usage:
//
//	fpsim -level assets/levels/arena.tmx -script cmd/fpsim/testdata/walk_jump.yaml
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/kidclunk/shared/leveldata"
	"github.com/automoto/kidclunk/shared/tuning"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	levelPath := flag.String("level", "assets/levels/arena.tmx", "Tiled arena file")
	scriptPath := flag.String("script", "", "YAML input script")
	tuningPath := flag.String("tuning", "", "YAML file overriding controller tuning")
	ppm := flag.Float64("ppm", 16, "Tiled pixels per meter")
	cellSize := flag.Int("cellsize", 2, "broadphase cell size in meters")
	eye := flag.Float64("eye", 0.6, "camera height above the body center")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("-script is required")
	}

	level, err := leveldata.LoadArena(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath), *ppm)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	f, err := os.Open(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to open script: %v", err)
	}
	script, err := ParseScript(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}

	t := tuning.Default()
	if *tuningPath != "" {
		t, err = tuning.Load(os.DirFS(filepath.Dir(*tuningPath)), filepath.Base(*tuningPath), t)
		if err != nil {
			log.Printf("Warning: Could not load tuning, using defaults: %v", err)
		}
	}

	sim := NewSim(level, t, *cellSize, mgl64.Vec3{0, *eye, 0}, script.Spawn)
	log.Printf("Running %d frames in %s at dt=%.4f", script.Frames(), level.Name, script.Delta)
	if err := sim.Run(script, os.Stdout); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}
