package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	loadOnce   sync.Once
	arenas     map[string]*leveldata.Arena
	arenaNames []string
	loadErr    error
)

// FS returns the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// ArenaNames lists the bundled arenas, sorted.
func ArenaNames() ([]string, error) {
	loadArenas()
	return arenaNames, loadErr
}

// GetArena returns a bundled arena by name.
func GetArena(name string) (*leveldata.Arena, error) {
	loadArenas()
	if loadErr != nil {
		return nil, loadErr
	}
	arena, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("arena %q not found (have %v)", name, arenaNames)
	}
	return arena, nil
}

func loadArenas() {
	loadOnce.Do(func() {
		arenas, arenaNames, loadErr = leveldata.LoadAllArenas(assetFS, cfg.World.LevelsDir, cfg.World.PixelsPerMeter)
	})
}
