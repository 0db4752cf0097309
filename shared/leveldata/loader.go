package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupBlocks      = "Blocks"
	GroupPlatforms   = "Platforms"
	GroupTriggers    = "Triggers"
	GroupPlayerSpawn = "PlayerSpawn"
)

var (
	ErrNoSpawn     = errors.New("arena has no player spawn")
	ErrFlatBlock   = errors.New("block has no height")
	ErrBadScale    = errors.New("pixels per meter must be positive")
	ErrBadPlatform = errors.New("platform needs a positive duration")
)

// LoadArena parses a TMX file into an Arena. pixelsPerMeter converts Tiled
// pixel coordinates into meters. It takes an fs.FS so callers can pass
// embed.FS (game) or os.DirFS (simulator).
func LoadArena(fsys fs.FS, tmxPath string, pixelsPerMeter float64) (*Arena, error) {
	if pixelsPerMeter <= 0 {
		return nil, ErrBadScale
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / pixelsPerMeter,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / pixelsPerMeter,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupBlocks:
			for _, o := range og.Objects {
				box, err := parseBox(o, pixelsPerMeter)
				if err != nil {
					return nil, err
				}
				arena.Blocks = append(arena.Blocks, box)
			}
		case GroupTriggers:
			for _, o := range og.Objects {
				box, err := parseBox(o, pixelsPerMeter)
				if err != nil {
					return nil, err
				}
				arena.Triggers = append(arena.Triggers, box)
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				box, err := parseBox(o, pixelsPerMeter)
				if err != nil {
					return nil, err
				}
				p := Platform{
					Box:      box,
					Travel:   o.Properties.GetFloat("travel"),
					Duration: o.Properties.GetFloat("duration"),
				}
				if p.Duration <= 0 {
					return nil, fmt.Errorf("platform %q: %w", box.Name, ErrBadPlatform)
				}
				arena.Platforms = append(arena.Platforms, p)
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, Spawn{
					X:     o.X / pixelsPerMeter,
					Y:     o.Properties.GetFloat("base"),
					Z:     o.Y / pixelsPerMeter,
					Yaw:   o.Properties.GetFloat("yaw"),
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	sort.Slice(arena.Spawns, func(i, j int) bool {
		return arena.Spawns[i].Index < arena.Spawns[j].Index
	})

	return arena, nil
}

func parseBox(o *tiled.Object, pixelsPerMeter float64) (Box, error) {
	box := Box{
		Name:   o.Name,
		X:      o.X / pixelsPerMeter,
		Z:      o.Y / pixelsPerMeter,
		Width:  o.Width / pixelsPerMeter,
		Depth:  o.Height / pixelsPerMeter,
		Base:   o.Properties.GetFloat("base"),
		Height: o.Properties.GetFloat("height"),
		Layer:  o.Properties.GetInt("layer"),
	}
	if box.Height <= 0 {
		return Box{}, fmt.Errorf("block %q (id %d): %w", o.Name, o.ID, ErrFlatBlock)
	}
	return box, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string, pixelsPerMeter float64) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path, pixelsPerMeter)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
