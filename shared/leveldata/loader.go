package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and object names the loader looks for.
const (
	groupArena       = "Arena"
	groupPlayerSpawn = "PlayerSpawn"
	groupEnemySpawn  = "EnemySpawn"
	objectBounds     = "bounds"
)

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS for custom maps.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}
	if arena.Width <= 0 || arena.Height <= 0 {
		return nil, fmt.Errorf("load TMX %s: empty map", tmxPath)
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case groupArena:
			for _, o := range og.Objects {
				if o.Name != objectBounds {
					continue
				}
				arena.Margin = float64(o.Properties.GetInt("margin"))
				arena.Background = o.Properties.GetString("background")
			}
		case groupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
				arena.HasSpawn = true
			}
		case groupEnemySpawn:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.EnemyZones = append(arena.EnemyZones, Zone{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	// Keep zone order stable for deterministic spawns
	sort.Slice(arena.EnemyZones, func(i, j int) bool {
		a, b := arena.EnemyZones[i], arena.EnemyZones[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus the sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
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
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
