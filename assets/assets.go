// Package assets embeds the arena maps shipped with the game.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/pixel-shooter/shared/leveldata"
)

// ArenaDir is the directory inside FS holding the .tmx files.
const ArenaDir = "arenas"

//go:embed arenas/*.tmx
var arenaFS embed.FS

// FS exposes the embedded files.
func FS() fs.FS {
	return arenaFS
}

// LoadArenas parses every embedded arena.
func LoadArenas() (map[string]*leveldata.Arena, []string, error) {
	return leveldata.LoadAllArenas(arenaFS, ArenaDir)
}
