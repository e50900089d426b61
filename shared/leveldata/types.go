// Package leveldata parses the Tiled arena files. It has no dependency on
// ebiten or donburi so the headless runners can use it.
package leveldata

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Arena is one playable map.
type Arena struct {
	Name   string
	Width  float64
	Height float64
	// Margin is the distance actors keep from the edges. 0 means "use the
	// configured default".
	Margin     float64
	Background string // "#rrggbb"

	PlayerSpawn SpawnPoint
	HasSpawn    bool
	EnemyZones  []Zone
}

// SpawnPoint is the player's start position.
type SpawnPoint struct {
	X, Y float64
}

// Zone is a rectangle enemies may spawn in.
type Zone struct {
	X, Y, W, H float64
}

// DefaultBackground is used when an arena has no background property.
var DefaultBackground = color.RGBA{24, 24, 32, 255}

// BackgroundColor parses Background. Malformed or empty values fall back to
// DefaultBackground.
func (a *Arena) BackgroundColor() color.RGBA {
	c, err := ParseColor(a.Background)
	if err != nil {
		return DefaultBackground
	}
	return c
}

// ParseColor decodes "#rrggbb" or "#aarrggbb", the two forms Tiled writes.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var argb uint64
	var err error
	switch len(s) {
	case 6:
		argb, err = strconv.ParseUint(s, 16, 32)
		argb |= 0xff000000
	case 8:
		argb, err = strconv.ParseUint(s, 16, 32)
	default:
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #aarrggbb", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}, nil
}
