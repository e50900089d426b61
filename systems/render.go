package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/shared/leveldata"
)

var (
	playerColor      = color.RGBA{70, 160, 255, 255}
	playerCoolColor  = color.RGBA{40, 90, 150, 255}
	enemyColor       = color.RGBA{220, 60, 60, 255}
	playerShotColor  = color.RGBA{255, 240, 120, 255}
	enemyShotColor   = color.RGBA{255, 120, 40, 255}
	barBackColor     = color.RGBA{40, 40, 40, 255}
	barFillColor     = color.RGBA{40, 220, 40, 255}
	barLowColor      = color.RGBA{230, 60, 40, 255}
	arenaBorderColor = color.RGBA{255, 255, 255, 40}
)

// Parsed background, cached because the arena rarely changes.
var (
	bgSource string
	bgColor  = leveldata.DefaultBackground
)

// DrawArena fills the playfield with the arena's background colour.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	f := frameOf(e)
	if f == nil || f.Snapshot == nil {
		return
	}
	snap := f.Snapshot
	if snap.Background != bgSource {
		bgSource = snap.Background
		if c, err := leveldata.ParseColor(bgSource); err == nil {
			bgColor = c
		} else {
			bgColor = leveldata.DefaultBackground
		}
	}
	screen.Fill(bgColor)
	vector.StrokeRect(screen, 1, 1, float32(snap.Width)-2, float32(snap.Height)-2, 2, arenaBorderColor, false)
}

// DrawActors renders enemies, projectiles and the player, in that order so
// the player is never hidden.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	f := frameOf(e)
	if f == nil || f.Snapshot == nil || !f.Snapshot.Running {
		return
	}
	snap := f.Snapshot

	for _, en := range snap.Enemies {
		vector.DrawFilledCircle(screen, float32(en.X), float32(en.Y), float32(en.Radius), enemyColor, true)
		drawActorBar(screen, en)
	}

	for _, p := range snap.Projectiles {
		c := playerShotColor
		if p.Owner == components.FactionEnemy {
			c = enemyShotColor
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), c, true)
	}

	pc := playerColor
	if snap.CoolingDown {
		pc = playerCoolColor
	}
	pl := snap.Player
	vector.DrawFilledCircle(screen, float32(pl.X), float32(pl.Y), float32(pl.Radius), pc, true)
	vector.StrokeCircle(screen, float32(pl.X), float32(pl.Y), float32(pl.Radius), 2, color.White, true)
}

// drawActorBar draws a small health bar above an enemy.
func drawActorBar(screen *ebiten.Image, a core.ActorView) {
	if a.MaxHealth <= 0 {
		return
	}
	w := float32(a.Radius * 2)
	x := float32(a.X) - w/2
	y := float32(a.Y-a.Radius) - 8

	vector.FillRect(screen, x, y, w, 4, barBackColor, false)
	ratio := float32(a.Health / a.MaxHealth)
	fill := barFillColor
	if ratio < 0.3 {
		fill = barLowColor
	}
	vector.FillRect(screen, x, y, w*ratio, 4, fill, false)
}
