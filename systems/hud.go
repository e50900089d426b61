package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pixel-shooter/fonts"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10

	// seconds for the health bar to catch up with a hit
	healthEaseTime = 0.35
)

var (
	hudTextColor  = color.RGBA{235, 235, 235, 255}
	hudCashColor  = color.RGBA{255, 210, 80, 255}
	hudPanelColor = color.RGBA{0, 0, 0, 140}
)

// UpdateHUD eases the displayed health toward the real value.
func UpdateHUD(e *ecs.ECS) {
	f := frameOf(e)
	if f == nil || f.Snapshot == nil || !f.Snapshot.Running {
		return
	}
	pl := f.Snapshot.Player
	if pl.MaxHealth <= 0 {
		return
	}
	target := float32(pl.Health / pl.MaxHealth)

	if target != f.targetHealth {
		if !f.healthPrimed {
			// first frame of a run: no animation from empty
			f.shownHealth = target
			f.healthPrimed = true
		} else {
			f.healthTween = gween.New(f.shownHealth, target, healthEaseTime, ease.OutQuad)
		}
		f.targetHealth = target
	}

	if f.healthTween != nil {
		current, finished := f.healthTween.Update(float32(1 / float64(ebiten.TPS())))
		f.shownHealth = current
		if finished {
			f.healthTween = nil
		}
	}
}

// DrawHUD renders the health bar, score, wave, kills and currency.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	f := frameOf(e)
	if f == nil || f.Snapshot == nil || !f.Snapshot.Running {
		return
	}
	snap := f.Snapshot

	vector.FillRect(screen, 0, 0, float32(snap.Width), hudBarHeight+2*hudMargin, hudPanelColor, false)

	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		barBackColor, false)

	fill := barFillColor
	if f.shownHealth < 0.3 {
		fill = barLowColor
	}
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*clamp01(f.shownHealth), float32(hudBarHeight),
		fill, false)

	face := fonts.HUD.Get()
	baseline := hudMargin + hudBarHeight
	hp := fmt.Sprintf("%.0f/%.0f", snap.Player.Health, snap.Player.MaxHealth)
	text.Draw(screen, hp, fonts.HUDSmall.Get(), hudMargin+hudBarWidth+8, baseline-2, hudTextColor)

	stats := fmt.Sprintf("WAVE %d   KILLS %d   SCORE %d", snap.Wave, snap.Kills, snap.Score)
	text.Draw(screen, stats, face, hudMargin+hudBarWidth+80, baseline, hudTextColor)

	if snap.Economy {
		cash := fmt.Sprintf("$%d", snap.Currency)
		text.Draw(screen, cash, face, int(snap.Width)-hudMargin-8*len(cash), baseline, hudCashColor)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
