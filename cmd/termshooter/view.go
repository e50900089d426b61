package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/core"
)

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleAccent  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHostile = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// view draws a snapshot onto a terminal.
type view struct {
	screen tcell.Screen
	status string
}

func (v *view) draw(snap *core.Snapshot) {
	v.screen.Clear()
	switch snap.Screen {
	case core.ScreenGame:
		v.drawGame(snap)
	case core.ScreenMapSelect:
		v.drawMapSelect(snap)
	case core.ScreenShop:
		v.drawShop(snap)
	case core.ScreenLeaderboard:
		v.drawLeaderboard(snap)
	case core.ScreenGameOver:
		v.drawGameOver(snap)
	default:
		v.drawMenu(snap)
	}
	if v.status != "" {
		_, h := v.screen.Size()
		v.text(1, h-1, styleAccent, v.status)
	}
	v.screen.Show()
}

func (v *view) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *view) drawMenu(snap *core.Snapshot) {
	v.text(2, 1, styleTitle, "PIXEL SHOOTER")
	v.text(2, 3, styleText, fmt.Sprintf("Player: %s   Arena: %s", snap.PlayerName, snap.Arena))
	lines := []string{"[enter] play", "[m] choose arena"}
	if snap.Economy {
		lines = append(lines, fmt.Sprintf("[b] shop ($%d)", snap.Currency))
	}
	lines = append(lines, "[l] leaderboard", "[q] quit")
	for i, l := range lines {
		v.text(4, 5+i, styleText, l)
	}
}

func (v *view) drawMapSelect(snap *core.Snapshot) {
	v.text(2, 1, styleTitle, "SELECT ARENA")
	for i, name := range snap.Arenas {
		style := styleText
		if name == snap.Arena {
			style = styleAccent
		}
		v.text(4, 3+i, style, fmt.Sprintf("[%d] %s", i+1, name))
	}
	v.text(2, 4+len(snap.Arenas), styleDim, "[q] back")
}

func (v *view) drawShop(snap *core.Snapshot) {
	v.text(2, 1, styleTitle, "SHOP")
	v.text(2, 2, styleAccent, fmt.Sprintf("Balance: $%d", snap.Currency))
	for i, item := range snap.Shop {
		style := styleText
		if !item.Affordable {
			style = styleDim
		}
		v.text(4, 4+i, style, fmt.Sprintf("[%s] %-18s lv %-2d $%d", upgradeKey(i), item.Label, item.Level, item.Cost))
	}
	v.text(2, 5+len(snap.Shop), styleDim, "[q] back")
}

func (v *view) drawLeaderboard(snap *core.Snapshot) {
	v.text(2, 1, styleTitle, "LEADERBOARD")
	if len(snap.Leaderboard) == 0 {
		v.text(4, 3, styleDim, "No runs yet")
	}
	for i, e := range snap.Leaderboard {
		v.text(4, 3+i, styleText, fmt.Sprintf("%2d. %-16s %7d  %s", i+1, e.Name, e.Score, e.Date.Format("2006-01-02 15:04")))
	}
	v.text(2, 4+max(len(snap.Leaderboard), 1), styleDim, "[q] back")
}

func (v *view) drawGameOver(snap *core.Snapshot) {
	title := "DEFEAT"
	if snap.Outcome == components.OutcomeVictory {
		title = "VICTORY"
	}
	v.text(2, 1, styleTitle, title)
	v.text(2, 3, styleText, fmt.Sprintf("Final score: %d   wave %d   %d kills", snap.FinalScore, snap.Wave, snap.Kills))
	if snap.Rank >= 0 {
		v.text(2, 4, styleAccent, fmt.Sprintf("Leaderboard #%d", snap.Rank+1))
	}
	v.text(2, 6, styleDim, "[r] retry  [b] shop  [l] leaderboard  [q] menu")
}

// drawGame scales the arena onto the terminal below a one-line HUD.
func (v *view) drawGame(snap *core.Snapshot) {
	w, h := v.screen.Size()
	top := 1
	fieldH := h - top - 1
	if w < 3 || fieldH < 3 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}

	hud := fmt.Sprintf("HP %3.0f/%-3.0f  WAVE %d  KILLS %d  SCORE %d", snap.Player.Health, snap.Player.MaxHealth, snap.Wave, snap.Kills, snap.Score)
	if snap.Economy {
		hud += fmt.Sprintf("  $%d", snap.Currency)
	}
	v.text(0, 0, styleText, hud)

	for x := 0; x < w; x++ {
		v.screen.SetContent(x, top, '─', nil, styleBorder)
		v.screen.SetContent(x, h-1, '─', nil, styleBorder)
	}

	cell := func(x, y float64) (int, int) {
		cx := int(x / snap.Width * float64(w-1))
		cy := top + 1 + int(y/snap.Height*float64(fieldH-2))
		return cx, cy
	}

	for _, p := range snap.Projectiles {
		style := styleShot
		if p.Owner == components.FactionEnemy {
			style = styleHostile
		}
		x, y := cell(p.X, p.Y)
		v.screen.SetContent(x, y, '•', nil, style)
	}
	for _, e := range snap.Enemies {
		x, y := cell(e.X, e.Y)
		v.screen.SetContent(x, y, 'E', nil, styleEnemy)
	}
	x, y := cell(snap.Player.X, snap.Player.Y)
	v.screen.SetContent(x, y, '@', nil, stylePlayer)
}
