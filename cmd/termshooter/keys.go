package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

// action is what a key press means on the current screen.
type action struct {
	quit    bool
	move    gamemath.Vec2
	moving  bool
	fire    bool
	command core.Command
}

// keyAction maps a key to an action. Digits pick arenas on the map screen
// and upgrades in the shop, 1-based.
func keyAction(screen core.Screen, snap *core.Snapshot, ev *tcell.EventKey) action {
	if ev.Key() == tcell.KeyCtrlC {
		return action{quit: true}
	}
	if ev.Key() == tcell.KeyEscape {
		if screen == core.ScreenMenu {
			return action{quit: true}
		}
		return action{command: core.Navigate{Screen: core.ScreenMenu}}
	}

	r := ev.Rune()
	if ev.Key() == tcell.KeyEnter {
		r = '\n'
	}

	switch screen {
	case core.ScreenGame:
		switch r {
		case 'w', 'W':
			return action{move: gamemath.Vec2{Y: -1}, moving: true}
		case 's', 'S':
			return action{move: gamemath.Vec2{Y: 1}, moving: true}
		case 'a', 'A':
			return action{move: gamemath.Vec2{X: -1}, moving: true}
		case 'd', 'D':
			return action{move: gamemath.Vec2{X: 1}, moving: true}
		case ' ':
			return action{fire: true}
		case 'q', 'Q':
			return action{command: core.Leave{}}
		}

	case core.ScreenMenu:
		switch r {
		case '\n', 'p':
			return action{command: core.Navigate{Screen: core.ScreenGame}}
		case 'm':
			return action{command: core.Navigate{Screen: core.ScreenMapSelect}}
		case 'b':
			return action{command: core.Navigate{Screen: core.ScreenShop}}
		case 'l':
			return action{command: core.Navigate{Screen: core.ScreenLeaderboard}}
		case 'q':
			return action{quit: true}
		}

	case core.ScreenMapSelect:
		if i, ok := digit(r); ok && i < len(snap.Arenas) {
			return action{command: core.SelectArena{Arena: snap.Arenas[i]}}
		}
		if r == 'q' {
			return action{command: core.Navigate{Screen: core.ScreenMenu}}
		}

	case core.ScreenShop:
		if i, ok := digit(r); ok && i < len(snap.Shop) {
			return action{command: core.Purchase{Kind: snap.Shop[i].Kind}}
		}
		if r == 'q' {
			return action{command: core.Navigate{Screen: core.ScreenMenu}}
		}

	case core.ScreenLeaderboard:
		if r == 'q' || r == '\n' {
			return action{command: core.Navigate{Screen: core.ScreenMenu}}
		}

	case core.ScreenGameOver:
		switch r {
		case '\n', 'r':
			return action{command: core.SelectArena{Arena: snap.Arena}}
		case 'b':
			return action{command: core.Navigate{Screen: core.ScreenShop}}
		case 'l':
			return action{command: core.Navigate{Screen: core.ScreenLeaderboard}}
		case 'q':
			return action{command: core.Navigate{Screen: core.ScreenMenu}}
		}
	}
	return action{}
}

func digit(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// upgradeKey is the key shown next to a shop row.
func upgradeKey(i int) string {
	return string(rune('1' + i))
}
