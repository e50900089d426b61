// Package scenes binds the desktop screens to the game loop. Each scene reads
// the loop's latest snapshot and turns button presses into commands.
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/shared/messages"
	"github.com/automoto/pixel-shooter/systems"
)

// Scene is one screen of the desktop client.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// EventListener is implemented by scenes that react to loop events.
type EventListener interface {
	OnEvent(ev messages.Event)
}

// ForScreen builds the scene that renders screen. quit is called when the
// player asks to close the window.
func ForScreen(screen core.Screen, ctrl systems.Controller, quit func()) Scene {
	switch screen {
	case core.ScreenGame:
		return NewGameScene(ctrl)
	case core.ScreenMapSelect:
		return NewMapSelectScene(ctrl)
	case core.ScreenShop:
		return NewShopScene(ctrl)
	case core.ScreenLeaderboard:
		return NewLeaderboardScene(ctrl)
	case core.ScreenGameOver:
		return NewGameOverScene(ctrl)
	default:
		return NewMenuScene(ctrl, quit)
	}
}
