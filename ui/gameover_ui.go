package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/core"
)

// GameOverUI reports the finished run.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRetry    func()
	OnNavigate func(screen core.Screen)

	titleLabel *widget.Label
	scoreLabel *widget.Label
	rankLabel  *widget.Label
	statsLabel *widget.Label

	faces
}

func NewGameOverUI(onRetry func(), onNavigate func(core.Screen)) *GameOverUI {
	ui := &GameOverUI{
		OnRetry:    onRetry,
		OnNavigate: onNavigate,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *GameOverUI) buildUI() {
	root, content := newScreen()

	ui.titleLabel = newLabel("GAME OVER", &ui.titleFace, white)
	content.AddChild(ui.titleLabel)

	panel := newPanel()
	ui.scoreLabel = newLabel("", &ui.normalFace, white)
	ui.statsLabel = newLabel("", &ui.smallFace, dimText)
	ui.rankLabel = newLabel("", &ui.smallFace, accentText)
	panel.AddChild(ui.scoreLabel)
	panel.AddChild(ui.statsLabel)
	panel.AddChild(ui.rankLabel)
	content.AddChild(panel)

	buttons := newRow(10)
	buttons.AddChild(newButton("Retry", &ui.normalFace, primaryButton, 90, 28, func() {
		if ui.OnRetry != nil {
			ui.OnRetry()
		}
	}))
	buttons.AddChild(newButton("Leaderboard", &ui.normalFace, secondaryButton, 110, 28, func() {
		if ui.OnNavigate != nil {
			ui.OnNavigate(core.ScreenLeaderboard)
		}
	}))
	buttons.AddChild(newButton("Menu", &ui.normalFace, secondaryButton, 80, 28, func() {
		if ui.OnNavigate != nil {
			ui.OnNavigate(core.ScreenMenu)
		}
	}))
	content.AddChild(buttons)

	ui.UI = &ebitenui.UI{Container: root}
}

// Refresh fills in the result of the last run.
func (ui *GameOverUI) Refresh(snap *core.Snapshot) {
	switch snap.Outcome {
	case components.OutcomeVictory:
		ui.titleLabel.Label = "VICTORY"
	default:
		ui.titleLabel.Label = "DEFEAT"
	}
	ui.scoreLabel.Label = fmt.Sprintf("Final score: %d", snap.FinalScore)
	ui.statsLabel.Label = fmt.Sprintf("%s   wave %d   %d kills", snap.Arena, snap.Wave, snap.Kills)
	if snap.Rank >= 0 {
		ui.rankLabel.Label = fmt.Sprintf("New leaderboard entry: #%d", snap.Rank+1)
	} else {
		ui.rankLabel.Label = "Not on the leaderboard"
	}
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}

func (ui *GameOverUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
