package ui

import (
	"fmt"
	"slices"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/leaderboard"
)

// LeaderboardUI shows the session's best runs, best first.
type LeaderboardUI struct {
	UI *ebitenui.UI

	OnGoBack func()

	list    *widget.Container
	entries []leaderboard.Entry
	built   bool

	faces
}

func NewLeaderboardUI(onGoBack func()) *LeaderboardUI {
	ui := &LeaderboardUI{OnGoBack: onGoBack}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *LeaderboardUI) buildUI() {
	root, content := newScreen()

	content.AddChild(newLabel("LEADERBOARD", &ui.titleFace, white))

	ui.list = newPanel()
	content.AddChild(ui.list)

	content.AddChild(newButton("Back", &ui.normalFace, secondaryButton, 80, 28, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))

	ui.UI = &ebitenui.UI{Container: root}
}

// Refresh rebuilds the table when the entries changed.
func (ui *LeaderboardUI) Refresh(snap *core.Snapshot) {
	if ui.built && slices.Equal(ui.entries, snap.Leaderboard) {
		return
	}
	ui.built = true
	ui.entries = append(ui.entries[:0], snap.Leaderboard...)

	ui.list.RemoveChildren()
	if len(ui.entries) == 0 {
		ui.list.AddChild(newLabel("No runs yet", &ui.normalFace, dimText))
		return
	}
	for i, e := range ui.entries {
		line := fmt.Sprintf("%2d. %-16s %7d   %s", i+1, e.Name, e.Score, e.Date.Format("2006-01-02 15:04"))
		c := dimText
		if i == 0 {
			c = accentText
		}
		ui.list.AddChild(newLabel(line, &ui.normalFace, c))
	}
}

func (ui *LeaderboardUI) Update() {
	ui.UI.Update()
}

func (ui *LeaderboardUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
