package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pixel-shooter/core"
)

// MenuUI is the title screen: player name, then the four destinations.
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay     func(name string)
	OnNavigate func(screen core.Screen)
	OnQuit     func()

	nameInput *widget.TextInput
	shopBtn   *widget.Button
	infoLabel *widget.Label

	faces
}

func NewMenuUI(onPlay func(name string), onNavigate func(core.Screen), onQuit func()) *MenuUI {
	ui := &MenuUI{
		OnPlay:     onPlay,
		OnNavigate: onNavigate,
		OnQuit:     onQuit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *MenuUI) buildUI() {
	root, content := newScreen()

	content.AddChild(newLabel("PIXEL SHOOTER", &ui.titleFace, white))

	nameRow := newRow(6)
	nameRow.AddChild(newLabel("Name:", &ui.normalFace, dimText))
	ui.nameInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          white,
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         white,
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("Player"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	nameRow.AddChild(ui.nameInput)
	content.AddChild(nameRow)

	content.AddChild(newButton("Play", &ui.normalFace, primaryButton, 200, 30, func() {
		if ui.OnPlay != nil {
			ui.OnPlay(ui.nameInput.GetText())
		}
	}))
	ui.shopBtn = newButton("Shop", &ui.normalFace, secondaryButton, 200, 26, func() {
		if ui.OnNavigate != nil {
			ui.OnNavigate(core.ScreenShop)
		}
	})
	content.AddChild(ui.shopBtn)
	content.AddChild(newButton("Leaderboard", &ui.normalFace, secondaryButton, 200, 26, func() {
		if ui.OnNavigate != nil {
			ui.OnNavigate(core.ScreenLeaderboard)
		}
	}))
	content.AddChild(newButton("Quit", &ui.normalFace, secondaryButton, 200, 26, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	ui.infoLabel = newLabel("", &ui.smallFace, accentText)
	content.AddChild(ui.infoLabel)

	ui.UI = &ebitenui.UI{Container: root}
}

// Refresh syncs the widgets with the latest snapshot.
func (ui *MenuUI) Refresh(snap *core.Snapshot) {
	ui.shopBtn.GetWidget().Disabled = !snap.Economy
	if snap.Economy {
		ui.infoLabel.Label = formatBalance(snap.Currency)
	} else {
		ui.infoLabel.Label = ""
	}
}

// SetName pre-fills the name field.
func (ui *MenuUI) SetName(name string) {
	ui.nameInput.SetText(name)
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func (ui *MenuUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
