package ui

import (
	"fmt"
	"slices"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pixel-shooter/core"
)

// MapSelectUI lists the loaded arenas. Picking one starts a run.
type MapSelectUI struct {
	UI *ebitenui.UI

	OnSelect func(arena string)
	OnGoBack func()

	list     *widget.Container
	arenas   []string
	selected string

	faces
}

func NewMapSelectUI(onSelect func(arena string), onGoBack func()) *MapSelectUI {
	ui := &MapSelectUI{
		OnSelect: onSelect,
		OnGoBack: onGoBack,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *MapSelectUI) buildUI() {
	root, content := newScreen()

	content.AddChild(newLabel("SELECT ARENA", &ui.titleFace, white))

	ui.list = newPanel()
	content.AddChild(ui.list)

	content.AddChild(newButton("Back", &ui.normalFace, secondaryButton, 80, 28, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))

	ui.UI = &ebitenui.UI{Container: root}
}

// Refresh rebuilds the arena list when it or the last selection changed.
func (ui *MapSelectUI) Refresh(snap *core.Snapshot) {
	if slices.Equal(ui.arenas, snap.Arenas) && ui.selected == snap.Arena {
		return
	}
	ui.arenas = append(ui.arenas[:0], snap.Arenas...)
	ui.selected = snap.Arena

	ui.list.RemoveChildren()
	for _, name := range ui.arenas {
		label := name
		style := secondaryButton
		if name == ui.selected {
			label = fmt.Sprintf("> %s <", name)
			style = primaryButton
		}
		ui.list.AddChild(newButton(label, &ui.normalFace, style, 220, 28, func() {
			if ui.OnSelect != nil {
				ui.OnSelect(name)
			}
		}))
	}
}

func (ui *MapSelectUI) Update() {
	ui.UI.Update()
}

func (ui *MapSelectUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
