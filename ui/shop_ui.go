package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/economy"
)

type shopRow struct {
	kind  economy.Upgrade
	level *widget.Label
	buy   *widget.Button
}

// ShopUI shows the upgrade catalog with one Buy button per entry.
type ShopUI struct {
	UI *ebitenui.UI

	OnBuy    func(kind economy.Upgrade)
	OnGoBack func()

	balanceLabel *widget.Label
	statusLabel  *widget.Label
	list         *widget.Container
	rows         []shopRow

	faces
}

func NewShopUI(onBuy func(economy.Upgrade), onGoBack func()) *ShopUI {
	ui := &ShopUI{
		OnBuy:    onBuy,
		OnGoBack: onGoBack,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *ShopUI) buildUI() {
	root, content := newScreen()

	content.AddChild(newLabel("SHOP", &ui.titleFace, white))
	ui.balanceLabel = newLabel(formatBalance(0), &ui.normalFace, accentText)
	content.AddChild(ui.balanceLabel)

	ui.list = newPanel()
	content.AddChild(ui.list)

	ui.statusLabel = newLabel("", &ui.smallFace, accentText)
	content.AddChild(ui.statusLabel)

	content.AddChild(newButton("Back", &ui.normalFace, secondaryButton, 80, 28, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))

	ui.UI = &ebitenui.UI{Container: root}
}

func (ui *ShopUI) buildRows(items []core.ShopItem) {
	ui.list.RemoveChildren()
	ui.rows = ui.rows[:0]
	for _, item := range items {
		kind := item.Kind
		row := newRow(10)
		name := newLabel(fmt.Sprintf("%-18s", item.Label), &ui.normalFace, white)
		level := newLabel("", &ui.smallFace, dimText)
		buy := newButton(fmt.Sprintf("Buy $%d", item.Cost), &ui.smallFace, primaryButton, 90, 22, func() {
			if ui.OnBuy != nil {
				ui.OnBuy(kind)
			}
		})
		row.AddChild(name)
		row.AddChild(level)
		row.AddChild(buy)
		ui.list.AddChild(row)
		ui.rows = append(ui.rows, shopRow{kind: kind, level: level, buy: buy})
	}
}

// Refresh updates balance, levels and which Buy buttons are enabled.
func (ui *ShopUI) Refresh(snap *core.Snapshot) {
	if len(ui.rows) != len(snap.Shop) {
		ui.buildRows(snap.Shop)
	}
	ui.balanceLabel.Label = formatBalance(snap.Currency)
	for i, item := range snap.Shop {
		row := ui.rows[i]
		row.level.Label = fmt.Sprintf("Lv %d", item.Level)
		row.buy.GetWidget().Disabled = !item.Affordable
	}
}

// SetStatus shows the result of the last purchase.
func (ui *ShopUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *ShopUI) Update() {
	ui.UI.Update()
}

func formatBalance(n int) string {
	return fmt.Sprintf("Balance: $%d", n)
}

func (ui *ShopUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
