package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyActionGame(t *testing.T) {
	snap := &core.Snapshot{Screen: core.ScreenGame}
	tests := []struct {
		key  rune
		want action
	}{
		{'w', action{move: gamemath.Vec2{Y: -1}, moving: true}},
		{'s', action{move: gamemath.Vec2{Y: 1}, moving: true}},
		{'a', action{move: gamemath.Vec2{X: -1}, moving: true}},
		{'D', action{move: gamemath.Vec2{X: 1}, moving: true}},
		{' ', action{fire: true}},
		{'q', action{command: core.Leave{}}},
		{'z', action{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, keyAction(core.ScreenGame, snap, runeKey(tt.key)))
		})
	}
}

func TestKeyActionMenu(t *testing.T) {
	snap := &core.Snapshot{Screen: core.ScreenMenu}
	enter := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.Equal(t, core.Navigate{Screen: core.ScreenGame}, keyAction(core.ScreenMenu, snap, enter).command)
	assert.Equal(t, core.Navigate{Screen: core.ScreenShop}, keyAction(core.ScreenMenu, snap, runeKey('b')).command)
	assert.True(t, keyAction(core.ScreenMenu, snap, runeKey('q')).quit)

	esc := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.True(t, keyAction(core.ScreenMenu, snap, esc).quit)
	assert.Equal(t, core.Navigate{Screen: core.ScreenMenu}, keyAction(core.ScreenShop, snap, esc).command)
}

func TestKeyActionDigits(t *testing.T) {
	snap := &core.Snapshot{
		Arenas: []string{"city", "desert", "warehouse"},
		Shop: []core.ShopItem{
			{Kind: economy.UpgradeDamage},
			{Kind: economy.UpgradeSpeed},
		},
	}
	assert.Equal(t, core.SelectArena{Arena: "desert"}, keyAction(core.ScreenMapSelect, snap, runeKey('2')).command)
	assert.Nil(t, keyAction(core.ScreenMapSelect, snap, runeKey('4')).command)
	assert.Nil(t, keyAction(core.ScreenMapSelect, snap, runeKey('0')).command)

	assert.Equal(t, core.Purchase{Kind: economy.UpgradeSpeed}, keyAction(core.ScreenShop, snap, runeKey('2')).command)
	assert.Nil(t, keyAction(core.ScreenShop, snap, runeKey('3')).command)
}

func TestKeyActionGameOverRetriesSameArena(t *testing.T) {
	snap := &core.Snapshot{Screen: core.ScreenGameOver, Arena: "city"}
	assert.Equal(t, core.SelectArena{Arena: "city"}, keyAction(core.ScreenGameOver, snap, runeKey('r')).command)
}
