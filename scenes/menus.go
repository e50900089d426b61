package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/shared/messages"
	"github.com/automoto/pixel-shooter/systems"
	"github.com/automoto/pixel-shooter/ui"
)

// refresher is the part every ui screen shares.
type refresher interface {
	Refresh(snap *core.Snapshot)
	Update()
	Draw(screen *ebiten.Image)
}

// uiScene adapts a ui screen to Scene.
type uiScene struct {
	ctrl   systems.Controller
	screen refresher
}

func (s *uiScene) Update() {
	if snap := s.ctrl.Snapshot(); snap != nil {
		s.screen.Refresh(snap)
	}
	s.screen.Update()
}

func (s *uiScene) Draw(screen *ebiten.Image) {
	s.screen.Draw(screen)
}

func navigate(ctrl systems.Controller) func(core.Screen) {
	return func(to core.Screen) { ctrl.Submit(core.Navigate{Screen: to}) }
}

func back(ctrl systems.Controller) func() {
	return func() { ctrl.Submit(core.Navigate{Screen: core.ScreenMenu}) }
}

type MenuScene struct {
	uiScene
}

func NewMenuScene(ctrl systems.Controller, quit func()) *MenuScene {
	menu := ui.NewMenuUI(
		func(name string) {
			ctrl.Submit(core.SetPlayerName{Name: name})
			ctrl.Submit(core.Navigate{Screen: core.ScreenMapSelect})
		},
		navigate(ctrl),
		quit,
	)
	if snap := ctrl.Snapshot(); snap != nil {
		menu.SetName(snap.PlayerName)
	}
	return &MenuScene{uiScene{ctrl: ctrl, screen: menu}}
}

type MapSelectScene struct {
	uiScene
}

func NewMapSelectScene(ctrl systems.Controller) *MapSelectScene {
	maps := ui.NewMapSelectUI(
		func(arena string) { ctrl.Submit(core.SelectArena{Arena: arena}) },
		back(ctrl),
	)
	return &MapSelectScene{uiScene{ctrl: ctrl, screen: maps}}
}

type ShopScene struct {
	uiScene
	shop *ui.ShopUI
}

func NewShopScene(ctrl systems.Controller) *ShopScene {
	shop := ui.NewShopUI(
		func(kind economy.Upgrade) { ctrl.Submit(core.Purchase{Kind: kind}) },
		back(ctrl),
	)
	return &ShopScene{uiScene: uiScene{ctrl: ctrl, screen: shop}, shop: shop}
}

// OnEvent shows the outcome of the last purchase.
func (s *ShopScene) OnEvent(ev messages.Event) {
	p, ok := ev.(messages.PurchaseEvent)
	if !ok {
		return
	}
	if p.OK {
		s.shop.SetStatus(fmt.Sprintf("Bought %s for $%d", p.Kind, p.Cost))
	} else {
		s.shop.SetStatus(fmt.Sprintf("Cannot buy %s", p.Kind))
	}
}

type LeaderboardScene struct {
	uiScene
}

func NewLeaderboardScene(ctrl systems.Controller) *LeaderboardScene {
	return &LeaderboardScene{uiScene{ctrl: ctrl, screen: ui.NewLeaderboardUI(back(ctrl))}}
}

type GameOverScene struct {
	uiScene
}

func NewGameOverScene(ctrl systems.Controller) *GameOverScene {
	over := ui.NewGameOverUI(
		func() {
			if snap := ctrl.Snapshot(); snap != nil {
				ctrl.Submit(core.SelectArena{Arena: snap.Arena})
			}
		},
		navigate(ctrl),
	)
	return &GameOverScene{uiScene{ctrl: ctrl, screen: over}}
}
