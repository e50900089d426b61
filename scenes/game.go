package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pixel-shooter/systems"
)

// GameScene renders the active run and forwards input to the loop.
type GameScene struct {
	ecs  *ecs.ECS
	ctrl systems.Controller
	once sync.Once
}

func NewGameScene(ctrl systems.Controller) *GameScene {
	return &GameScene{ctrl: ctrl}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// Leave releases held keys so the player does not keep walking on the
// next run.
func (gs *GameScene) Leave() {
	if gs.ecs != nil {
		systems.ReleaseInput(gs.ecs)
	}
}

func (gs *GameScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	systems.NewFrame(gs.ecs.World, gs.ctrl)

	gs.ecs.AddSystem(systems.UpdateFrame)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateHUD)

	gs.ecs.AddRenderer(systems.LayerArena, systems.DrawArena)
	gs.ecs.AddRenderer(systems.LayerActors, systems.DrawActors)
	gs.ecs.AddRenderer(systems.LayerHUD, systems.DrawHUD)
}
