package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/assets"
	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/fonts"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/logging"
	"github.com/automoto/pixel-shooter/scenes"
)

type Game struct {
	loop   *core.GameLoop
	logger *zap.Logger

	width, height int
	screen        core.Screen
	scene         scenes.Scene
	quit          bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	if leaver, ok := g.scene.(interface{ Leave() }); ok {
		leaver.Leave()
	}
	g.scene = scene
}

func NewGame(loop *core.GameLoop, width, height int, logger *zap.Logger) *Game {
	return &Game{
		loop:   loop,
		logger: logger,
		width:  width,
		height: height,
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	snap := g.loop.Snapshot()
	if g.scene == nil || snap.Screen != g.screen {
		g.logger.Debug("screen change",
			zap.String("from", string(g.screen)),
			zap.String("to", string(snap.Screen)),
		)
		g.screen = snap.Screen
		g.ChangeScene(scenes.ForScreen(snap.Screen, g.loop, func() { g.quit = true }))
	}

	g.drainEvents()
	g.scene.Update()
	return nil
}

// drainEvents hands loop events to the current scene without blocking.
func (g *Game) drainEvents() {
	listener, _ := g.scene.(scenes.EventListener)
	for {
		select {
		case ev := <-g.loop.Events():
			g.logger.Debug("event", zap.String("name", ev.EventName()), zap.Any("event", ev))
			if listener != nil {
				listener.OnEvent(ev)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	arenas, names, err := assets.LoadArenas()
	if err != nil {
		logger.Fatal("load arenas", zap.Error(err))
	}
	catalog, err := economy.LoadCatalog(cfg.Economy.UpgradesFile)
	if err != nil {
		logger.Fatal("load upgrades", zap.Error(err))
	}
	ledger := economy.NewLedger(cfg.Player, catalog, cfg.Economy.StartingBalance)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting",
		zap.Strings("arenas", names),
		zap.Int64("seed", *seed),
		zap.Bool("economy", cfg.Features.Economy),
		zap.Bool("escalating_waves", cfg.Features.EscalatingWaves),
	)

	session := core.NewSession(cfg, arenas, ledger, rand.New(rand.NewSource(*seed)), logger)
	loop := core.NewGameLoop(session, input.NewHolder(), cfg.Loop, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	// Every shipped arena shares the configured size, so the window is fixed.
	width, height := int(cfg.Arena.Width), int(cfg.Arena.Height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Pixel Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(loop, width, height, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", zap.Error(err))
	}
	loop.Stop()
}
