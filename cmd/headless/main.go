// Command headless plays the game without a window. It drives the core with
// the autopilot and logs each run's outcome and the final leaderboard.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/assets"
	"github.com/automoto/pixel-shooter/autopilot"
	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	arena := flag.String("arena", "", "arena to play; empty cycles through all of them")
	runs := flag.Int("runs", 3, "number of runs to play")
	seed := flag.Int64("seed", 1, "random seed")
	realtime := flag.Bool("realtime", false, "tick at the configured rate instead of as fast as possible")
	maxTicks := flag.Int("max-ticks", 20000, "abandon a run after this many ticks")
	difficulty := flag.String("difficulty", "normal", "autopilot skill: easy, normal or hard")
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

	skill, err := config.ParseBotDifficulty(*difficulty)
	if err != nil {
		logger.Fatal("bad flag", zap.Error(err))
	}

	arenas, names, err := assets.LoadArenas()
	if err != nil {
		logger.Fatal("load arenas", zap.Error(err))
	}
	catalog, err := economy.LoadCatalog(cfg.Economy.UpgradesFile)
	if err != nil {
		logger.Fatal("load upgrades", zap.Error(err))
	}
	if *arena != "" {
		if _, ok := arenas[*arena]; !ok {
			logger.Fatal("unknown arena", zap.String("arena", *arena), zap.Strings("available", names))
		}
		names = []string{*arena}
	}

	ledger := economy.NewLedger(cfg.Player, catalog, cfg.Economy.StartingBalance)
	session := core.NewSession(cfg, arenas, ledger, rand.New(rand.NewSource(*seed)), logger)
	loop := core.NewGameLoop(session, input.NewHolder(), cfg.Loop, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner{
		loop:     loop,
		pilot:    autopilot.New(skill),
		logger:   logger,
		maxTicks: *maxTicks,
		step:     loop.Tick,
	}
	if *realtime {
		go loop.Run(ctx)
		defer loop.Stop()
		r.step = func() { time.Sleep(cfg.Loop.TickPeriod) }
	}

	for i := 0; i < *runs && ctx.Err() == nil; i++ {
		r.play(ctx, names[i%len(names)])
		if cfg.Features.Economy {
			r.shop()
		}
	}

	snap := loop.Snapshot()
	for i, e := range snap.Leaderboard {
		logger.Info("leaderboard",
			zap.Int("rank", i+1),
			zap.String("name", e.Name),
			zap.Int("score", e.Score),
			zap.Time("date", e.Date),
		)
	}
	if n := loop.Dropped(); n > 0 {
		logger.Warn("events were dropped", zap.Uint64("count", n))
	}
}
