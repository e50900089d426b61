// Command termshooter plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
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
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	logPath := flag.String("log", "termshooter.log", "log file used when the config sets no output")
	demo := flag.String("autopilot", "", "let the autopilot play: easy, normal or hard")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath, *demo); err != nil {
		fmt.Fprintf(os.Stderr, "termshooter: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, logPath, demo string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// stderr belongs to the terminal UI
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = logPath
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	arenas, _, err := assets.LoadArenas()
	if err != nil {
		return err
	}
	catalog, err := economy.LoadCatalog(cfg.Economy.UpgradesFile)
	if err != nil {
		return err
	}

	var pilot *autopilot.Pilot
	if demo != "" {
		skill, err := config.ParseBotDifficulty(demo)
		if err != nil {
			return err
		}
		pilot = autopilot.New(skill)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ledger := economy.NewLedger(cfg.Player, catalog, cfg.Economy.StartingBalance)
	session := core.NewSession(cfg, arenas, ledger, rand.New(rand.NewSource(seed)), logger)
	loop := core.NewGameLoop(session, input.NewHolder(), cfg.Loop, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)
	defer loop.Stop()

	a := &app{
		loop:   loop,
		view:   &view{screen: screen},
		pilot:  pilot,
		logger: logger,
	}
	logger.Info("terminal client started", zap.Int64("seed", seed), zap.Bool("autopilot", pilot != nil))

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			a.frame(now)
		}
	}
}
