package main

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/assets"
	"github.com/automoto/pixel-shooter/autopilot"
	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/input"
)

func newTestRunner(t *testing.T, cfg *config.Config, balance int) (*runner, *core.Session) {
	t.Helper()
	arenas, _, err := assets.LoadArenas()
	require.NoError(t, err)
	catalog, err := economy.DefaultCatalog()
	require.NoError(t, err)
	ledger := economy.NewLedger(cfg.Player, catalog, balance)
	session := core.NewSession(cfg, arenas, ledger, rand.New(rand.NewSource(7)), zap.NewNop())
	loop := core.NewGameLoop(session, input.NewHolder(), cfg.Loop, zap.NewNop())
	return &runner{
		loop:     loop,
		pilot:    autopilot.New(config.BotDifficultyHard),
		logger:   zap.NewNop(),
		maxTicks: 5000,
		step:     loop.Tick,
	}, session
}

func TestRunnerPlaysARun(t *testing.T) {
	r, session := newTestRunner(t, config.Basic(), 0)

	res := r.play(context.Background(), "warehouse")
	assert.Contains(t, []string{"victory", "defeat", "abandoned"}, res.outcome)
	assert.Positive(t, res.ticks)

	if res.outcome == "abandoned" {
		assert.Equal(t, core.ScreenMenu, session.Screen())
		assert.Zero(t, session.Board().Len())
		return
	}
	assert.Equal(t, core.ScreenGameOver, session.Screen())
	assert.Equal(t, 1, session.Board().Len())
	assert.Equal(t, 0, res.rank)
	assert.Equal(t, res.score, session.Board().Entries()[0].Score)
}

func TestRunnerAbandonsAtTickLimit(t *testing.T) {
	r, session := newTestRunner(t, config.Default(), 0)
	r.maxTicks = 3

	res := r.play(context.Background(), "city")
	assert.Equal(t, "abandoned", res.outcome)
	assert.Equal(t, 3, res.ticks)
	assert.Equal(t, core.ScreenMenu, session.Screen())
	assert.Nil(t, session.Simulation())
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	r, _ := newTestRunner(t, config.Default(), 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := r.play(ctx, "desert")
	assert.Zero(t, res.ticks)
	assert.Equal(t, "abandoned", res.outcome)
}

func TestRunnerShopSpendsBalance(t *testing.T) {
	r, session := newTestRunner(t, config.Default(), 500)

	r.shop()
	assert.Less(t, session.Ledger().Balance(), 80, "cheapest upgrade should no longer be affordable")
	assert.Equal(t, core.ScreenMenu, session.Screen())

	total := 0
	for _, lvl := range session.Ledger().Levels() {
		total += lvl
	}
	assert.Positive(t, total)
}
