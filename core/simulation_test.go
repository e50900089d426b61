package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/archetypes"
	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/shared/gamemath"
	"github.com/automoto/pixel-shooter/shared/messages"
)

// testConfig is the default ruleset without passive drain so scenarios
// only see the damage they cause.
func testConfig() *config.Config {
	c := config.Default()
	c.Features.PassiveDrain = false
	return c
}

func newTestSim(t *testing.T, cfg *config.Config) (*Simulation, *economy.Ledger) {
	t.Helper()
	catalog, err := economy.DefaultCatalog()
	require.NoError(t, err)
	ledger := economy.NewLedger(cfg.Player, catalog, 0)
	sim := NewSimulation(cfg, nil, ledger.Stats(), rand.New(rand.NewSource(1)), ledger, zap.NewNop())
	return sim, ledger
}

func clearEnemies(s *Simulation) {
	for _, e := range s.enemies() {
		s.remove(e)
	}
}

// placeEnemy adds a stationary enemy that will not shoot.
func placeEnemy(s *Simulation, id int, pos gamemath.Vec2, hp float64) *donburi.Entry {
	e := archetypes.Enemy.Spawn(s.world)
	components.Enemy.SetValue(e, components.EnemyData{ID: id, ShootCooldown: 1e9})
	components.Position.SetValue(e, pos)
	components.Velocity.SetValue(e, gamemath.Zero)
	components.Health.SetValue(e, components.HealthData{Current: hp, Max: s.cfg.Enemy.MaxHealth})
	components.Collider.SetValue(e, components.ColliderData{Radius: s.cfg.Enemy.Radius})
	return e
}

func playerPos(s *Simulation) gamemath.Vec2 {
	return *components.Position.Get(s.player)
}

func playerHealth(s *Simulation) *components.HealthData {
	return components.Health.Get(s.player)
}

func fireAt(x, y float64) input.Intent {
	return input.Intent{Fires: []gamemath.Vec2{{X: x, Y: y}}}
}

func countEvents[T messages.Event](events []messages.Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func TestNewSimulationSpawnsBaseWave(t *testing.T) {
	cfg := testConfig()
	sim, _ := newTestSim(t, cfg)

	enemies := sim.enemies()
	require.Len(t, enemies, cfg.Wave.BaseCount)
	for i, e := range enemies {
		assert.Equal(t, i, components.Enemy.Get(e).ID)
		assert.True(t, sim.Bounds().Contains(*components.Position.Get(e)))
		assert.Equal(t, 1500.0, components.Enemy.Get(e).ShootCooldown)
	}
	assert.Equal(t, gamemath.Vec2{X: 400, Y: 300}, playerPos(sim))
	assert.Equal(t, 1, sim.Wave().Number)
}

func TestPositionsAndHealthStayInRange(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(99))
	sim, _ := newTestSim(t, cfg)

	for tick := 0; tick < 3000; tick++ {
		intent := input.Intent{Move: gamemath.Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}}
		if rng.Intn(3) == 0 {
			intent.Fires = []gamemath.Vec2{{X: rng.Float64() * 800, Y: rng.Float64() * 600}}
		}
		sim.Step(intent)

		require.True(t, sim.Bounds().Contains(playerPos(sim)), "tick %d player %v", tick, playerPos(sim))
		hp := playerHealth(sim)
		require.GreaterOrEqual(t, hp.Current, 0.0)
		require.LessOrEqual(t, hp.Current, hp.Max)

		for _, e := range sim.enemies() {
			pos := *components.Position.Get(e)
			require.True(t, sim.Bounds().Contains(pos), "tick %d enemy %v", tick, pos)
			h := components.Health.Get(e)
			require.Greater(t, h.Current, 0.0, "dead enemy still live")
			require.LessOrEqual(t, h.Current, h.Max)
		}
		if sim.Over() {
			sim, _ = newTestSim(t, cfg)
		}
	}
}

func TestPlayerMovementClampsToArena(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	for i := 0; i < 200; i++ {
		sim.Step(input.Intent{Move: gamemath.Vec2{X: -1, Y: 1}})
	}
	assert.Equal(t, gamemath.Vec2{X: 20, Y: 580}, playerPos(sim))
}

func TestDoubleFireWithinCooldownMakesOneProjectile(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)

	sim.Step(input.Intent{Fires: []gamemath.Vec2{{X: 400, Y: 0}, {X: 400, Y: 0}}})
	assert.Equal(t, 1, sim.Match().NextProjectileID)

	// 250ms cooldown at 50ms ticks: ticks 2..5 are still cooling
	for i := 0; i < 4; i++ {
		sim.Step(fireAt(400, 0))
	}
	assert.Equal(t, 1, sim.Match().NextProjectileID)

	sim.Step(fireAt(400, 0))
	assert.Equal(t, 2, sim.Match().NextProjectileID)
}

func TestFireAtOwnPositionIsIgnored(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	sim.Step(fireAt(400, 300))
	assert.Zero(t, sim.Match().NextProjectileID)
	assert.False(t, components.Player.Get(sim.player).CoolingDown)
}

func TestOwnershipIsolation(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	enemy := placeEnemy(sim, 0, gamemath.Vec2{X: 100, Y: 100}, 100)

	sim.spawnProjectile(components.FactionPlayer, playerPos(sim), gamemath.Zero, 25)
	sim.spawnProjectile(components.FactionEnemy, gamemath.Vec2{X: 100, Y: 100}, gamemath.Zero, 10)

	for i := 0; i < 5; i++ {
		sim.Step(input.Intent{})
	}
	assert.Equal(t, 100.0, playerHealth(sim).Current)
	assert.Equal(t, 100.0, components.Health.Get(enemy).Current)
	assert.Len(t, sim.projectiles(), 2)
}

func TestEnemyShotDamagesPlayer(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	sim.spawnProjectile(components.FactionEnemy, gamemath.Vec2{X: 400, Y: 305}, gamemath.Zero, 10)

	sim.Step(input.Intent{})
	assert.Equal(t, 90.0, playerHealth(sim).Current)
	assert.Empty(t, sim.projectiles())
}

func TestPlayerShotHitScenario(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	enemy := placeEnemy(sim, 0, gamemath.Vec2{X: 400, Y: 250}, 100)
	require.Equal(t, gamemath.Vec2{X: 400, Y: 300}, playerPos(sim))

	sim.Step(fireAt(400, 250))
	require.Len(t, sim.projectiles(), 1)

	for i := 0; i < 10 && len(sim.projectiles()) > 0; i++ {
		sim.Step(input.Intent{})
	}
	assert.Equal(t, 75.0, components.Health.Get(enemy).Current)
	assert.Empty(t, sim.projectiles())
	assert.Zero(t, sim.Match().Kills)
}

func TestKillAwardsScoreCurrencyAndKill(t *testing.T) {
	sim, ledger := newTestSim(t, testConfig())
	clearEnemies(sim)
	placeEnemy(sim, 0, gamemath.Vec2{X: 400, Y: 250}, 25)
	placeEnemy(sim, 1, gamemath.Vec2{X: 100, Y: 500}, 100)

	events := sim.Step(fireAt(400, 250))
	for i := 0; i < 10 && countEvents[messages.EnemyKilledEvent](events) == 0; i++ {
		events = sim.Step(input.Intent{})
	}

	require.Equal(t, 1, countEvents[messages.EnemyKilledEvent](events))
	m := sim.Match()
	assert.Equal(t, 100, m.Score)
	assert.Equal(t, 1, m.Kills)
	assert.Equal(t, 50, ledger.Balance())

	remaining := sim.enemies()
	require.Len(t, remaining, 1)
	assert.Equal(t, 1, components.Enemy.Get(remaining[0]).ID)
}

func TestMultipleHitsSameTickAllLand(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	enemy := placeEnemy(sim, 0, gamemath.Vec2{X: 600, Y: 100}, 100)
	placeEnemy(sim, 1, gamemath.Vec2{X: 100, Y: 500}, 100)

	sim.spawnProjectile(components.FactionPlayer, gamemath.Vec2{X: 600, Y: 110}, gamemath.Zero, 25)
	sim.spawnProjectile(components.FactionPlayer, gamemath.Vec2{X: 610, Y: 100}, gamemath.Zero, 25)

	sim.Step(input.Intent{})
	assert.Equal(t, 50.0, components.Health.Get(enemy).Current)
	assert.Empty(t, sim.projectiles())
}

func TestOverkillCountsOneKill(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	placeEnemy(sim, 0, gamemath.Vec2{X: 600, Y: 100}, 20)
	placeEnemy(sim, 1, gamemath.Vec2{X: 100, Y: 500}, 100)

	sim.spawnProjectile(components.FactionPlayer, gamemath.Vec2{X: 600, Y: 110}, gamemath.Zero, 25)
	sim.spawnProjectile(components.FactionPlayer, gamemath.Vec2{X: 610, Y: 100}, gamemath.Zero, 25)

	events := sim.Step(input.Intent{})
	assert.Equal(t, 1, countEvents[messages.EnemyKilledEvent](events))
	assert.Equal(t, 1, sim.Match().Kills)
	assert.Len(t, sim.enemies(), 1)
}

func TestWaveClearSpawnsEscalatedWave(t *testing.T) {
	cfg := testConfig()
	sim, ledger := newTestSim(t, cfg)
	clearEnemies(sim)
	placeEnemy(sim, 0, gamemath.Vec2{X: 400, Y: 250}, 25)
	components.Match.Get(sim.match).Kills = 6

	var cleared []messages.WaveClearedEvent
	sim.Step(fireAt(400, 250))
	for i := 0; i < 10 && len(cleared) == 0; i++ {
		for _, ev := range sim.Step(input.Intent{}) {
			if wc, ok := ev.(messages.WaveClearedEvent); ok {
				cleared = append(cleared, wc)
			}
		}
	}

	require.Len(t, cleared, 1)
	// min(12, 4 + 7/3)
	assert.Equal(t, messages.WaveClearedEvent{Wave: 1, Bonus: 200, NextCount: 6}, cleared[0])

	enemies := sim.enemies()
	require.Len(t, enemies, 6)
	for i, e := range enemies {
		assert.Equal(t, i, components.Enemy.Get(e).ID)
		assert.Equal(t, cfg.Enemy.MaxHealth, components.Health.Get(e).Current)
		assert.Equal(t, 1500.0, components.Enemy.Get(e).ShootCooldown)
	}
	w := sim.Wave()
	assert.Equal(t, 2, w.Number)
	assert.Equal(t, 6, w.Spawned)
	assert.Zero(t, w.Kills)
	assert.Equal(t, 300, sim.Match().Score)
	assert.Equal(t, 250, ledger.Balance())
}

func TestEmptyWaveWithoutKillsDoesNotClear(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	events := sim.Step(input.Intent{})
	assert.Zero(t, countEvents[messages.WaveClearedEvent](events))
	assert.Empty(t, sim.enemies())
	assert.False(t, sim.Over())
}

func TestNextWaveCountIsMonotonicAndBounded(t *testing.T) {
	w := config.Default().Wave
	prev := NextWaveCount(w, 0)
	assert.Equal(t, w.BaseCount, prev)
	for kills := 1; kills <= 100; kills++ {
		n := NextWaveCount(w, kills)
		assert.GreaterOrEqual(t, n, prev)
		assert.GreaterOrEqual(t, n, w.BaseCount)
		assert.LessOrEqual(t, n, w.Ceiling)
		if prev == w.Ceiling {
			assert.Equal(t, w.Ceiling, n)
		}
		prev = n
	}
	assert.Equal(t, w.Ceiling, prev)
}

func TestBasicRulesetClearIsVictory(t *testing.T) {
	cfg := config.Basic()
	cfg.Features.PassiveDrain = false
	sim, ledger := newTestSim(t, cfg)
	clearEnemies(sim)
	placeEnemy(sim, 0, gamemath.Vec2{X: 400, Y: 250}, 25)

	var all []messages.Event
	all = append(all, sim.Step(fireAt(400, 250))...)
	for i := 0; i < 10 && !sim.Over(); i++ {
		all = append(all, sim.Step(input.Intent{})...)
	}

	require.True(t, sim.Over())
	assert.Equal(t, components.OutcomeVictory, sim.Match().Outcome)
	assert.Equal(t, 1, countEvents[messages.VictoryEvent](all))
	assert.Zero(t, ledger.Balance(), "economy off: no currency")
	assert.Empty(t, sim.enemies())
}

func TestMaxWavesEndsWithVictory(t *testing.T) {
	cfg := testConfig()
	cfg.Wave.MaxWaves = 1
	sim, _ := newTestSim(t, cfg)
	clearEnemies(sim)
	placeEnemy(sim, 0, gamemath.Vec2{X: 400, Y: 250}, 25)

	sim.Step(fireAt(400, 250))
	for i := 0; i < 10 && !sim.Over(); i++ {
		sim.Step(input.Intent{})
	}
	assert.Equal(t, components.OutcomeVictory, sim.Match().Outcome)
	assert.Equal(t, 300, sim.Match().Score)
}

func TestDefeatEmittedExactlyOnce(t *testing.T) {
	cfg := config.Default()
	sim, _ := newTestSim(t, cfg)
	clearEnemies(sim)
	playerHealth(sim).Current = 0.25

	var all []messages.Event
	for i := 0; i < 20; i++ {
		all = append(all, sim.Step(input.Intent{})...)
	}
	assert.Equal(t, 1, countEvents[messages.DefeatEvent](all))
	assert.Equal(t, 0.0, playerHealth(sim).Current)
	assert.Equal(t, uint64(3), sim.Match().Tick, "finished runs stop advancing")
	assert.Equal(t, components.OutcomeDefeat, sim.Match().Outcome)
}

func TestDefeatWinsOverSimultaneousClear(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	placeEnemy(sim, 0, gamemath.Vec2{X: 600, Y: 100}, 10)
	sim.spawnProjectile(components.FactionPlayer, gamemath.Vec2{X: 600, Y: 100}, gamemath.Zero, 25)
	sim.spawnProjectile(components.FactionEnemy, playerPos(sim), gamemath.Zero, 10)
	playerHealth(sim).Current = 5

	events := sim.Step(input.Intent{})
	assert.Equal(t, 1, countEvents[messages.DefeatEvent](events))
	assert.Zero(t, countEvents[messages.WaveClearedEvent](events))
}

func TestPassiveDrain(t *testing.T) {
	cfg := config.Default()
	sim, _ := newTestSim(t, cfg)
	clearEnemies(sim)
	for i := 0; i < 10; i++ {
		sim.Step(input.Intent{})
	}
	assert.InDelta(t, 99.0, playerHealth(sim).Current, 1e-9)
}

func TestDrainImmunityPerk(t *testing.T) {
	cfg := config.Default()
	catalog, err := economy.DefaultCatalog()
	require.NoError(t, err)
	ledger := economy.NewLedger(cfg.Player, catalog, 1000)
	_, ok := ledger.Purchase(economy.UpgradeDrainImmunity)
	require.True(t, ok)

	sim := NewSimulation(cfg, nil, ledger.Stats(), rand.New(rand.NewSource(1)), ledger, zap.NewNop())
	clearEnemies(sim)
	for i := 0; i < 10; i++ {
		sim.Step(input.Intent{})
	}
	assert.Equal(t, 100.0, playerHealth(sim).Current)
}

func TestProjectilesLeavingArenaAreRemoved(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	sim.Step(fireAt(400, 0))
	require.Len(t, sim.projectiles(), 1)

	// 300px at 10px per tick
	for i := 0; i < 31; i++ {
		sim.Step(input.Intent{})
	}
	assert.Empty(t, sim.projectiles())
}

func TestCancelDropsPendingFireTimer(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	sim.Step(fireAt(400, 0))
	require.Equal(t, 1, sim.sched.Pending())

	sim.Cancel()
	assert.Zero(t, sim.sched.Pending())
	assert.False(t, components.Player.Get(sim.player).CoolingDown)
}

func TestSameSeedSameRun(t *testing.T) {
	cfg := config.Default()
	run := func() *Snapshot {
		sim, _ := newTestSim(t, cfg)
		for i := 0; i < 200; i++ {
			sim.Step(input.Intent{Move: gamemath.Vec2{X: 1}, Fires: []gamemath.Vec2{{X: 100, Y: 100}}})
		}
		snap := &Snapshot{}
		sim.fill(snap)
		return snap
	}
	assert.Equal(t, run(), run())
}

func TestEnemiesShootThePlayer(t *testing.T) {
	sim, _ := newTestSim(t, testConfig())
	clearEnemies(sim)
	e := placeEnemy(sim, 0, gamemath.Vec2{X: 400, Y: 150}, 100)
	components.Enemy.Get(e).ShootCooldown = 0

	sim.Step(input.Intent{})
	shots := sim.projectiles()
	require.Len(t, shots, 1)
	assert.Equal(t, components.FactionEnemy, components.Projectile.Get(shots[0]).Owner)
	assert.Equal(t, 1500.0, components.Enemy.Get(e).ShootCooldown)
}
