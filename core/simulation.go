// Package core is the headless game: the per-run simulation, the session
// that owns the screens and the shop, and the fixed-tick loop driving both.
package core

import (
	"sort"
	"time"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/ai"
	"github.com/automoto/pixel-shooter/archetypes"
	"github.com/automoto/pixel-shooter/collision"
	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/shared/gamemath"
	"github.com/automoto/pixel-shooter/shared/leveldata"
	"github.com/automoto/pixel-shooter/shared/messages"
)

// Simulation is one run on one arena. It owns a donburi world holding the
// player, the live enemies and the projectiles. Step is the only mutator.
type Simulation struct {
	cfg    *config.Config
	arena  *leveldata.Arena
	logger *zap.Logger

	world    donburi.World
	player   *donburi.Entry
	match    *donburi.Entry
	resolver *collision.Resolver
	sched    *Scheduler
	rng      RandomSource
	wallet   Wallet

	field  gamemath.Rect // whole arena, projectiles die outside it
	bounds gamemath.Rect // where actor centres may be
	spawn  gamemath.Rect // fallback enemy spawn area
	tuning ai.Tuning

	events []messages.Event
}

// NewSimulation sets up a run and spawns the first wave. A nil arena uses the
// configured dimensions; a nil wallet discards currency.
func NewSimulation(cfg *config.Config, arena *leveldata.Arena, stats economy.Stats, rng RandomSource, wallet Wallet, logger *zap.Logger) *Simulation {
	if arena == nil {
		arena = ArenaFromConfig(cfg.Arena)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	margin := arena.Margin
	if margin <= 0 {
		margin = cfg.Arena.Margin
	}

	s := &Simulation{
		cfg:      cfg,
		arena:    arena,
		logger:   logger.With(zap.String("arena", arena.Name)),
		world:    donburi.NewWorld(),
		resolver: collision.NewResolver(arena.Width, arena.Height),
		sched:    NewScheduler(),
		rng:      rng,
		wallet:   wallet,
		field:    gamemath.NewRect(arena.Width, arena.Height),
		tuning: ai.Tuning{
			PursuitRadius:   cfg.Enemy.PursuitRadius,
			StandoffRadius:  cfg.Enemy.StandoffRadius,
			PursuitSpeed:    cfg.Enemy.PursuitSpeed,
			FireRange:       cfg.Enemy.FireRange,
			ShootInterval:   durationMillis(cfg.Enemy.ShootInterval),
			ProjectileSpeed: cfg.Enemy.ProjectileSpeed,
		},
	}
	s.bounds = s.field.Inset(margin)
	s.spawn = s.field.Inset(cfg.Arena.SpawnMargin)

	s.match = archetypes.Match.Spawn(s.world)
	components.Match.SetValue(s.match, components.MatchData{Arena: arena.Name})

	s.spawnPlayer(stats)
	s.spawnWave(1, cfg.Wave.BaseCount)
	return s
}

// ArenaFromConfig builds an arena with no spawn zones from the config.
func ArenaFromConfig(c config.ArenaConfig) *leveldata.Arena {
	return &leveldata.Arena{
		Name:   c.Name,
		Width:  c.Width,
		Height: c.Height,
		Margin: c.Margin,
	}
}

// Step advances the run by one tick and returns the events it produced.
// A finished run does not advance.
func (s *Simulation) Step(intent input.Intent) []messages.Event {
	m := components.Match.Get(s.match)
	if m.Over() {
		return nil
	}
	s.events = s.events[:0]

	m.Tick++
	m.ElapsedMs += s.cfg.Loop.TickMillis()
	s.sched.Advance(time.Duration(m.Tick) * s.cfg.Loop.TickPeriod)

	s.updatePlayer(intent)
	s.updateEnemies()
	s.updateProjectiles()
	hits := s.resolveCollisions()
	s.applyHits(hits)
	s.applyDrain()
	s.checkOutcome()

	if len(s.events) == 0 {
		return nil
	}
	out := make([]messages.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Cancel stops the run's pending timers. The run can no longer fire.
func (s *Simulation) Cancel() {
	s.sched.CancelAll()
	p := components.Player.Get(s.player)
	p.CoolingDown = false
	p.FireTimer = 0
}

// Arena returns the map this run is played on.
func (s *Simulation) Arena() *leveldata.Arena { return s.arena }

// Bounds returns the rectangle actor centres are clamped to.
func (s *Simulation) Bounds() gamemath.Rect { return s.bounds }

// Match returns a copy of the run totals.
func (s *Simulation) Match() components.MatchData {
	return *components.Match.Get(s.match)
}

// Wave returns a copy of the current wave state.
func (s *Simulation) Wave() components.WaveData {
	return *components.Wave.Get(s.match)
}

// Over reports whether the run has ended.
func (s *Simulation) Over() bool {
	return components.Match.Get(s.match).Over()
}

func (s *Simulation) emit(e messages.Event) {
	s.events = append(s.events, e)
}

// enemies returns live enemy entries ordered by id.
func (s *Simulation) enemies() []*donburi.Entry {
	var out []*donburi.Entry
	components.Enemy.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Enemy.Get(out[i]).ID < components.Enemy.Get(out[j]).ID
	})
	return out
}

// projectiles returns live projectile entries ordered by id.
func (s *Simulation) projectiles() []*donburi.Entry {
	var out []*donburi.Entry
	components.Projectile.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Projectile.Get(out[i]).ID < components.Projectile.Get(out[j]).ID
	})
	return out
}

func (s *Simulation) spawnProjectile(owner components.Faction, pos, vel gamemath.Vec2, damage float64) {
	m := components.Match.Get(s.match)
	id := m.NextProjectileID
	m.NextProjectileID++

	e := archetypes.Projectile.Spawn(s.world)
	components.Projectile.SetValue(e, components.ProjectileData{ID: id, Owner: owner, Damage: damage})
	components.Position.SetValue(e, pos)
	components.Velocity.SetValue(e, vel)
	components.Collider.SetValue(e, components.ColliderData{Radius: s.cfg.Projectile.Radius})
}

func (s *Simulation) remove(e *donburi.Entry) {
	if e.Valid() {
		s.world.Remove(e.Entity())
	}
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
