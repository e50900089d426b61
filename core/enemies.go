package core

import (
	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/ai"
	"github.com/automoto/pixel-shooter/archetypes"
	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

// spawnWave creates count enemies with ids 0..count-1.
func (s *Simulation) spawnWave(number, count int) {
	w := components.Wave.Get(s.match)
	w.Number = number
	w.Spawned = count
	w.Kills = 0

	for id := 0; id < count; id++ {
		s.spawnEnemy(id)
	}
	s.logger.Debug("wave spawned", zap.Int("wave", number), zap.Int("count", count))
}

func (s *Simulation) spawnEnemy(id int) {
	e := archetypes.Enemy.Spawn(s.world)
	components.Enemy.SetValue(e, components.EnemyData{
		ID:            id,
		ShootCooldown: s.tuning.ShootInterval,
	})
	components.Position.SetValue(e, s.randomSpawnPoint())
	components.Velocity.SetValue(e, gamemath.Vec2{
		X: (s.rng.Float64()*2 - 1) * s.cfg.Enemy.WanderSpeed,
		Y: (s.rng.Float64()*2 - 1) * s.cfg.Enemy.WanderSpeed,
	})
	components.Health.SetValue(e, components.HealthData{Current: s.cfg.Enemy.MaxHealth, Max: s.cfg.Enemy.MaxHealth})
	components.Collider.SetValue(e, components.ColliderData{Radius: s.cfg.Enemy.Radius})
}

// randomSpawnPoint picks a zone uniformly, then a point inside it. Arenas
// without zones use the spawn margin rectangle.
func (s *Simulation) randomSpawnPoint() gamemath.Vec2 {
	area := s.spawn
	if zones := s.arena.EnemyZones; len(zones) > 0 {
		idx := int(s.rng.Float64() * float64(len(zones)))
		if idx >= len(zones) {
			idx = len(zones) - 1
		}
		z := zones[idx]
		area = gamemath.Rect{MinX: z.X, MinY: z.Y, MaxX: z.X + z.W, MaxY: z.Y + z.H}
	}
	p := gamemath.Vec2{
		X: area.MinX + s.rng.Float64()*area.Width(),
		Y: area.MinY + s.rng.Float64()*area.Height(),
	}
	return gamemath.ClampToBounds(p, s.bounds)
}

func (s *Simulation) updateEnemies() {
	playerPos := *components.Position.Get(s.player)
	tickMs := s.cfg.Loop.TickMillis()

	for _, e := range s.enemies() {
		en := components.Enemy.Get(e)
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)

		d := ai.Decide(ai.Input{
			Position: *pos,
			Velocity: *vel,
			Cooldown: en.ShootCooldown,
			Player:   playerPos,
			Bounds:   s.bounds,
			TickMs:   tickMs,
			Tuning:   s.tuning,
		})
		*pos = d.Position
		*vel = d.Velocity
		en.ShootCooldown = d.Cooldown

		if d.Fire {
			s.spawnProjectile(components.FactionEnemy, d.Position, d.ShotVelocity, s.cfg.Enemy.ShotDamage)
		}
	}
}
