package core

import (
	"github.com/automoto/pixel-shooter/archetypes"
	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

func (s *Simulation) spawnPlayer(stats economy.Stats) {
	pos := s.bounds.Center()
	if s.arena.HasSpawn {
		pos = gamemath.Vec2{X: s.arena.PlayerSpawn.X, Y: s.arena.PlayerSpawn.Y}
	}

	s.player = archetypes.Player.Spawn(s.world)
	components.Player.SetValue(s.player, components.PlayerData{
		Speed:         stats.Speed,
		Damage:        stats.Damage,
		FireCooldown:  stats.FireCooldown,
		DrainImmunity: stats.DrainImmunity,
	})
	components.Position.SetValue(s.player, gamemath.ClampToBounds(pos, s.bounds))
	components.Health.SetValue(s.player, components.HealthData{Current: stats.MaxHealth, Max: stats.MaxHealth})
	components.Collider.SetValue(s.player, components.ColliderData{Radius: s.cfg.Player.Radius})
}

func (s *Simulation) updatePlayer(intent input.Intent) {
	p := components.Player.Get(s.player)
	pos := components.Position.Get(s.player)

	step := gamemath.Scale(intent.Move, p.Speed)
	*pos = gamemath.ClampToBounds(gamemath.Add(*pos, step), s.bounds)

	for _, target := range intent.Fires {
		s.firePlayer(target)
	}
}

// firePlayer spawns a shot toward target unless the weapon is cooling down.
// Requests during the cooldown are dropped, never queued.
func (s *Simulation) firePlayer(target gamemath.Vec2) {
	p := components.Player.Get(s.player)
	if p.CoolingDown {
		return
	}
	from := *components.Position.Get(s.player)
	vel := gamemath.Direction(from, target, s.cfg.Player.ProjectileSpeed)
	if vel == gamemath.Zero {
		return
	}
	damage := p.Damage

	if p.FireCooldown > 0 {
		p.CoolingDown = true
		entry := s.player
		p.FireTimer = uint64(s.sched.After(p.FireCooldown, func() {
			if !entry.Valid() {
				return
			}
			pd := components.Player.Get(entry)
			pd.CoolingDown = false
			pd.FireTimer = 0
		}))
	}

	s.spawnProjectile(components.FactionPlayer, from, vel, damage)
}
