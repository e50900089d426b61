package core

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/pixel-shooter/collision"
	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/shared/messages"
)

func (s *Simulation) resolveCollisions() []collision.Hit {
	shots := s.projectiles()
	if len(shots) == 0 {
		return nil
	}
	projectiles := make([]collision.Body, 0, len(shots))
	for _, e := range shots {
		pd := components.Projectile.Get(e)
		projectiles = append(projectiles, collision.Body{
			ID:       pd.ID,
			Faction:  pd.Owner,
			Position: *components.Position.Get(e),
			Radius:   components.Collider.Get(e).Radius,
		})
	}

	actors := []collision.Body{{
		ID:       0,
		Faction:  components.FactionPlayer,
		Position: *components.Position.Get(s.player),
		Radius:   components.Collider.Get(s.player).Radius,
	}}
	for _, e := range s.enemies() {
		actors = append(actors, collision.Body{
			ID:       components.Enemy.Get(e).ID,
			Faction:  components.FactionEnemy,
			Position: *components.Position.Get(e),
			Radius:   components.Collider.Get(e).Radius,
		})
	}

	return s.resolver.Resolve(projectiles, actors)
}

// applyHits removes every projectile that hit and applies its damage. All
// hits on the same target land, and a target that dies is killed once.
func (s *Simulation) applyHits(hits []collision.Hit) {
	if len(hits) == 0 {
		return
	}

	shots := make(map[int]*donburi.Entry)
	for _, e := range s.projectiles() {
		shots[components.Projectile.Get(e).ID] = e
	}
	enemies := make(map[int]*donburi.Entry)
	for _, e := range s.enemies() {
		enemies[components.Enemy.Get(e).ID] = e
	}

	var dead []*donburi.Entry
	killed := make(map[int]bool)
	for _, h := range hits {
		shot, ok := shots[h.ProjectileID]
		if !ok {
			continue
		}
		damage := components.Projectile.Get(shot).Damage
		s.remove(shot)

		switch h.TargetFaction {
		case components.FactionEnemy:
			target, ok := enemies[h.TargetID]
			if !ok {
				continue
			}
			if components.Health.Get(target).Damage(damage) && !killed[h.TargetID] {
				killed[h.TargetID] = true
				dead = append(dead, target)
			}
		case components.FactionPlayer:
			components.Health.Get(s.player).Damage(damage)
		}
	}

	for _, e := range dead {
		s.killEnemy(e)
	}
}

func (s *Simulation) killEnemy(e *donburi.Entry) {
	id := components.Enemy.Get(e).ID
	pos := *components.Position.Get(e)
	s.remove(e)

	m := components.Match.Get(s.match)
	m.Score += s.cfg.Combat.KillScore
	m.Kills++
	components.Wave.Get(s.match).Kills++

	currency := 0
	if s.cfg.Features.Economy {
		currency = s.cfg.Combat.KillCurrency
		s.credit(currency)
	}

	s.emit(messages.EnemyKilledEvent{
		EnemyID:  id,
		Score:    s.cfg.Combat.KillScore,
		Currency: currency,
		X:        pos.X,
		Y:        pos.Y,
	})
	s.logger.Debug("enemy killed", zap.Int("enemy", id), zap.Int("score", m.Score))
}

// applyDrain is the passive attrition applied every tick.
func (s *Simulation) applyDrain() {
	if !s.cfg.Features.PassiveDrain || s.cfg.Combat.DrainPerTick <= 0 {
		return
	}
	if components.Player.Get(s.player).DrainImmunity {
		return
	}
	components.Health.Get(s.player).Damage(s.cfg.Combat.DrainPerTick)
}

func (s *Simulation) credit(amount int) {
	if s.wallet != nil {
		s.wallet.Credit(amount)
	}
}
