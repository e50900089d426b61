package core

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

// updateProjectiles moves every projectile in a straight line and drops the
// ones that left the arena.
func (s *Simulation) updateProjectiles() {
	var gone []*donburi.Entry
	components.Projectile.Each(s.world, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		*pos = gamemath.Add(*pos, *components.Velocity.Get(e))
		if !s.field.Contains(*pos) {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		s.remove(e)
	}
}
