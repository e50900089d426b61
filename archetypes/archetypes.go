package archetypes

import (
	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Health,
		components.Collider,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Velocity,
		components.Health,
		components.Collider,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Position,
		components.Velocity,
		components.Collider,
	)
	Match = newArchetype(
		tags.Match,
		components.Match,
		components.Wave,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
