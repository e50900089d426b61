package components

import (
	"github.com/automoto/pixel-shooter/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Faction decides which side an actor or projectile belongs to.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionEnemy {
		return "enemy"
	}
	return "player"
}

// Opponent returns the faction this one may damage.
func (f Faction) Opponent() Faction {
	if f == FactionPlayer {
		return FactionEnemy
	}
	return FactionPlayer
}

// ColliderData is the fixed hit radius of an entity.
type ColliderData struct {
	Radius float64
}

var (
	Position = donburi.NewComponentType[gamemath.Vec2]()
	Velocity = donburi.NewComponentType[gamemath.Vec2]()
	Collider = donburi.NewComponentType[ColliderData]()
)
