package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	// ID increases monotonically for the whole run.
	ID     int
	Owner  Faction
	Damage float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
