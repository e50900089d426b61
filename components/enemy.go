package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	// ID is unique within the current wave and restarts at 0 on every spawn batch.
	ID int
	// ShootCooldown counts down in milliseconds.
	ShootCooldown float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
