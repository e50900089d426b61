package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Match      = donburi.NewTag().SetName("Match")
)

// Resolv tags for the collision broadphase
const (
	ResolvPlayer     = "player"
	ResolvEnemy      = "enemy"
	ResolvProjectile = "projectile"
)
