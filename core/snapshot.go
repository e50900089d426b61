package core

import (
	"github.com/automoto/pixel-shooter/components"
	"github.com/automoto/pixel-shooter/economy"
	"github.com/automoto/pixel-shooter/leaderboard"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

// ActorView is a read-only copy of the player or an enemy.
type ActorView struct {
	ID        int
	X, Y      float64
	Radius    float64
	Health    float64
	MaxHealth float64
}

// ProjectileView is a read-only copy of a projectile.
type ProjectileView struct {
	ID     int
	Owner  components.Faction
	X, Y   float64
	Radius float64
}

// ShopItem is one row of the shop as the frontend shows it.
type ShopItem struct {
	Kind       economy.Upgrade
	Label      string
	Cost       int
	Level      int
	Affordable bool
}

// Snapshot is the complete renderable state after a tick. It is never
// mutated after publication, so readers on other goroutines may keep it.
type Snapshot struct {
	Screen     Screen
	Tick       uint64
	PlayerName string

	Arenas     []string
	Arena      string
	Width      float64
	Height     float64
	Background string

	Running     bool
	Player      ActorView
	CoolingDown bool
	Enemies     []ActorView
	Projectiles []ProjectileView

	Score    int
	Kills    int
	Wave     int
	Currency int
	Economy  bool
	Shop     []ShopItem

	Leaderboard []leaderboard.Entry
	Outcome     components.Outcome
	FinalScore  int
	// Rank of the last finished run on the leaderboard, -1 if it did not place.
	Rank int
}

// fill copies the run's entities into snap.
func (s *Simulation) fill(snap *Snapshot) {
	m := components.Match.Get(s.match)
	w := components.Wave.Get(s.match)

	snap.Arena = s.arena.Name
	snap.Width = s.arena.Width
	snap.Height = s.arena.Height
	snap.Background = s.arena.Background
	snap.Running = !m.Over()
	snap.Tick = m.Tick
	snap.Score = m.Score
	snap.Kills = m.Kills
	snap.Wave = w.Number
	snap.Outcome = m.Outcome

	pos := components.Position.Get(s.player)
	hp := components.Health.Get(s.player)
	snap.Player = ActorView{
		X:         pos.X,
		Y:         pos.Y,
		Radius:    components.Collider.Get(s.player).Radius,
		Health:    hp.Current,
		MaxHealth: hp.Max,
	}
	snap.CoolingDown = components.Player.Get(s.player).CoolingDown

	enemies := s.enemies()
	snap.Enemies = make([]ActorView, 0, len(enemies))
	for _, e := range enemies {
		p := components.Position.Get(e)
		h := components.Health.Get(e)
		snap.Enemies = append(snap.Enemies, ActorView{
			ID:        components.Enemy.Get(e).ID,
			X:         p.X,
			Y:         p.Y,
			Radius:    components.Collider.Get(e).Radius,
			Health:    h.Current,
			MaxHealth: h.Max,
		})
	}

	shots := s.projectiles()
	snap.Projectiles = make([]ProjectileView, 0, len(shots))
	for _, e := range shots {
		p := components.Position.Get(e)
		pd := components.Projectile.Get(e)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:     pd.ID,
			Owner:  pd.Owner,
			X:      p.X,
			Y:      p.Y,
			Radius: components.Collider.Get(e).Radius,
		})
	}
}

// NearestEnemy returns the position of the enemy closest to the player.
// Ties go to the lower id.
func (s *Snapshot) NearestEnemy() (gamemath.Vec2, bool) {
	player := gamemath.Vec2{X: s.Player.X, Y: s.Player.Y}
	best, bestDist, found := gamemath.Zero, 0.0, false
	for _, e := range s.Enemies {
		p := gamemath.Vec2{X: e.X, Y: e.Y}
		d := gamemath.Distance(player, p)
		if !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}
