// Package ai holds the per-tick enemy decision. Decide is pure: the same
// input always yields the same decision, and nothing is mutated.
package ai

import (
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

// Tuning is the fixed enemy behaviour shared by every enemy in a run.
type Tuning struct {
	// Enemies pursue the player while StandoffRadius < distance < PursuitRadius.
	PursuitRadius  float64
	StandoffRadius float64
	PursuitSpeed   float64

	FireRange       float64
	ShootInterval   float64 // ms
	ProjectileSpeed float64
}

// Input is one enemy's view of the world for a tick.
type Input struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Cooldown float64 // ms until the next shot is allowed
	Player   gamemath.Vec2
	// Bounds is the area the enemy centre must stay in.
	Bounds gamemath.Rect
	TickMs float64
	Tuning Tuning
}

// Decision is the enemy's next state plus an optional shot.
type Decision struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Cooldown float64

	Fire bool
	// ShotVelocity is set when Fire is true.
	ShotVelocity gamemath.Vec2
}

// Decide runs bounce, pursuit and shooting for one enemy.
func Decide(in Input) Decision {
	vel := bounce(in.Position, in.Velocity, in.Bounds)
	next := gamemath.Add(in.Position, vel)

	// distance is measured before moving so pursuit and aim agree
	dist := gamemath.Distance(in.Position, in.Player)
	if dist > in.Tuning.StandoffRadius && dist < in.Tuning.PursuitRadius {
		next = gamemath.Add(next, gamemath.Direction(in.Position, in.Player, in.Tuning.PursuitSpeed))
	}
	next = gamemath.ClampToBounds(next, in.Bounds)

	d := Decision{
		Position: next,
		Velocity: vel,
		Cooldown: in.Cooldown - in.TickMs,
	}

	if d.Cooldown <= 0 && dist > 0 && dist <= in.Tuning.FireRange {
		d.Fire = true
		d.ShotVelocity = gamemath.Direction(next, in.Player, in.Tuning.ProjectileSpeed)
		d.Cooldown = in.Tuning.ShootInterval
		if d.ShotVelocity == gamemath.Zero {
			// pursuit landed exactly on the player; aim from the old position
			d.ShotVelocity = gamemath.Direction(in.Position, in.Player, in.Tuning.ProjectileSpeed)
		}
	}
	return d
}

// bounce flips each velocity component whose step would leave bounds.
func bounce(pos, vel gamemath.Vec2, bounds gamemath.Rect) gamemath.Vec2 {
	nx := pos.X + vel.X
	if nx < bounds.MinX || nx > bounds.MaxX {
		vel.X = -vel.X
	}
	ny := pos.Y + vel.Y
	if ny < bounds.MinY || ny > bounds.MaxY {
		vel.Y = -vel.Y
	}
	return vel
}
