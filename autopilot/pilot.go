// Package autopilot plays the game from snapshots. The headless runner uses
// it to exercise full runs and the terminal client offers it as a demo mode.
package autopilot

import (
	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

// wallSlack is how close to an edge the pilot gets before it stops backing
// into it.
const wallSlack = 40

// Decision is one tick's worth of input.
type Decision struct {
	Move   gamemath.Vec2
	Target gamemath.Vec2
	Fire   bool
}

// Pilot shoots the nearest enemy and kites away from anything too close.
type Pilot struct {
	tuning   config.BotDifficultyConfig
	cooldown int
}

func New(d config.BotDifficulty) *Pilot {
	return &Pilot{tuning: config.Bot.Difficulties[d]}
}

// Reset clears per-run state.
func (p *Pilot) Reset() {
	p.cooldown = 0
}

// Steer decides and writes the result to h.
func (p *Pilot) Steer(snap *core.Snapshot, h *input.Holder) Decision {
	d := p.Decide(snap)
	h.SetMove(d.Move)
	if d.Fire {
		h.Fire(d.Target)
	}
	return d
}

// Decide picks movement and an optional shot for the current snapshot.
func (p *Pilot) Decide(snap *core.Snapshot) Decision {
	if snap == nil || !snap.Running {
		return Decision{}
	}
	target, ok := snap.NearestEnemy()
	if !ok {
		return Decision{}
	}

	player := gamemath.Vec2{X: snap.Player.X, Y: snap.Player.Y}
	dist := gamemath.Distance(player, target)

	var out Decision
	retreating := snap.Player.MaxHealth > 0 &&
		snap.Player.Health/snap.Player.MaxHealth < p.tuning.RetreatThreshold
	if dist < p.tuning.KiteRange || (retreating && p.tuning.KiteRange > 0) {
		out.Move = avoidWalls(gamemath.Normalize(gamemath.Sub(player, target)), player, snap)
	}

	if p.cooldown > 0 {
		p.cooldown--
		return out
	}
	if dist <= p.tuning.AttackRange {
		out.Fire = true
		out.Target = target
		p.cooldown = p.tuning.ReactionDelay
	}
	return out
}

// avoidWalls drops the components of move that push into a nearby edge and,
// when that leaves nothing, slides along the wall instead.
func avoidWalls(move, pos gamemath.Vec2, snap *core.Snapshot) gamemath.Vec2 {
	orig := move
	if (pos.X < wallSlack && move.X < 0) || (pos.X > snap.Width-wallSlack && move.X > 0) {
		move.X = 0
	}
	if (pos.Y < wallSlack && move.Y < 0) || (pos.Y > snap.Height-wallSlack && move.Y > 0) {
		move.Y = 0
	}
	if move == gamemath.Zero && orig != gamemath.Zero {
		// cornered: perpendicular, toward the arena centre
		move = gamemath.Vec2{X: -orig.Y, Y: orig.X}
		centre := gamemath.Vec2{X: snap.Width / 2, Y: snap.Height / 2}
		if gamemath.Distance(gamemath.Add(pos, move), centre) > gamemath.Distance(gamemath.Sub(pos, move), centre) {
			move = gamemath.Scale(move, -1)
		}
	}
	return move
}
