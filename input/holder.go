// Package input is the hand-off point between frontend goroutines and the
// game loop. Frontends write movement and fire requests; the loop drains
// them once per tick.
package input

import (
	"sync"

	"github.com/automoto/pixel-shooter/shared/gamemath"
)

// MaxQueuedFires bounds the fire queue between two ticks. Extra requests are
// dropped, the fire-rate cooldown would reject them anyway.
const MaxQueuedFires = 8

// Intent is everything the player asked for since the previous tick.
type Intent struct {
	// Move is a direction with components in [-1, 1]; it is scaled by the
	// player's speed inside the simulation.
	Move  gamemath.Vec2
	Fires []gamemath.Vec2
}

// Holder is safe for concurrent use.
type Holder struct {
	mu    sync.Mutex
	move  gamemath.Vec2
	fires []gamemath.Vec2
}

func NewHolder() *Holder {
	return &Holder{fires: make([]gamemath.Vec2, 0, MaxQueuedFires)}
}

// SetMove replaces the held movement direction. Components are clamped to [-1, 1].
func (h *Holder) SetMove(dir gamemath.Vec2) {
	dir.X = gamemath.ClampFloat(dir.X, -1, 1)
	dir.Y = gamemath.ClampFloat(dir.Y, -1, 1)
	h.mu.Lock()
	h.move = dir
	h.mu.Unlock()
}

// SetKeys derives the movement direction from four held keys.
// Opposite keys cancel out.
func (h *Holder) SetKeys(up, down, left, right bool) {
	var dir gamemath.Vec2
	if up {
		dir.Y--
	}
	if down {
		dir.Y++
	}
	if left {
		dir.X--
	}
	if right {
		dir.X++
	}
	h.SetMove(dir)
}

// Fire queues a shot at an arena-space target. It reports false when the
// queue is full.
func (h *Holder) Fire(target gamemath.Vec2) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.fires) >= MaxQueuedFires {
		return false
	}
	h.fires = append(h.fires, target)
	return true
}

// Drain returns the current intent and empties the fire queue. The movement
// direction stays until the next SetMove.
func (h *Holder) Drain() Intent {
	h.mu.Lock()
	defer h.mu.Unlock()
	in := Intent{Move: h.move}
	if len(h.fires) > 0 {
		in.Fires = make([]gamemath.Vec2, len(h.fires))
		copy(in.Fires, h.fires)
		h.fires = h.fires[:0]
	}
	return in
}

// Reset clears movement and queued shots.
func (h *Holder) Reset() {
	h.mu.Lock()
	h.move = gamemath.Zero
	h.fires = h.fires[:0]
	h.mu.Unlock()
}

// Deadzone zeroes an analog stick reading whose magnitude is below dz and
// rescales the rest so movement ramps up from 0 at the deadzone edge.
func Deadzone(stick gamemath.Vec2, dz float64) gamemath.Vec2 {
	mag := gamemath.Length(stick)
	if mag < dz || mag == 0 {
		return gamemath.Zero
	}
	if mag > 1 {
		mag = 1
	}
	scaled := (mag - dz) / (1 - dz)
	return gamemath.Scale(gamemath.Normalize(stick), scaled)
}
