package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/pixel-shooter/shared/gamemath"
)

var arena = gamemath.NewRect(800, 600).Inset(20)

var tuning = Tuning{
	PursuitRadius:   350,
	StandoffRadius:  80,
	PursuitSpeed:    1.2,
	FireRange:       300,
	ShootInterval:   1500,
	ProjectileSpeed: 6,
}

func baseInput() Input {
	return Input{
		Position: gamemath.Vec2{X: 400, Y: 100},
		Velocity: gamemath.Vec2{X: 1, Y: 0},
		Cooldown: 1000,
		Player:   gamemath.Vec2{X: 400, Y: 550},
		Bounds:   arena,
		TickMs:   50,
		Tuning:   tuning,
	}
}

func TestDriftOutsideEngageBand(t *testing.T) {
	in := baseInput() // 450 away: beyond pursuit radius
	d := Decide(in)
	assert.Equal(t, gamemath.Vec2{X: 401, Y: 100}, d.Position)
	assert.Equal(t, in.Velocity, d.Velocity)
	assert.False(t, d.Fire)
	assert.Equal(t, 950.0, d.Cooldown)
}

func TestBounceReflectsOnlyTheCrossingAxis(t *testing.T) {
	in := baseInput()
	in.Position = gamemath.Vec2{X: 779, Y: 100}
	in.Velocity = gamemath.Vec2{X: 2, Y: 1}

	d := Decide(in)
	assert.Equal(t, gamemath.Vec2{X: -2, Y: 1}, d.Velocity)
	assert.Equal(t, gamemath.Vec2{X: 777, Y: 101}, d.Position)
}

func TestPursuitInsideBand(t *testing.T) {
	in := baseInput()
	in.Velocity = gamemath.Zero
	in.Player = gamemath.Vec2{X: 400, Y: 300} // 200 away

	d := Decide(in)
	assert.InDelta(t, 400, d.Position.X, 1e-9)
	assert.InDelta(t, 101.2, d.Position.Y, 1e-9)
}

func TestNoPursuitInsideStandoff(t *testing.T) {
	in := baseInput()
	in.Velocity = gamemath.Zero
	in.Player = gamemath.Vec2{X: 400, Y: 150} // 50 away

	d := Decide(in)
	assert.Equal(t, in.Position, d.Position)
}

func TestFireWhenReadyAndInRange(t *testing.T) {
	in := baseInput()
	in.Velocity = gamemath.Zero
	in.Cooldown = 40
	in.Player = gamemath.Vec2{X: 400, Y: 300}

	d := Decide(in)
	require.True(t, d.Fire)
	assert.Equal(t, tuning.ShootInterval, d.Cooldown)
	assert.InDelta(t, 0, d.ShotVelocity.X, 1e-9)
	assert.InDelta(t, tuning.ProjectileSpeed, d.ShotVelocity.Y, 1e-9)
}

func TestOutOfRangeKeepsCountingDown(t *testing.T) {
	in := baseInput()
	in.Cooldown = 10

	d := Decide(in)
	assert.False(t, d.Fire)
	assert.Equal(t, -40.0, d.Cooldown)

	in.Cooldown = d.Cooldown
	d = Decide(in)
	assert.False(t, d.Fire)
	assert.Equal(t, -90.0, d.Cooldown)
}

func TestZeroDistanceDegradesGracefully(t *testing.T) {
	in := baseInput()
	in.Velocity = gamemath.Zero
	in.Cooldown = 0
	in.Player = in.Position

	d := Decide(in)
	assert.False(t, d.Fire)
	assert.Equal(t, in.Position, d.Position)
	assert.Equal(t, -50.0, d.Cooldown)
}

func TestPositionsStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	in := baseInput()
	in.Velocity = gamemath.Vec2{X: 3.5, Y: -2.5}
	for i := 0; i < 2000; i++ {
		in.Player = gamemath.Vec2{X: 20 + rng.Float64()*760, Y: 20 + rng.Float64()*560}
		d := Decide(in)
		require.True(t, arena.Contains(d.Position), "tick %d: %v", i, d.Position)
		in.Position, in.Velocity, in.Cooldown = d.Position, d.Velocity, d.Cooldown
	}
}
