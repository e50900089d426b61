package autopilot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/pixel-shooter/config"
	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

func snapshot(player core.ActorView, enemies ...core.ActorView) *core.Snapshot {
	if player.MaxHealth == 0 {
		player.Health, player.MaxHealth = 100, 100
	}
	return &core.Snapshot{
		Running: true,
		Width:   800,
		Height:  600,
		Player:  player,
		Enemies: enemies,
	}
}

func TestDecideIdleWithoutEnemies(t *testing.T) {
	p := New(config.BotDifficultyHard)
	assert.Equal(t, Decision{}, p.Decide(snapshot(core.ActorView{X: 400, Y: 300})))
	assert.Equal(t, Decision{}, p.Decide(nil))
	assert.Equal(t, Decision{}, p.Decide(&core.Snapshot{}))
}

func TestDecideFiresAtNearest(t *testing.T) {
	p := New(config.BotDifficultyHard)
	d := p.Decide(snapshot(core.ActorView{X: 400, Y: 300},
		core.ActorView{ID: 0, X: 700, Y: 300},
		core.ActorView{ID: 1, X: 400, Y: 500},
	))
	require.True(t, d.Fire)
	assert.Equal(t, gamemath.Vec2{X: 400, Y: 500}, d.Target)
	assert.Equal(t, gamemath.Zero, d.Move)
}

func TestDecideKitesAwayFromCloseEnemy(t *testing.T) {
	p := New(config.BotDifficultyHard)
	d := p.Decide(snapshot(core.ActorView{X: 400, Y: 300}, core.ActorView{X: 450, Y: 300}))
	assert.Less(t, d.Move.X, 0.0)
	assert.InDelta(t, 0.0, d.Move.Y, 1e-9)
}

func TestDecideRespectsReactionDelay(t *testing.T) {
	p := New(config.BotDifficultyNormal)
	snap := snapshot(core.ActorView{X: 100, Y: 300}, core.ActorView{X: 400, Y: 300})

	fired := 0
	for i := 0; i < 8; i++ {
		if p.Decide(snap).Fire {
			fired++
		}
	}
	// delay 3: fires on ticks 0 and 4
	assert.Equal(t, 2, fired)

	p.Reset()
	assert.True(t, p.Decide(snap).Fire)
}

func TestDecideOutOfRange(t *testing.T) {
	p := New(config.BotDifficultyEasy)
	d := p.Decide(snapshot(core.ActorView{X: 20, Y: 20}, core.ActorView{X: 780, Y: 580}))
	assert.False(t, d.Fire)
}

func TestAvoidWallsSlidesWhenCornered(t *testing.T) {
	snap := snapshot(core.ActorView{})
	move := avoidWalls(gamemath.Vec2{X: -1}, gamemath.Vec2{X: 25, Y: 300}, snap)
	assert.Zero(t, move.X)
	assert.NotZero(t, move.Y)

	move = avoidWalls(gamemath.Vec2{X: -0.7, Y: 0.7}, gamemath.Vec2{X: 25, Y: 300}, snap)
	assert.Zero(t, move.X)
	assert.InDelta(t, 0.7, move.Y, 1e-9)
}

func TestSteerWritesHolder(t *testing.T) {
	p := New(config.BotDifficultyHard)
	h := input.NewHolder()
	p.Steer(snapshot(core.ActorView{X: 400, Y: 300}, core.ActorView{X: 420, Y: 300}), h)

	in := h.Drain()
	assert.Less(t, in.Move.X, 0.0)
	require.Len(t, in.Fires, 1)
	assert.Equal(t, gamemath.Vec2{X: 420, Y: 300}, in.Fires[0])
}

func TestParseBotDifficulty(t *testing.T) {
	d, err := config.ParseBotDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, config.BotDifficultyHard, d)
	_, err = config.ParseBotDifficulty("nightmare")
	assert.Error(t, err)
}
