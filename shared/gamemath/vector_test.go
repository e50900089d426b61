package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Vec2{X: 0, Y: 0}, Vec2{X: 3, Y: 4}), 1e-9)
	assert.InDelta(t, 50.0, Distance(Vec2{X: 400, Y: 300}, Vec2{X: 400, Y: 250}), 1e-9)
	assert.Zero(t, Distance(Vec2{X: 7, Y: 7}, Vec2{X: 7, Y: 7}))
}

func TestNormalize(t *testing.T) {
	n := Normalize(Vec2{X: 3, Y: 4})
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 1.0, Length(n), 1e-9)
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Normalize(Zero)
	assert.Equal(t, Zero, n)
	assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y))
}

func TestDirectionCoincidentPoints(t *testing.T) {
	p := Vec2{X: 10, Y: 10}
	assert.Equal(t, Zero, Direction(p, p, 5))

	d := Direction(Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: -20}, 10)
	assert.InDelta(t, 0, d.X, 1e-9)
	assert.InDelta(t, -10, d.Y, 1e-9)
}

func TestClampToBounds(t *testing.T) {
	r := NewRect(800, 600).Inset(20)

	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", Vec2{X: 400, Y: 300}, Vec2{X: 400, Y: 300}},
		{"left", Vec2{X: -5, Y: 300}, Vec2{X: 20, Y: 300}},
		{"bottom right", Vec2{X: 900, Y: 700}, Vec2{X: 780, Y: 580}},
		{"top edge", Vec2{X: 100, Y: 20}, Vec2{X: 100, Y: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToBounds(tt.in, r)
			assert.Equal(t, tt.want, got)
			assert.True(t, r.Contains(got))
		})
	}
}

func TestRectContainsOpen(t *testing.T) {
	r := NewRect(800, 600)
	assert.True(t, r.ContainsOpen(Vec2{X: 1, Y: 1}))
	assert.False(t, r.ContainsOpen(Vec2{X: 0, Y: 300}))
	assert.False(t, r.ContainsOpen(Vec2{X: 800, Y: 300}))
	assert.True(t, r.Contains(Vec2{X: 800, Y: 600}))
	assert.Equal(t, Vec2{X: 400, Y: 300}, r.Center())
}
