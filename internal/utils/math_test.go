package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, UnitX, Vec2{}.Normalize(UnitX))
	n := Vec2{3, 4}.Normalize(UnitX)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestPointSegmentDistance(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{10, 0}
	tests := []struct {
		name string
		p    Vec2
		want float64
	}{
		{"над серединой", Vec2{5, 3}, 3},
		{"за концом", Vec2{13, 4}, 5},
		{"перед началом", Vec2{-3, 0}, 3},
		{"на отрезке", Vec2{7, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PointSegmentDistance(tt.p, a, b), 1e-9)
		})
	}
	assert.InDelta(t, 5.0, PointSegmentDistance(Vec2{3, 4}, a, a), 1e-9)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-9)
	assert.InDelta(t, 0.5, NormalizeAngle(0.5+4*math.Pi), 1e-9)
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(-3, 1, 2))
	assert.Equal(t, 2.0, Clamp(9, 1, 2))
	assert.Equal(t, 7, ClampInt(7, 0, 10))
	assert.Equal(t, 10, ClampInt(11, 0, 10))
	assert.Equal(t, 15.0, Lerp(10, 20, 0.5))
	assert.Equal(t, Vec2{5, 10}, LerpVec(Vec2{}, Vec2{10, 20}, 0.5))
}
