package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveObstaclesPushOut(t *testing.T) {
	fx := newFixture(t, nil)
	fx.st.Obstacles = []component.Obstacle{{X: 100, Y: 100, W: 200, H: 100}}
	const radius = 18.0

	tests := []struct {
		name string
		pos  utils.Vec2
		want utils.Vec2
	}{
		{"clear", utils.Vec2{X: 50, Y: 50}, utils.Vec2{X: 50, Y: 50}},
		{"left face", utils.Vec2{X: 95, Y: 150}, utils.Vec2{X: 81, Y: 150}},
		{"below", utils.Vec2{X: 200, Y: 210}, utils.Vec2{X: 200, Y: 219}},
		{"centre inside, top closest", utils.Vec2{X: 200, Y: 110}, utils.Vec2{X: 200, Y: 81}},
		{"centre inside, right closest", utils.Vec2{X: 295, Y: 150}, utils.Vec2{X: 319, Y: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveObstacles(fx.st, tt.pos, radius)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestResolveObstaclesLeavesClearance(t *testing.T) {
	fx := newFixture(t, nil)
	o := component.Obstacle{X: 400, Y: 300, W: 150, H: 220}
	fx.st.Obstacles = []component.Obstacle{o}
	rng := utils.NewPRNGService(11)
	const radius = 18.0

	for i := 0; i < 1000; i++ {
		pos := utils.Vec2{X: rng.Range(350, 600), Y: rng.Range(250, 570)}
		got := ResolveObstacles(fx.st, pos, radius)
		assert.False(t, o.Contains(got))
		assert.GreaterOrEqual(t, o.Nearest(got).Dist(got), radius+fx.st.Tuning.CollisionMargin-1e-9)
	}
}

func TestMoveClampsToWorld(t *testing.T) {
	fx := newFixture(t, nil)
	body := &component.Body{Pos: utils.Vec2{X: 20, Y: 20}, Radius: 18}

	fx.movement.Move(body, utils.Vec2{X: -1, Y: -1}.Normalize(utils.UnitX), 500, 0.05)
	assert.Equal(t, utils.Vec2{X: 18, Y: 18}, body.Pos)

	body.Pos = utils.Vec2{X: 100, Y: 100}
	fx.movement.Move(body, utils.UnitX, 200, 0.5)
	assert.InDelta(t, 200, body.Pos.X, 1e-9)
	assert.InDelta(t, 100, body.Pos.Y, 1e-9)
}

func TestPlayerDash(t *testing.T) {
	fx := newFixture(t, nil)
	p := fx.st.Player
	tuning := fx.st.Tuning
	start := p.Pos

	fx.player.Steer(p, utils.Vec2{}, true, 0.01)
	assert.True(t, p.Dashing(fx.st.Now))
	// Рывок без направления идёт по прицелу
	assert.InDelta(t, tuning.FighterSpeed*tuning.DashSpeedMultiplier*0.01, p.Pos.Dist(start), 1e-9)
	assert.InDelta(t, fx.st.Now+tuning.DashCooldown, p.DashReadyAt, 1e-9)

	readyAt := p.DashReadyAt
	fx.player.Steer(p, utils.Vec2{Y: 1}, true, 0.01)
	assert.Equal(t, readyAt, p.DashReadyAt)
	assert.Equal(t, utils.Vec2{Y: 1}, p.Aim)
}

func TestPlayerMoveIntentIsCapped(t *testing.T) {
	fx := newFixture(t, nil)
	p := fx.st.Player
	start := p.Pos
	fx.player.Steer(p, utils.Vec2{X: 3, Y: 4}, false, 0.02)
	assert.InDelta(t, fx.st.Tuning.FighterSpeed*0.02, p.Pos.Dist(start), 1e-9)
}
