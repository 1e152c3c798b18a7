package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	fx := newFixture(t, nil)
	st := fx.st
	fx.spawn.Populate()

	assert.Len(t, st.Enemies, st.Tuning.EnemyCount)
	assert.Len(t, st.Parts, st.Tuning.InitialParts)
	assert.GreaterOrEqual(t, st.NextBossAt, st.Now+st.Tuning.BossTimerMin)
	assert.Less(t, st.NextBossAt, st.Now+st.Tuning.BossTimerMax)
	for _, e := range st.Enemies {
		assert.Equal(t, float64(e.MaxHealth), e.Health)
		assert.LessOrEqual(t, e.Edges, st.Tuning.EnemyEdgeCap)
	}
	for _, p := range st.Parts {
		assert.NotEqual(t, defs.PartScore, p.Kind)
		d := p.Pos.Dist(st.Player.Pos)
		assert.GreaterOrEqual(t, d, st.Tuning.PartSpawnMinRadius-1e-6)
		assert.LessOrEqual(t, d, st.Tuning.PartSpawnMaxRadius+1e-6)
	}
}

func TestPartSpawnRespectsCapacity(t *testing.T) {
	fx := newFixture(t, func(t *config.Tuning) { t.PartCapacity = 2 })
	st := fx.st
	st.NextBossAt = 1e9

	for i := 0; i < 5; i++ {
		st.Now = st.NextPartAt
		fx.spawn.Update()
	}
	assert.Equal(t, 2, st.FieldParts())

	// Орбы очков не занимают место
	st.AddPart(defs.PartScore, st.Player.Pos, 3)
	st.Parts = st.Parts[1:]
	st.Now = st.NextPartAt
	fx.spawn.Update()
	assert.Equal(t, 2, st.FieldParts())
	assert.Len(t, st.Parts, 3)
}

func TestBossSpawnsWhenTimerElapses(t *testing.T) {
	fx := newFixture(t, nil)
	st := fx.st
	st.NextPartAt = 1e9
	st.NextBossAt = st.Now

	fx.spawn.Update()
	require.NotNil(t, st.Boss)
	assert.GreaterOrEqual(t, st.Boss.Pos.Dist(st.Player.Pos), st.Tuning.BossSpawnMinDistance)
	assert.Greater(t, st.NextBossAt, st.Now)
	assert.Equal(t, "BOSS INCOMING", st.Banner())
	assert.Len(t, eventsOf(fx.events.Drain(), event.BossSpawned), 1)

	// Пока босс жив, второй не появляется
	boss := st.Boss
	st.Now = st.NextBossAt
	fx.spawn.Update()
	assert.Same(t, boss, st.Boss)
}

func TestScoreOrbsExpire(t *testing.T) {
	fx := newFixture(t, nil)
	st := fx.st
	orb := st.AddPart(defs.PartScore, st.Player.Pos.Add(utils.Vec2{X: 300}), 4)
	edge := st.AddPart(defs.PartEdge, st.Player.Pos.Add(utils.Vec2{X: -300}), 0)

	st.Now += st.Tuning.ScoreOrbLifetime - 0.5
	fx.spawn.ExpireOrbs()
	assert.Len(t, st.Parts, 2)

	st.Now += 0.5
	fx.spawn.ExpireOrbs()
	require.Len(t, st.Parts, 1)
	assert.Same(t, edge, st.Parts[0])
	assert.NotSame(t, orb, st.Parts[0])
}

func TestGenerateObstacles(t *testing.T) {
	fx := newFixture(t, nil)
	st := fx.st
	n := GenerateObstacles(st)

	assert.Equal(t, len(st.Obstacles), n)
	assert.LessOrEqual(t, n, st.Tuning.ObstacleCount)
	assert.Positive(t, n)
	spawn := st.SpawnPoint()
	for i, a := range st.Obstacles {
		assert.GreaterOrEqual(t, a.Nearest(spawn).Dist(spawn), st.Tuning.ObstacleSpawnClearance)
		assert.LessOrEqual(t, a.X+a.W, st.Tuning.WorldWidth)
		assert.LessOrEqual(t, a.Y+a.H, st.Tuning.WorldHeight)
		for _, b := range st.Obstacles[i+1:] {
			assert.False(t, a.Overlaps(b, st.Tuning.ObstaclePadding))
		}
	}
}

func TestGenerateObstaclesDegradesInTinyWorld(t *testing.T) {
	tuning := config.Default()
	tuning.WorldWidth, tuning.WorldHeight = 400, 400
	st := entity.NewState(tuning, defs.Default(), utils.NewPRNGService(5), nil)

	n := GenerateObstacles(st)
	assert.Less(t, n, tuning.ObstacleCount)
}

func TestSpawnPartsAreReproducible(t *testing.T) {
	run := func() []utils.Vec2 {
		fx := newFixture(t, nil)
		fx.spawn.Populate()
		var out []utils.Vec2
		for _, p := range fx.st.Parts {
			out = append(out, p.Pos)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestPartsNeverSpawnInsideWallObstacle(t *testing.T) {
	fx := newFixture(t, nil)
	st := fx.st
	// Препятствие вплотную к левой стене, игрок рядом
	st.Obstacles = []component.Obstacle{{X: 4, Y: 700, W: 100, H: 200}}
	st.Player.Pos = utils.Vec2{X: 300, Y: 800}

	for i := 0; i < 300; i++ {
		p := fx.spawn.SpawnPart()
		if p == nil {
			continue
		}
		assert.False(t, blocked(st, p.Pos, p.Radius), "part at %v overlaps the obstacle", p.Pos)
		assert.Equal(t, st.ClampToWorld(p.Pos, p.Radius), p.Pos)
	}
	assert.NotEmpty(t, st.Parts)
}

func TestFreePointAvoidsWallObstacle(t *testing.T) {
	fx := newFixture(t, nil)
	st := fx.st
	// Почти весь мир занят: остаётся узкий коридор у правой стены
	st.Obstacles = []component.Obstacle{{X: 4, Y: 0, W: st.Tuning.WorldWidth - 200, H: st.Tuning.WorldHeight}}
	st.Player.Pos = utils.Vec2{X: st.Tuning.WorldWidth - 100, Y: 800}

	for i := 0; i < 50; i++ {
		p := FreePoint(st, st.Player.Pos, 0, st.Tuning.FighterRadius)
		require.False(t, blocked(st, p, st.Tuning.FighterRadius), "point %v overlaps the obstacle", p)
	}
}

func TestObstaclesKeepWallGap(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tuning := config.Default()
		st := entity.NewState(tuning, defs.Default(), utils.NewPRNGService(seed), nil)
		GenerateObstacles(st)

		gap := WallGap(tuning)
		for _, o := range st.Obstacles {
			require.GreaterOrEqual(t, o.X, gap)
			require.GreaterOrEqual(t, o.Y, gap)
			require.LessOrEqual(t, o.X+o.W, tuning.WorldWidth-gap)
			require.LessOrEqual(t, o.Y+o.H, tuning.WorldHeight-gap)
		}
	}
}

func TestMoveBesideWallObstacleStaysInBounds(t *testing.T) {
	fx := newFixture(t, nil)
	st := fx.st
	r := st.Tuning.FighterRadius
	gap := WallGap(st.Tuning)
	st.Obstacles = []component.Obstacle{{X: gap, Y: 700, W: 100, H: 200}}
	body := component.Body{Pos: utils.Vec2{X: r, Y: 800}, Radius: r}

	for i := 0; i < 30; i++ {
		fx.movement.Move(&body, utils.Vec2{X: 1}, st.Tuning.FighterSpeed, 0.016)
		require.GreaterOrEqual(t, body.Pos.X, r)
		require.False(t, blocked(st, body.Pos, r))
	}
}
