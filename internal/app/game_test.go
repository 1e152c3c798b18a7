package app

import (
	"edge-arena/internal/config"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T, opts Options) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	opts.Clock = clock
	return NewGame(opts), clock
}

func TestFreshReset(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	st := g.State()
	tuning := config.Default()

	hud := g.HUD()
	assert.Equal(t, 4, hud.Edges)
	assert.Equal(t, 10, hud.Attack)
	assert.Equal(t, 10, hud.Defense)
	assert.Equal(t, 100, hud.Health)
	assert.Equal(t, 100, hud.MaxHealth)
	assert.Zero(t, hud.Plasma)
	assert.Zero(t, hud.Wave)
	assert.Zero(t, hud.Kills)
	assert.Zero(t, hud.Score)
	assert.Empty(t, hud.Banner)
	assert.True(t, hud.DashReady)
	assert.False(t, hud.WaveReady)

	assert.Equal(t, st.SpawnPoint(), st.Player.Pos)
	require.NotNil(t, st.Bot)
	assert.Equal(t, st.SpawnPoint().Add(utils.Vec2{X: tuning.BotSpawnOffset}), st.Bot.Pos)
	assert.Len(t, st.Enemies, tuning.EnemyCount)
	assert.Len(t, st.Parts, tuning.InitialParts)
	assert.Nil(t, st.Boss)
	assert.Empty(t, st.Projectiles)
	assert.Zero(t, st.Now)
	assert.Zero(t, g.Frames())
	assert.Empty(t, g.Drain())
}

func TestNoBotOption(t *testing.T) {
	g, _ := newTestGame(t, Options{NoBot: true})
	assert.Nil(t, g.State().Bot)

	snap := g.Snapshot()
	assert.Len(t, snap.Actors, 1+len(g.State().Enemies))
	assert.Equal(t, ActorPlayer, snap.Player().Kind)

	g.Tick(0.016, Input{})
	assert.Zero(t, g.HUD().BotScore)
}

func TestTickClampsDelta(t *testing.T) {
	g, _ := newTestGame(t, Options{})

	g.Tick(5, Input{})
	assert.InDelta(t, config.MaxDeltaTime, g.State().Now, 1e-12)

	g.Tick(-1, Input{})
	assert.InDelta(t, config.MaxDeltaTime, g.State().Now, 1e-12)
	assert.Equal(t, 2, g.Frames())
}

func TestTickMovesPlayer(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	start := g.State().Player.Pos

	g.Tick(0.05, Input{Move: utils.UnitX})
	moved := g.State().Player.Pos.Sub(start)
	assert.InDelta(t, config.Default().FighterSpeed*0.05, moved.X, 1e-9)
	assert.InDelta(t, 0, moved.Y, 1e-9)
}

func TestWaveInputCasts(t *testing.T) {
	g, _ := newTestGame(t, Options{NoBot: true})
	g.Tick(0.016, Input{Wave: true})
	assert.Empty(t, g.State().Projectiles)

	g.State().Player.Wave = 1
	g.Tick(0.016, Input{Wave: true})
	assert.Len(t, g.State().Projectiles, 1)

	var casts int
	for _, e := range g.Drain() {
		if e.Type == event.WaveCast {
			casts++
		}
	}
	assert.Equal(t, 1, casts)
	assert.Zero(t, g.EventDispatcher.Pending())
}

func TestFrameUsesClock(t *testing.T) {
	g, clock := newTestGame(t, Options{})

	clock.Advance(16 * time.Millisecond)
	g.Frame(Input{})
	assert.InDelta(t, 0.016, g.State().Now, 1e-9)

	// Долгий кадр обрезается
	clock.Advance(2 * time.Second)
	g.Frame(Input{})
	assert.InDelta(t, 0.016+config.MaxDeltaTime, g.State().Now, 1e-9)
}

func TestPauseResumeHasNoCatchUp(t *testing.T) {
	g, clock := newTestGame(t, Options{})

	clock.Advance(16 * time.Millisecond)
	g.Frame(Input{})
	g.Pause()
	require.True(t, g.IsPaused())
	assert.True(t, g.HUD().Paused)

	clock.Advance(10 * time.Second)
	g.Frame(Input{})
	assert.InDelta(t, 0.016, g.State().Now, 1e-9)
	assert.Equal(t, 1, g.Frames())

	g.Resume()
	clock.Advance(16 * time.Millisecond)
	g.Frame(Input{})
	assert.InDelta(t, 0.032, g.State().Now, 1e-9)
}

func TestPauseInputToggles(t *testing.T) {
	g, clock := newTestGame(t, Options{})

	g.Frame(Input{Pause: true})
	assert.True(t, g.IsPaused())
	assert.Zero(t, g.Frames())

	clock.Advance(5 * time.Second)
	g.Frame(Input{Pause: true})
	assert.False(t, g.IsPaused())
	assert.Equal(t, 1, g.Frames())
	assert.Zero(t, g.State().Now)
}

func TestSameSeedSameGame(t *testing.T) {
	a, _ := newTestGame(t, Options{Seed: 1234})
	b, _ := newTestGame(t, Options{Seed: 1234})

	inputs := []Input{
		{Move: utils.Vec2{X: 1}},
		{Move: utils.Vec2{X: 1, Y: 1}.Normalize(utils.UnitX), Dash: true},
		{Move: utils.Vec2{Y: -1}},
		{},
	}
	for i := 0; i < 600; i++ {
		in := inputs[(i/40)%len(inputs)]
		a.Tick(1.0/60, in)
		b.Tick(1.0/60, in)
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, a.HUD(), b.HUD())
}

func TestResetReplaysSeed(t *testing.T) {
	g, _ := newTestGame(t, Options{Seed: 77})
	first := g.Snapshot()

	for i := 0; i < 120; i++ {
		g.Tick(1.0/60, Input{Move: utils.Vec2{X: -1}})
	}
	require.NotEqual(t, first, g.Snapshot())

	g.Reset()
	assert.Equal(t, first, g.Snapshot())
	assert.Zero(t, g.Frames())
	assert.Equal(t, int64(77), g.Seed())
}

func TestBossDefeatReschedulesAfterReset(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	g.Reset()
	g.Reset()

	st := g.State()
	st.Now = 100
	st.NextBossAt = 0
	st.Boss = nil
	g.EventDispatcher.Emit(event.BossDefeated, event.Kill{})
	assert.Greater(t, st.NextBossAt, st.Now)
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions("", "", 9)
	require.NoError(t, err)
	assert.Nil(t, opts.Tuning)
	assert.Nil(t, opts.Defs)
	assert.Equal(t, int64(9), opts.Seed)

	_, err = LoadOptions("does-not-exist.yaml", "", 0)
	assert.Error(t, err)
}
