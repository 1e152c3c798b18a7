package fx

import (
	"testing"

	"edge-arena/internal/config"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTexts(t *testing.T) {
	e := NewEffects(1)
	e.Apply([]event.Event{
		{Type: event.DamageTextShown, Data: event.DamageText{Amount: 12}},
		{Type: event.DamageTextShown, Data: event.DamageText{Amount: 36, Primed: true}},
		{Type: event.ScoreTextShown, Data: event.ScoreText{Amount: 25}},
		{Type: event.EnemyKilled, Data: event.Kill{}},
	})

	require.Len(t, e.Texts, 3)
	assert.Equal(t, "12", e.Texts[0].Text)
	assert.Equal(t, config.TextDamageColor, e.Texts[0].Color)
	assert.Equal(t, "36!", e.Texts[1].Text)
	assert.Equal(t, config.PlasmaColor, e.Texts[1].Color)
	assert.Equal(t, "+25", e.Texts[2].Text)
}

func TestBurstDoublesWhenFatal(t *testing.T) {
	e := NewEffects(1)
	e.Apply([]event.Event{{Type: event.BurstSpawned, Data: event.Burst{Size: 20}}})
	assert.Len(t, e.Particles, config.BurstParticles)

	e.Clear()
	e.Apply([]event.Event{{Type: event.BurstSpawned, Data: event.Burst{Size: 20, Fatal: true, Boss: true}}})
	require.Len(t, e.Particles, 2*config.BurstParticles)
	assert.Equal(t, config.BossColor, e.Particles[0].Color)
}

func TestShakeKeepsStrongest(t *testing.T) {
	e := NewEffects(1)
	e.Apply([]event.Event{
		{Type: event.ShakeRequested, Data: event.Shake{Intensity: 6}},
		{Type: event.ShakeRequested, Data: event.Shake{Intensity: 2}},
	})
	assert.Equal(t, 6.0, e.Shake)
	off := e.ShakeOffset()
	assert.LessOrEqual(t, off.X, 6.0)
	assert.GreaterOrEqual(t, off.X, -6.0)

	e.Update(1)
	assert.Zero(t, e.Shake)
	assert.Equal(t, utils.Vec2{}, e.ShakeOffset())
}

func TestUpdateExpires(t *testing.T) {
	e := NewEffects(1)
	e.Apply([]event.Event{
		{Type: event.DamageTextShown, Data: event.DamageText{Amount: 1}},
		{Type: event.FlashRequested, Data: event.Flash{Radius: 10}},
		{Type: event.BurstSpawned, Data: event.Burst{}},
		{Type: event.BannerShown, Data: event.Banner{Text: "BOSS", Duration: 2}},
	})

	e.Update(config.FlashDuration)
	assert.Empty(t, e.Flashes)
	require.Len(t, e.Texts, 1)
	assert.Greater(t, TextOffset(e.Texts[0]), 0.0)
	assert.Equal(t, "BOSS", e.Banner)

	e.Update(config.FloatingTextDuration)
	assert.Empty(t, e.Texts)
	assert.Empty(t, e.Particles)
	assert.Equal(t, "BOSS", e.Banner)

	e.Update(1)
	assert.Empty(t, e.Banner)
}

func TestClear(t *testing.T) {
	e := NewEffects(1)
	e.Apply([]event.Event{
		{Type: event.ScoreTextShown, Data: event.ScoreText{Amount: 1}},
		{Type: event.ShakeRequested, Data: event.Shake{Intensity: 3}},
		{Type: event.BannerShown, Data: event.Banner{Text: "x", Duration: 1}},
	})
	e.Clear()
	assert.Empty(t, e.Texts)
	assert.Zero(t, e.Shake)
	assert.Empty(t, e.Banner)
}
