package app

import (
	"edge-arena/internal/defs"
	"edge-arena/internal/system"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCopiesWorld(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	st := g.State()
	st.Boss = system.NewBoss(st, st.Player.Pos.Add(st.Player.Pos))
	st.AddPart(defs.PartScore, st.Player.Pos, 5)

	snap := g.Snapshot()
	require.Len(t, snap.Actors, 2+len(st.Enemies)+1)
	assert.Equal(t, ActorPlayer, snap.Actors[0].Kind)
	assert.Equal(t, ActorBot, snap.Actors[1].Kind)
	assert.Equal(t, ActorBoss, snap.Actors[len(snap.Actors)-1].Kind)
	assert.Equal(t, 1.0, snap.Player().HealthRatio)
	assert.Len(t, snap.Parts, len(st.Parts))
	assert.Equal(t, 5, snap.Parts[len(snap.Parts)-1].Value)

	// Снимок не разделяет память с состоянием
	require.NotEmpty(t, snap.Obstacles)
	snap.Obstacles[0].X = -1
	assert.NotEqual(t, -1.0, st.Obstacles[0].X)
	assert.Equal(t, st.Tuning.WorldWidth, snap.WorldWidth)
}

func TestHUDTracksBoss(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	st := g.State()
	assert.Zero(t, g.HUD().BossHealth)

	st.Boss = system.NewBoss(st, st.Player.Pos.Add(st.Player.Pos))
	st.Boss.Health = float64(st.Boss.MaxHealth) / 2
	assert.InDelta(t, 0.5, g.HUD().BossHealth, 1e-9)
}
