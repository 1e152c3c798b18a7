package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	tuning := config.Default()

	atk, def, hp := ComputeStats(tuning, 4)
	assert.Equal(t, 10, atk)
	assert.Equal(t, 10, def)
	assert.Equal(t, 100, hp)

	atk, def, hp = ComputeStats(tuning, 5)
	assert.Equal(t, 13, atk)
	assert.Equal(t, 12, def)
	assert.Equal(t, 115, hp)

	// Ниже базы статы не падают
	atk, def, hp = ComputeStats(tuning, 3)
	assert.Equal(t, 10, atk)
	assert.Equal(t, 10, def)
	assert.Equal(t, 100, hp)
}

func TestComputeStatsMonotonic(t *testing.T) {
	tuning := config.Default()
	prevAtk, prevDef, prevHP := ComputeStats(tuning, 0)
	for edges := 1; edges <= tuning.EnemyEdgeCap; edges++ {
		atk, def, hp := ComputeStats(tuning, edges)
		assert.GreaterOrEqual(t, atk, prevAtk, "attack at %d edges", edges)
		assert.GreaterOrEqual(t, def, prevDef, "defense at %d edges", edges)
		assert.GreaterOrEqual(t, hp, prevHP, "max health at %d edges", edges)
		prevAtk, prevDef, prevHP = atk, def, hp
	}
}

func TestRecomputeFighterNeverHeals(t *testing.T) {
	tuning := config.Default()
	f := &component.Fighter{}
	f.Edges = 6
	f.Health = 40
	RecomputeFighter(tuning, f)
	assert.Equal(t, 40.0, f.Health)
	assert.Equal(t, 130, f.MaxHealth)

	f.Edges = 4
	f.Health = 500
	RecomputeFighter(tuning, f)
	assert.Equal(t, 100.0, f.Health)
}

func TestThreeEdgePartsGrowOneEdge(t *testing.T) {
	fx := newFixture(t, nil)
	p := fx.st.Player
	p.Health = 50

	ApplyPart(fx.st, p, defs.PartEdge)
	ApplyPart(fx.st, p, defs.PartEdge)
	assert.Equal(t, 4, p.Edges)
	assert.Equal(t, 2, p.EdgeParts)

	ApplyPart(fx.st, p, defs.PartEdge)
	assert.Equal(t, 5, p.Edges)
	assert.Equal(t, 0, p.EdgeParts)
	assert.Equal(t, 13, p.Attack)
	assert.Equal(t, 12, p.Defense)
	assert.Equal(t, 115, p.MaxHealth)
	assert.InDelta(t, 50+0.25*115, p.Health, 1e-9)

	ups := eventsOf(fx.events.Drain(), event.EdgeUp)
	require.Len(t, ups, 1)
	assert.Equal(t, event.Level{Fighter: "player", Edges: 5}, ups[0].Data)
}

func TestEdgePartsAtCapFeedPlasma(t *testing.T) {
	fx := newFixture(t, nil)
	p := fx.st.Player
	p.Edges = fx.st.Tuning.PlayerEdgeCap
	RecomputeFighter(fx.st.Tuning, p)
	baseAttack := p.Attack

	for i := 0; i < 3; i++ {
		ApplyPart(fx.st, p, defs.PartEdge)
	}
	assert.Equal(t, fx.st.Tuning.PlayerEdgeCap, p.Edges)
	assert.Equal(t, 1, p.Plasma)
	assert.Equal(t, baseAttack+fx.st.Tuning.AttackPerPlasma, p.Attack)
}

func TestWavePartsRaiseWave(t *testing.T) {
	fx := newFixture(t, nil)
	p := fx.st.Player
	ApplyPart(fx.st, p, defs.PartWave)
	assert.Equal(t, 0, p.Wave)
	ApplyPart(fx.st, p, defs.PartWave)
	assert.Equal(t, 1, p.Wave)
}

func TestRegenPartHealsAndRaisesRate(t *testing.T) {
	fx := newFixture(t, nil)
	p := fx.st.Player
	p.Health = 10
	ApplyPart(fx.st, p, defs.PartRegen)
	assert.InDelta(t, 10+0.15*100, p.Health, 1e-9)
	assert.InDelta(t, 0.75, p.RegenRate, 1e-9)

	Regenerate(p, 2)
	assert.InDelta(t, 26.5, p.Health, 1e-9)
}

func TestAddPlasmaClampedIsIdempotent(t *testing.T) {
	tuning := config.Default()
	f := &component.Fighter{}
	ResetProgression(tuning, f)
	f.Plasma = tuning.PlasmaMax
	f.Health = 10

	assert.False(t, AddPlasma(tuning, f, 1))
	assert.Equal(t, tuning.PlasmaMax, f.Plasma)
	assert.Equal(t, 10.0, f.Health)

	f.Wave = tuning.WaveMax
	assert.False(t, AddWave(tuning, f, 3))
	assert.Equal(t, 10.0, f.Health)
}

func TestProgressionBoundsUnderRandomEvents(t *testing.T) {
	fx := newFixture(t, nil)
	p := fx.st.Player
	tuning := fx.st.Tuning
	rng := utils.NewPRNGService(99)
	brute := fx.enemyAt(touching(p, 30))
	brute.Attack = 60

	for i := 0; i < 3000; i++ {
		switch rng.Intn(4) {
		case 0, 1:
			ApplyPart(fx.st, p, defs.PartKinds[rng.Intn(len(defs.PartKinds))])
		case 2:
			fx.combat.ApplyHit(EnemyRef(brute), FighterRef(p), rng.Range(0.5, 3), false)
		case 3:
			Regenerate(p, rng.Range(0, 1))
		}

		require.GreaterOrEqual(t, p.Edges, 0)
		require.LessOrEqual(t, p.Edges, tuning.PlayerEdgeCap)
		require.GreaterOrEqual(t, p.Plasma, 0)
		require.LessOrEqual(t, p.Plasma, tuning.PlasmaMax)
		require.GreaterOrEqual(t, p.Wave, 0)
		require.LessOrEqual(t, p.Wave, tuning.WaveMax)
		require.GreaterOrEqual(t, p.Health, 0.0)
		require.LessOrEqual(t, p.Health, float64(p.MaxHealth))
	}
}
