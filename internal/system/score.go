// internal/system/score.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/defs"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
	"math"
)

// ScoreSystem начисляет очки и разбрасывает их при PvP-выбывании.
type ScoreSystem struct {
	state *entity.State
}

func NewScoreSystem(state *entity.State) *ScoreSystem {
	return &ScoreSystem{state: state}
}

// Award adds amount to f's score and shows it at pos.
func (s *ScoreSystem) Award(f *component.Fighter, amount int, pos utils.Vec2) {
	if amount == 0 {
		return
	}
	f.Score += amount
	s.state.Emit(event.ScoreTextShown, event.ScoreText{Pos: pos, Amount: amount})
}

// PickupScore returns the score delta for collecting p.
func (s *ScoreSystem) PickupScore(p *component.Part) int {
	t := s.state.Tuning
	switch p.Kind {
	case defs.PartEdge:
		return t.ScoreEdgePart
	case defs.PartRegen:
		return t.ScoreRegenPart
	case defs.PartWave:
		return t.ScoreWavePart
	case defs.PartScore:
		return p.Value
	}
	return 0
}

// OrbValues splits dropped into orb values that sum to dropped exactly.
// The count is dropped/chunk clamped to [min, max] and never above dropped;
// the last orb takes the remainder.
func OrbValues(dropped, chunk, minOrbs, maxOrbs int) []int {
	if dropped <= 0 {
		return nil
	}
	count := utils.ClampInt(dropped/chunk, minOrbs, maxOrbs)
	if count > dropped {
		count = dropped
	}
	each := dropped / count
	values := make([]int, count)
	for i := range values {
		values[i] = each
	}
	values[count-1] += dropped - each*count
	return values
}

// DropScore takes the PvP fraction of loser's score and scatters it as score orbs
// on a ring around the loser. Returns the amount dropped.
func (s *ScoreSystem) DropScore(loser *component.Fighter) int {
	t := s.state.Tuning
	dropped := int(math.Floor(float64(loser.Score) * t.PvPDropFraction))
	if dropped <= 0 {
		return 0
	}
	loser.Score -= dropped

	values := OrbValues(dropped, t.ScoreOrbChunk, t.ScoreOrbMin, t.ScoreOrbMax)
	phase := s.state.Rng.Angle()
	step := 2 * math.Pi / float64(len(values))
	for i, v := range values {
		offset := utils.FromAngle(phase + step*float64(i)).Scale(t.ScoreOrbRing)
		s.state.AddPart(defs.PartScore, loser.Pos.Add(offset), v)
	}
	return dropped
}
