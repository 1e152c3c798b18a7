// internal/system/pickup.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/defs"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
)

// PickupSystem подбирает предметы при касании.
type PickupSystem struct {
	state *entity.State
	score *ScoreSystem
}

func NewPickupSystem(state *entity.State, score *ScoreSystem) *PickupSystem {
	return &PickupSystem{state: state, score: score}
}

func (s *PickupSystem) touching(body component.Body, p *component.Part) bool {
	reach := body.Radius + p.Radius + s.state.Tuning.PickupPadding
	return body.Pos.DistSq(p.Pos) <= reach*reach
}

// CollectFighter lets f pick up every part it touches. Returns how many were taken.
func (s *PickupSystem) CollectFighter(f *component.Fighter) int {
	st := s.state
	taken := 0
	kept := st.Parts[:0]
	var collected []*component.Part
	for _, p := range st.Parts {
		if s.touching(f.Body, p) {
			collected = append(collected, p)
			continue
		}
		kept = append(kept, p)
	}
	st.Parts = kept

	for _, p := range collected {
		taken++
		f.PartsCollected++
		ApplyPart(st, f, p.Kind)
		s.score.Award(f, s.score.PickupScore(p), p.Pos)
		st.Emit(event.PartCollected, event.Pickup{Kind: p.Kind, Pos: p.Pos, Collector: f.Tag.String(), Value: p.Value})
	}
	return taken
}

// CollectEnemy lets e consume touching non-score parts. Edge parts may grow it,
// regen and wave parts heal it.
func (s *PickupSystem) CollectEnemy(e *component.Enemy) {
	st := s.state
	t := st.Tuning
	kept := st.Parts[:0]
	for _, p := range st.Parts {
		if p.Kind == defs.PartScore || !s.touching(e.Body, p) {
			kept = append(kept, p)
			continue
		}
		switch p.Kind {
		case defs.PartEdge:
			if e.Edges < t.EnemyEdgeCap && st.Rng.Chance(st.Defs.Enemy(e.Variant).GrowChance) {
				e.Edges++
				RecomputeEnemy(t, st.Defs, e)
			}
		case defs.PartRegen, defs.PartWave:
			e.Heal(float64(t.EnemyPartHeal))
		}
		st.Emit(event.PartCollected, event.Pickup{Kind: p.Kind, Pos: p.Pos, Collector: e.Variant.String()})
	}
	st.Parts = kept
}
