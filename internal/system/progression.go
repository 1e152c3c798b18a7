// internal/system/progression.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
	"math"
)

// ComputeStats derives attack, defense and max health from an edge count.
// Every edge above the base adds a fixed amount to each stat.
func ComputeStats(t config.Tuning, edges int) (attack, defense, maxHealth int) {
	extra := float64(edges - t.BaseEdges)
	if extra < 0 {
		extra = 0
	}
	attack = int(math.Round(10 + extra*t.AttackPerEdge))
	defense = int(math.Round(10 + extra*t.DefensePerEdge))
	maxHealth = int(math.Round(100 + extra*t.HealthPerEdge))
	return attack, defense, maxHealth
}

// RecomputeFighter refreshes derived stats from edges and plasma.
// Health is only clamped, never raised.
func RecomputeFighter(t config.Tuning, f *component.Fighter) {
	clampProgression(t, f)
	atk, def, hp := ComputeStats(t, f.Edges)
	f.Attack = atk + f.Plasma*t.AttackPerPlasma
	f.Defense = def
	f.MaxHealth = hp
	f.ClampHealth()
}

// RecomputeEnemy refreshes an enemy's variant-scaled stats, or the boss's flat-scaled ones.
func RecomputeEnemy(t config.Tuning, lib *defs.Library, e *component.Enemy) {
	if e.Edges > t.EnemyEdgeCap {
		e.Edges = t.EnemyEdgeCap
	}
	if e.Edges < 0 {
		e.Edges = 0
	}
	atk, def, hp := ComputeStats(t, e.Edges)
	atkScale, defScale, hpScale := t.BossStatScale, t.BossStatScale, t.BossStatScale
	if !e.IsBoss {
		d := lib.Enemy(e.Variant)
		atkScale, defScale, hpScale = d.AttackScale, d.DefenseScale, d.HealthScale
	}
	e.Attack = int(math.Round(float64(atk) * atkScale))
	e.Defense = int(math.Round(float64(def) * defScale))
	e.MaxHealth = int(math.Max(1, math.Round(float64(hp)*hpScale)))
	e.ClampHealth()
}

// AddPlasma raises plasma by n, clamped. Returns true if the level changed,
// in which case the fighter is healed by the level-up fraction.
func AddPlasma(t config.Tuning, f *component.Fighter, n int) bool {
	before := f.Plasma
	f.Plasma = utils.ClampInt(f.Plasma+n, 0, t.PlasmaMax)
	if f.Plasma == before {
		return false
	}
	RecomputeFighter(t, f)
	f.Heal(float64(f.MaxHealth) * t.LevelUpHealFraction)
	return true
}

// AddWave raises the wave level by n, clamped, healing on change like AddPlasma.
func AddWave(t config.Tuning, f *component.Fighter, n int) bool {
	before := f.Wave
	f.Wave = utils.ClampInt(f.Wave+n, 0, t.WaveMax)
	if f.Wave == before {
		return false
	}
	RecomputeFighter(t, f)
	f.Heal(float64(f.MaxHealth) * t.LevelUpHealFraction)
	return true
}

// AddEdge grows the fighter by one edge while under the cap.
func AddEdge(t config.Tuning, f *component.Fighter) bool {
	if f.Edges >= t.PlayerEdgeCap {
		return false
	}
	f.Edges++
	RecomputeFighter(t, f)
	f.Heal(float64(f.MaxHealth) * t.LevelUpHealFraction)
	return true
}

// ApplyPart feeds a collected non-score part into the fighter's counters.
func ApplyPart(s *entity.State, f *component.Fighter, kind defs.PartKind) {
	t := s.Tuning
	leveled := false

	switch kind {
	case defs.PartEdge:
		if f.Edges < t.PlayerEdgeCap {
			f.EdgeParts++
			if f.EdgeParts >= t.PartsPerEdge {
				f.EdgeParts = 0
				leveled = AddEdge(t, f)
			}
		} else {
			// На максимуме граней части копятся в плазму
			f.PlasmaParts++
			if f.PlasmaParts >= t.PartsPerPlasma {
				f.PlasmaParts = 0
				leveled = AddPlasma(t, f, 1)
			}
		}
	case defs.PartWave:
		f.WaveParts++
		if f.WaveParts >= t.PartsPerWave {
			f.WaveParts = 0
			leveled = AddWave(t, f, 1)
		}
	case defs.PartRegen:
		f.RegenParts++
		f.RegenRate = math.Min(t.RegenMax, t.RegenBase+t.RegenPerPart*float64(f.RegenParts))
		f.Heal(float64(f.MaxHealth) * t.RegenPartHealFraction)
	case defs.PartScore:
		return
	}

	if leveled {
		s.Emit(event.EdgeUp, event.Level{Fighter: f.Tag.String(), Edges: f.Edges, Plasma: f.Plasma, Wave: f.Wave})
	}
}

// Regenerate applies passive regeneration for dt seconds.
func Regenerate(f *component.Fighter, dt float64) {
	if f.Health <= 0 {
		return
	}
	f.Heal(f.RegenRate * dt)
}

// ResetProgression puts a fighter back to the starting progression.
func ResetProgression(t config.Tuning, f *component.Fighter) {
	f.Edges = t.BaseEdges
	f.Plasma, f.Wave = 0, 0
	f.EdgeParts, f.PlasmaParts, f.WaveParts, f.RegenParts = 0, 0, 0, 0
	f.PartsCollected = 0
	f.RegenRate = t.RegenBase
	RecomputeFighter(t, f)
	f.Health = float64(f.MaxHealth)
}

func clampProgression(t config.Tuning, f *component.Fighter) {
	f.Edges = utils.ClampInt(f.Edges, 0, t.PlayerEdgeCap)
	f.Plasma = utils.ClampInt(f.Plasma, 0, t.PlasmaMax)
	f.Wave = utils.ClampInt(f.Wave, 0, t.WaveMax)
}
