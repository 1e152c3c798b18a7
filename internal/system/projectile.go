// internal/system/projectile.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
)

// ProjectileSystem управляет волнами: запуск, полёт и попадание
type ProjectileSystem struct {
	state        *entity.State
	combatSystem *CombatSystem
}

func NewProjectileSystem(state *entity.State, combatSystem *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{state: state, combatSystem: combatSystem}
}

// Cast launches a wave from f along its aim if f has a wave level and is off cooldown.
func (s *ProjectileSystem) Cast(f *component.Fighter) bool {
	st := s.state
	t := st.Tuning
	if f.Wave <= 0 || st.Now < f.WaveReadyAt {
		return false
	}
	f.WaveReadyAt = st.Now + t.WaveCooldown

	dir := f.Aim.Normalize(utils.UnitX)
	st.Projectiles = append(st.Projectiles, &component.Projectile{
		Owner:      f,
		Pos:        f.Pos,
		Dir:        dir,
		Width:      t.WaveWidth,
		Length:     t.WaveLength,
		Speed:      t.WaveSpeed,
		Lifetime:   t.WaveRange / t.WaveSpeed,
		Multiplier: t.WaveBaseMultiplier + t.WavePerLevelMultiplier*float64(f.Wave),
		WaveLevel:  f.Wave,
	})
	st.Emit(event.WaveCast, event.Cast{Caster: f.Tag.String(), Pos: f.Pos, Dir: dir})
	return true
}

// Update advances every projectile, drops expired ones and resolves first hits.
func (s *ProjectileSystem) Update(deltaTime float64) {
	st := s.state
	live := st.Projectiles[:0]
	for _, p := range st.Projectiles {
		p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * deltaTime))
		p.Age += deltaTime
		if p.Expired() {
			continue
		}
		if target, ok := s.findTarget(p); ok {
			s.combatSystem.ApplyHit(FighterRef(p.Owner), target, p.Multiplier, false)
			continue
		}
		live = append(live, p)
	}
	// Обнуляем хвост, чтобы не держать ссылки на удалённые снаряды
	for i := len(live); i < len(st.Projectiles); i++ {
		st.Projectiles[i] = nil
	}
	st.Projectiles = live
}

// findTarget returns the first candidate the capsule touches:
// enemies, then the boss, then fighters other than the owner.
func (s *ProjectileSystem) findTarget(p *component.Projectile) (Combatant, bool) {
	st := s.state
	for _, e := range st.Enemies {
		if p.Hits(e.Pos, e.Radius) {
			return EnemyRef(e), true
		}
	}
	if st.Boss != nil && p.Hits(st.Boss.Pos, st.Boss.Radius) {
		return EnemyRef(st.Boss), true
	}
	for _, f := range st.Fighters() {
		if f == p.Owner {
			continue
		}
		if !s.combatSystem.Vulnerable(FighterRef(f)) {
			continue
		}
		if p.Hits(f.Pos, f.Radius) {
			return FighterRef(f), true
		}
	}
	return Combatant{}, false
}
