// internal/system/combat.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
)

// CombatSystem разрешает ближний бой, применяет урон и обрабатывает смерти.
type CombatSystem struct {
	state *entity.State
	score *ScoreSystem
}

func NewCombatSystem(state *entity.State, score *ScoreSystem) *CombatSystem {
	return &CombatSystem{state: state, score: score}
}

// InRange reports whether the gap between two circles is within hit range.
func (s *CombatSystem) InRange(a, b Combatant) bool {
	ab, bb := a.body(), b.body()
	gap := ab.Pos.Dist(bb.Pos) - ab.Radius - bb.Radius
	return gap <= s.state.Tuning.HitRange
}

// Melee resolves mutual melee between a and b. Each side strikes if its own cooldown allows.
// A defender killed by the first strike does not strike back.
func (s *CombatSystem) Melee(a, b Combatant) {
	if a.same(b) || !s.InRange(a, b) {
		return
	}
	if s.strike(a, b) {
		return
	}
	s.strike(b, a)
}

// MeleeAll runs f's melee against every enemy, the boss and the other fighter.
func (s *CombatSystem) MeleeAll(f *component.Fighter) {
	self := FighterRef(f)
	for _, e := range s.state.Enemies {
		s.Melee(self, EnemyRef(e))
	}
	if s.state.Boss != nil {
		s.Melee(self, EnemyRef(s.state.Boss))
	}
	for _, other := range s.state.Fighters() {
		if other != f {
			s.Melee(self, FighterRef(other))
		}
	}
}

// Vulnerable reports whether c can currently take damage.
func (s *CombatSystem) Vulnerable(c Combatant) bool {
	return c.Fighter == nil || !c.Fighter.Invulnerable(s.state.Now)
}

// strike applies one melee hit from att to def. Reports whether def died.
func (s *CombatSystem) strike(att, def Combatant) bool {
	now := s.state.Now
	t := s.state.Tuning
	as := att.stats()
	if now < as.HitReadyAt {
		return false
	}
	// Удар по неуязвимой цели ничего не тратит
	if !s.Vulnerable(def) {
		return false
	}

	mult := 1.0
	primed := false
	if f := att.Fighter; f != nil {
		if now-f.LastHitAt >= t.PrimeWindow {
			f.Primed = true
		}
		if f.Primed && f.Plasma > 0 {
			mult *= t.PrimedMultiplier
			primed = true
			f.Primed = false
		}
		f.LastHitAt = now
	}
	as.HitReadyAt = now + t.MeleeCooldown
	return s.ApplyHit(att, def, mult, primed)
}

// ApplyHit deals one hit of damage scaled by mult and resolves a resulting death.
// Reports whether def died.
func (s *CombatSystem) ApplyHit(att, def Combatant, mult float64, primed bool) bool {
	ds, db := def.stats(), def.body()
	as := att.stats()
	dmg := RollDamage(s.state.Tuning, s.state.Rng, as.Attack, ds.Defense, mult)
	ds.Health -= float64(dmg)
	ds.ClampHealth()

	s.state.Emit(event.DamageTextShown, event.DamageText{Pos: db.Pos, Amount: dmg, Primed: primed})
	s.state.Emit(event.BurstSpawned, event.Burst{Pos: db.Pos, Size: db.Radius, Boss: def.Enemy != nil && def.Enemy.IsBoss})
	if att.Fighter != nil || def.Fighter != nil {
		s.state.Emit(event.ShakeRequested, event.Shake{Intensity: s.state.Tuning.ShakeOnHit})
	}
	s.state.Emit(event.FlashRequested, event.Flash{Pos: db.Pos, Radius: db.Radius})

	if ds.Health > 0 {
		return false
	}
	s.resolveDeath(att, def)
	return true
}

// resolveDeath dispatches on the defender's identity in priority order:
// boss, PvP, wild enemy, then fighter killed by a hostile.
func (s *CombatSystem) resolveDeath(att, def Combatant) {
	st := s.state
	pos := def.body().Pos
	st.Emit(event.BurstSpawned, event.Burst{Pos: pos, Size: def.body().Radius * 2, Boss: def.Enemy != nil && def.Enemy.IsBoss, Fatal: true})

	switch {
	case def.Enemy != nil && def.Enemy == st.Boss:
		if att.Fighter != nil {
			s.score.Award(att.Fighter, st.Tuning.BossKillScore, pos)
		}
		st.Boss = nil
		st.SetBanner("BOSS DEFEATED")
		st.Emit(event.BossDefeated, event.Kill{Pos: pos, Killer: att.Name()})

	case att.Fighter != nil && def.Fighter != nil && att.Fighter != def.Fighter:
		dropped := s.score.DropScore(def.Fighter)
		s.score.Award(att.Fighter, st.Tuning.PvPKillScore, att.Fighter.Pos)
		st.Emit(event.FighterEliminated, event.Elimination{Victim: def.Name(), Killer: att.Name(), Dropped: dropped, Pos: pos})
		s.RespawnFighter(def.Fighter)

	case def.Enemy != nil:
		st.Kills++
		if att.Fighter != nil {
			s.score.Award(att.Fighter, st.Tuning.EnemyKillScore, pos)
		}
		st.Emit(event.EnemyKilled, event.Kill{Variant: def.Enemy.Variant, Pos: pos, Killer: att.Name()})
		s.RespawnEnemy(def.Enemy)

	default:
		st.Emit(event.FighterEliminated, event.Elimination{Victim: def.Name(), Killer: att.Name(), Pos: pos})
		s.RespawnFighter(def.Fighter)
	}
}

// RespawnFighter returns f to its home point with full health and a fresh
// invulnerability window. Progression is kept.
func (s *CombatSystem) RespawnFighter(f *component.Fighter) {
	st := s.state
	t := st.Tuning
	home := f.Home
	if boss := st.Boss; boss != nil && home.Dist(boss.Pos) < t.BossSpawnClearance {
		away := home.Sub(boss.Pos).Normalize(utils.UnitX)
		home = boss.Pos.Add(away.Scale(t.BossSpawnClearance))
	}
	home = st.ClampToWorld(home, f.Radius)
	f.Pos = ResolveObstacles(st, home, f.Radius)
	f.Vel = utils.Vec2{}

	RecomputeFighter(t, f)
	f.Health = float64(f.MaxHealth)
	f.Primed = true
	f.DashUntil = 0
	f.Stuck = 0
	f.EscapeDir = utils.Vec2{}
	f.EscapeUntil = 0
	f.InvulnUntil = st.Now + t.SpawnInvulnerability
}

// RespawnEnemy moves e away from the player and restores it, rerolling its
// variant and edges with the configured chance.
func (s *CombatSystem) RespawnEnemy(e *component.Enemy) {
	st := s.state
	if st.Rng.Chance(st.Tuning.EnemyRerollChance) {
		RollEnemy(st, e, st.Rng.ChooseVariant(st.Defs))
	}
	e.Pos = FreePoint(st, st.Player.Pos, st.Tuning.EnemyRespawnMinDistance, e.Radius)
	e.Vel = utils.Vec2{}
	e.Target = e.Pos
	e.RetargetAt = st.Now
	RecomputeEnemy(st.Tuning, st.Defs, e)
	e.Health = float64(e.MaxHealth)
}
