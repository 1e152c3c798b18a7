// internal/system/spawn.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/defs"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
	"log"
)

// SpawnSystem отвечает за появление предметов, врагов и босса по таймерам.
type SpawnSystem struct {
	state *entity.State
}

// NewSpawnSystem creates the scheduler and subscribes it to boss defeats.
func NewSpawnSystem(state *entity.State, eventDispatcher *event.Dispatcher) *SpawnSystem {
	ss := &SpawnSystem{state: state}
	eventDispatcher.Subscribe(event.BossDefeated, ss)
	return ss
}

func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type == event.BossDefeated {
		s.ScheduleBoss()
	}
}

// ScheduleBoss sets a fresh random countdown for the next boss.
func (s *SpawnSystem) ScheduleBoss() {
	t := s.state.Tuning
	s.state.NextBossAt = s.state.Now + s.state.Rng.Range(t.BossTimerMin, t.BossTimerMax)
}

// Populate fills a freshly reset world with enemies and starting parts and arms the timers.
func (s *SpawnSystem) Populate() {
	st := s.state
	st.Enemies = st.Enemies[:0]
	for i := 0; i < st.Tuning.EnemyCount; i++ {
		st.Enemies = append(st.Enemies, NewEnemy(st, st.Rng.ChooseVariant(st.Defs)))
	}
	for i := 0; i < st.Tuning.InitialParts; i++ {
		s.SpawnPart()
	}
	st.NextPartAt = st.Now + st.Tuning.PartSpawnInterval
	s.ScheduleBoss()
}

// Update runs the timed spawn checks for this tick.
func (s *SpawnSystem) Update() {
	st := s.state
	if st.Now >= st.NextPartAt {
		st.NextPartAt = st.Now + st.Tuning.PartSpawnInterval
		if st.FieldParts() < st.Tuning.PartCapacity {
			s.SpawnPart()
		}
	}
	if st.Boss == nil && st.Now >= st.NextBossAt {
		s.SpawnBoss()
	}
	s.ExpireOrbs()
}

// SpawnPart drops a weighted random part in an annulus around the player.
// Positions that end up overlapping an obstacle are redrawn; if none is clear
// the spawn is skipped and nil is returned.
func (s *SpawnSystem) SpawnPart() *component.Part {
	st := s.state
	t := st.Tuning
	kind := st.Rng.ChooseWeighted(st.Defs.Loot)
	for i := 0; i < placementAttempts; i++ {
		dist := st.Rng.Range(t.PartSpawnMinRadius, t.PartSpawnMaxRadius)
		pos := st.Player.Pos.Add(st.Rng.Direction().Scale(dist))
		if clear, ok := settle(st, pos, t.PartRadius); ok {
			return st.AddPart(kind, clear, 0)
		}
	}
	return nil
}

// SpawnBoss places the boss away from the player and schedules the next countdown.
func (s *SpawnSystem) SpawnBoss() {
	st := s.state
	t := st.Tuning
	pos := FreePoint(st, st.Player.Pos, t.BossSpawnMinDistance, t.BossRadius)
	st.Boss = NewBoss(st, pos)
	s.ScheduleBoss()
	st.SetBanner("BOSS INCOMING")
	st.Emit(event.BossSpawned, event.Spawn{Pos: pos})
	log.Printf("Spawn: boss at (%.0f, %.0f), next window in %.1fs", pos.X, pos.Y, st.NextBossAt-st.Now)
}

// ExpireOrbs removes score orbs older than their lifetime.
func (s *SpawnSystem) ExpireOrbs() {
	st := s.state
	kept := st.Parts[:0]
	for _, p := range st.Parts {
		if p.Kind == defs.PartScore && st.Now-p.CreatedAt >= st.Tuning.ScoreOrbLifetime {
			continue
		}
		kept = append(kept, p)
	}
	st.Parts = kept
}

// NewFighter builds a fighter at home with starting progression.
func NewFighter(st *entity.State, tag component.FighterTag, home utils.Vec2) *component.Fighter {
	f := &component.Fighter{Tag: tag, Home: home, Primed: true, Aim: utils.UnitX}
	f.Radius = st.Tuning.FighterRadius
	f.Pos = ResolveObstacles(st, st.ClampToWorld(home, f.Radius), f.Radius)
	ResetProgression(st.Tuning, f)
	return f
}
