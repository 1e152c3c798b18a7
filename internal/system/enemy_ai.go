// internal/system/enemy_ai.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/defs"
	"edge-arena/internal/entity"
	"edge-arena/internal/utils"
	"math"
)

const enemySpin = 1.2 // рад/с, только для отрисовки

// EnemyAISystem ведёт диких врагов и босса: преследование ближайшего бойца
// и сбор предметов поблизости.
type EnemyAISystem struct {
	state    *entity.State
	movement *MovementSystem
	pickup   *PickupSystem
}

func NewEnemyAISystem(state *entity.State, movement *MovementSystem, pickup *PickupSystem) *EnemyAISystem {
	return &EnemyAISystem{state: state, movement: movement, pickup: pickup}
}

// UpdateEnemy steers one wild enemy, moves it and lets it collect parts.
func (s *EnemyAISystem) UpdateEnemy(e *component.Enemy, deltaTime float64) {
	st := s.state
	t := st.Tuning
	def := st.Defs.Enemy(e.Variant)

	if st.Now >= e.RetargetAt {
		target := st.ClosestFighter(e.Pos).Pos
		e.Target = utils.Vec2{
			X: target.X + st.Rng.Jitter(t.EnemyTargetJitter),
			Y: target.Y + st.Rng.Jitter(t.EnemyTargetJitter),
		}
		e.RetargetAt = st.Now + st.Rng.Range(t.EnemyRetargetMin, t.EnemyRetargetMax)
	}

	goal := e.Target
	if p := NearestPart(st, e.Pos, def.LootRadius); p != nil {
		goal = p.Pos
	}

	e.Vel = goal.Sub(e.Pos).Normalize(utils.Vec2{})
	speed := def.Speed * (1 + t.EnemySpeedPerEdge*float64(e.Edges-t.BaseEdges))
	s.movement.Move(&e.Body, e.Vel, speed, deltaTime)
	e.Angle += enemySpin * deltaTime

	s.pickup.CollectEnemy(e)
}

// UpdateBoss chases the closest fighter.
func (s *EnemyAISystem) UpdateBoss(deltaTime float64) {
	st := s.state
	boss := st.Boss
	if boss == nil {
		return
	}
	boss.Target = st.ClosestFighter(boss.Pos).Pos
	boss.Vel = boss.Target.Sub(boss.Pos).Normalize(utils.Vec2{})
	s.movement.Move(&boss.Body, boss.Vel, st.Tuning.BossSpeed, deltaTime)
	boss.Angle -= enemySpin * 0.5 * deltaTime
}

// NearestPart returns the closest non-score part within radius of pos, or nil.
// A non-positive radius means unlimited.
func NearestPart(st *entity.State, pos utils.Vec2, radius float64) *component.Part {
	var best *component.Part
	bestDist := math.Inf(1)
	limit := radius * radius
	for _, p := range st.Parts {
		if p.Kind == defs.PartScore {
			continue
		}
		d := p.Pos.DistSq(pos)
		if radius > 0 && d > limit {
			continue
		}
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// RollEnemy assigns variant, radius and a random edge count to e.
func RollEnemy(st *entity.State, e *component.Enemy, variant defs.EnemyVariant) {
	def := st.Defs.Enemy(variant)
	e.Variant = variant
	e.Radius = def.Radius
	e.Edges = utils.ClampInt(st.Rng.IntRange(def.MinEdges, def.MaxEdges), 0, st.Tuning.EnemyEdgeCap)
}

// NewEnemy creates a wild enemy of the given variant away from the player.
func NewEnemy(st *entity.State, variant defs.EnemyVariant) *component.Enemy {
	e := &component.Enemy{}
	RollEnemy(st, e, variant)
	e.Pos = FreePoint(st, st.Player.Pos, st.Tuning.EnemyRespawnMinDistance, e.Radius)
	e.Target = e.Pos
	e.RetargetAt = st.Now
	e.Angle = st.Rng.Angle()
	RecomputeEnemy(st.Tuning, st.Defs, e)
	e.Health = float64(e.MaxHealth)
	return e
}

// NewBoss creates the boss at pos.
func NewBoss(st *entity.State, pos utils.Vec2) *component.Enemy {
	t := st.Tuning
	boss := &component.Enemy{IsBoss: true}
	boss.Pos = pos
	boss.Radius = t.BossRadius
	boss.Edges = utils.ClampInt(t.BossEdges, 0, t.EnemyEdgeCap)
	boss.Target = pos
	RecomputeEnemy(t, st.Defs, boss)
	boss.Health = float64(boss.MaxHealth)
	return boss
}
