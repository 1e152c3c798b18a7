// internal/system/movement.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/entity"
	"edge-arena/internal/utils"
	"math"
)

// MovementSystem перемещает сущности и выталкивает их из препятствий.
// Сущности между собой не сталкиваются.
type MovementSystem struct {
	state *entity.State
}

func NewMovementSystem(state *entity.State) *MovementSystem {
	return &MovementSystem{state: state}
}

// Move displaces body by dir·speed·dt, clamps it into the world and resolves obstacles.
func (s *MovementSystem) Move(body *component.Body, dir utils.Vec2, speed, dt float64) {
	body.Pos = body.Pos.Add(dir.Scale(speed * dt))
	body.Pos = s.state.ClampToWorld(body.Pos, body.Radius)
	body.Pos = ResolveObstacles(s.state, body.Pos, body.Radius)
}

// ResolveObstacles pushes a circle out of every obstacle it overlaps, in obstacle order.
func ResolveObstacles(st *entity.State, pos utils.Vec2, radius float64) utils.Vec2 {
	clearance := radius + st.Tuning.CollisionMargin
	for _, o := range st.Obstacles {
		pos = pushOut(o, pos, clearance)
	}
	return pos
}

// pushOut moves pos so that its distance to the rectangle is at least clearance.
func pushOut(o component.Obstacle, pos utils.Vec2, clearance float64) utils.Vec2 {
	nearest := o.Nearest(pos)
	delta := pos.Sub(nearest)
	dist := delta.Len()
	if dist >= clearance {
		return pos
	}
	if dist > 0 {
		return nearest.Add(delta.Scale(clearance / dist))
	}

	// Центр внутри прямоугольника: выходим через ближайшую грань
	left := pos.X - o.X
	right := o.X + o.W - pos.X
	top := pos.Y - o.Y
	bottom := o.Y + o.H - pos.Y
	m := math.Min(math.Min(left, right), math.Min(top, bottom))
	switch m {
	case left:
		pos.X = o.X - clearance
	case right:
		pos.X = o.X + o.W + clearance
	case top:
		pos.Y = o.Y - clearance
	default:
		pos.Y = o.Y + o.H + clearance
	}
	return pos
}
