// internal/component/part.go
package component

import (
	"edge-arena/internal/defs"
	"edge-arena/internal/utils"
)

// Part — подбираемый предмет на поле.
type Part struct {
	Pos       utils.Vec2
	Radius    float64
	Kind      defs.PartKind
	CreatedAt float64
	Value     int // только для PartScore
}

// Obstacle — статичный прямоугольник, выровненный по осям.
type Obstacle struct {
	X, Y, W, H float64
}

// Nearest returns the point of the rectangle closest to p.
func (o Obstacle) Nearest(p utils.Vec2) utils.Vec2 {
	return utils.Vec2{
		X: utils.Clamp(p.X, o.X, o.X+o.W),
		Y: utils.Clamp(p.Y, o.Y, o.Y+o.H),
	}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (o Obstacle) Contains(p utils.Vec2) bool {
	return p.X >= o.X && p.X <= o.X+o.W && p.Y >= o.Y && p.Y <= o.Y+o.H
}

// Overlaps reports whether two rectangles overlap once o is grown by pad on every side.
func (o Obstacle) Overlaps(other Obstacle, pad float64) bool {
	return o.X-pad < other.X+other.W &&
		o.X+o.W+pad > other.X &&
		o.Y-pad < other.Y+other.H &&
		o.Y+o.H+pad > other.Y
}
