// internal/component/movement.go
package component

import "edge-arena/internal/utils"

// Body — позиция, скорость и размер круглой сущности.
type Body struct {
	Pos    utils.Vec2
	Vel    utils.Vec2
	Radius float64
	Angle  float64 // ориентация, только для отрисовки
}
