// internal/component/enemy.go
package component

import (
	"edge-arena/internal/defs"
	"edge-arena/internal/utils"
)

// Enemy представляет дикого врага или босса.
type Enemy struct {
	Body
	Stats
	Variant    defs.EnemyVariant
	Target     utils.Vec2
	RetargetAt float64
	IsBoss     bool
}
