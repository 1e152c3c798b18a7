// pkg/render/fx/camera.go
package fx

import "edge-arena/internal/utils"

// Camera follows a target smoothly and never shows outside the world.
type Camera struct {
	Pos         utils.Vec2 // центр обзора в мировых координатах
	ViewW       float64
	ViewH       float64
	FollowSpeed float64
}

// NewCamera creates a camera centred on pos.
func NewCamera(pos utils.Vec2, viewW, viewH float64) *Camera {
	return &Camera{Pos: pos, ViewW: viewW, ViewH: viewH, FollowSpeed: 8}
}

// Follow eases toward target and clamps to the world rectangle.
func (c *Camera) Follow(target utils.Vec2, worldW, worldH, dt float64) {
	t := utils.Clamp(c.FollowSpeed*dt, 0, 1)
	c.Pos = utils.LerpVec(c.Pos, target, t)
	c.Pos.X = clampAxis(c.Pos.X, c.ViewW, worldW)
	c.Pos.Y = clampAxis(c.Pos.Y, c.ViewH, worldH)
}

// Snap moves the camera onto target immediately.
func (c *Camera) Snap(target utils.Vec2, worldW, worldH float64) {
	c.Pos = target
	c.Pos.X = clampAxis(c.Pos.X, c.ViewW, worldW)
	c.Pos.Y = clampAxis(c.Pos.Y, c.ViewH, worldH)
}

// WorldToScreen converts a world point into view coordinates.
func (c *Camera) WorldToScreen(p utils.Vec2) utils.Vec2 {
	return utils.Vec2{X: p.X - c.Pos.X + c.ViewW/2, Y: p.Y - c.Pos.Y + c.ViewH/2}
}

func clampAxis(center, view, world float64) float64 {
	if view >= world {
		return world / 2
	}
	return utils.Clamp(center, view/2, world-view/2)
}
