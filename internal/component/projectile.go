// internal/component/projectile.go
package component

import "edge-arena/internal/utils"

// Projectile — волна, выпущенная бойцом. Летит по прямой и поражает первую цель.
type Projectile struct {
	Owner      *Fighter
	Pos        utils.Vec2
	Dir        utils.Vec2
	Width      float64
	Length     float64
	Speed      float64
	Lifetime   float64
	Age        float64
	Multiplier float64
	WaveLevel  int
}

// Expired reports whether the projectile outlived its range.
func (p *Projectile) Expired() bool { return p.Age >= p.Lifetime }

// Segment returns the capsule's centre line endpoints.
func (p *Projectile) Segment() (utils.Vec2, utils.Vec2) {
	half := p.Dir.Scale(p.Length / 2)
	return p.Pos.Sub(half), p.Pos.Add(half)
}

// Hits reports whether a circle at pos with radius touches the capsule.
func (p *Projectile) Hits(pos utils.Vec2, radius float64) bool {
	a, b := p.Segment()
	return utils.PointSegmentDistance(pos, a, b) <= radius+p.Width/2
}
