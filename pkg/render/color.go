// pkg/render/color.go
package render

import (
	"edge-arena/internal/app"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"image/color"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves a color toward white by amount in [0, 1].
func LightenColor(c color.RGBA, amount float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*amount) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// WithAlpha returns c with alpha scaled by a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	scale := func(v uint8) uint8 { return uint8(float64(v) * a) }
	// ebiten ожидает premultiplied alpha
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

// ActorColor picks the body color for an actor.
func ActorColor(a app.ActorView, lib *defs.Library) color.RGBA {
	switch a.Kind {
	case app.ActorPlayer:
		return config.PlayerColor
	case app.ActorBot:
		return config.BotColor
	case app.ActorBoss:
		return config.BossColor
	default:
		return lib.Enemy(a.Variant).Visuals.Color()
	}
}
