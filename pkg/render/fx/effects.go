// Package fx turns simulation events into short-lived visual effects.
// It holds no rendering dependency so both hosts can share it.
package fx

import (
	"edge-arena/internal/config"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
	"fmt"
	"image/color"
	"math"
)

// FloatingText rises and fades over its duration.
type FloatingText struct {
	Pos      utils.Vec2
	Text     string
	Color    color.RGBA
	Age      float64
	Duration float64
}

// Particle is one fragment of a burst.
type Particle struct {
	Pos      utils.Vec2
	Vel      utils.Vec2
	Color    color.RGBA
	Age      float64
	Duration float64
}

// Flash highlights a circle briefly.
type Flash struct {
	Pos      utils.Vec2
	Radius   float64
	Age      float64
	Duration float64
}

// Progress returns how far through its life the text is, in [0, 1].
func (t FloatingText) Progress() float64 { return utils.Clamp(t.Age/t.Duration, 0, 1) }

// Progress returns how far through its life the particle is, in [0, 1].
func (p Particle) Progress() float64 { return utils.Clamp(p.Age/p.Duration, 0, 1) }

// Progress returns how far through its life the flash is, in [0, 1].
func (f Flash) Progress() float64 { return utils.Clamp(f.Age/f.Duration, 0, 1) }

// Effects collects everything the renderer animates between frames.
type Effects struct {
	Texts     []FloatingText
	Particles []Particle
	Flashes   []Flash
	Shake     float64
	Banner    string
	bannerAge float64
	bannerDur float64

	rng *utils.PRNGService
}

// NewEffects creates an empty effect set. Particles use their own random source.
func NewEffects(seed int64) *Effects {
	return &Effects{rng: utils.NewPRNGService(seed)}
}

// Apply converts drained events into effects.
func (e *Effects) Apply(events []event.Event) {
	for _, ev := range events {
		switch data := ev.Data.(type) {
		case event.DamageText:
			c := config.TextDamageColor
			label := fmt.Sprintf("%d", data.Amount)
			if data.Primed {
				c = config.PlasmaColor
				label += "!"
			}
			e.addText(data.Pos, label, c)
		case event.ScoreText:
			e.addText(data.Pos, fmt.Sprintf("+%d", data.Amount), config.TextScoreColor)
		case event.Burst:
			e.addBurst(data)
		case event.Shake:
			e.Shake = math.Max(e.Shake, data.Intensity)
		case event.Flash:
			e.Flashes = append(e.Flashes, Flash{Pos: data.Pos, Radius: data.Radius, Duration: config.FlashDuration})
		case event.Banner:
			e.Banner = data.Text
			e.bannerAge = 0
			e.bannerDur = data.Duration
		}
	}
}

func (e *Effects) addText(pos utils.Vec2, text string, c color.RGBA) {
	e.Texts = append(e.Texts, FloatingText{Pos: pos, Text: text, Color: c, Duration: config.FloatingTextDuration})
}

func (e *Effects) addBurst(b event.Burst) {
	n := config.BurstParticles
	c := config.TextDamageColor
	if b.Boss {
		c = config.BossColor
	}
	if b.Fatal {
		n *= 2
	}
	for i := 0; i < n; i++ {
		speed := e.rng.Range(40, 140) * (1 + b.Size/40)
		e.Particles = append(e.Particles, Particle{
			Pos:      b.Pos,
			Vel:      e.rng.Direction().Scale(speed),
			Color:    c,
			Duration: config.BurstDuration * e.rng.Range(0.6, 1.2),
		})
	}
}

// Update ages every effect by dt and drops finished ones.
func (e *Effects) Update(dt float64) {
	texts := e.Texts[:0]
	for _, t := range e.Texts {
		t.Age += dt
		if t.Age < t.Duration {
			texts = append(texts, t)
		}
	}
	e.Texts = texts

	particles := e.Particles[:0]
	for _, p := range e.Particles {
		p.Age += dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(math.Max(0, 1-3*dt))
		if p.Age < p.Duration {
			particles = append(particles, p)
		}
	}
	e.Particles = particles

	flashes := e.Flashes[:0]
	for _, f := range e.Flashes {
		f.Age += dt
		if f.Age < f.Duration {
			flashes = append(flashes, f)
		}
	}
	e.Flashes = flashes

	e.Shake = math.Max(0, e.Shake-config.ShakeDecay*dt*math.Max(1, e.Shake))
	if e.Banner != "" {
		e.bannerAge += dt
		if e.bannerAge >= e.bannerDur {
			e.Banner = ""
		}
	}
}

// ShakeOffset returns a random camera offset for the current shake intensity.
func (e *Effects) ShakeOffset() utils.Vec2 {
	if e.Shake <= 0 {
		return utils.Vec2{}
	}
	return utils.Vec2{X: e.rng.Jitter(e.Shake), Y: e.rng.Jitter(e.Shake)}
}

// TextOffset returns how far a floating text has risen.
func TextOffset(t FloatingText) float64 {
	return config.FloatingTextRise * t.Progress()
}

// Clear drops every effect.
func (e *Effects) Clear() {
	e.Texts, e.Particles, e.Flashes = nil, nil, nil
	e.Shake = 0
	e.Banner = ""
}
