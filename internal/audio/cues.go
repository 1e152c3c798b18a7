// internal/audio/cues.go
package audio

import (
	"edge-arena/internal/event"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue is a short sequence of sine notes.
type Cue struct {
	Notes    []float64 // частоты в Гц
	Duration time.Duration
	Volume   float64 // линейная громкость, 1 значит без изменений
}

// CueFor maps a simulation event to its sound. Visual-only events have no sound.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.EnemyKilled:
		return Cue{Notes: []float64{660, 880}, Duration: 45 * time.Millisecond, Volume: 0.4}, true
	case event.BossSpawned:
		return Cue{Notes: []float64{110, 98, 82}, Duration: 180 * time.Millisecond, Volume: 0.6}, true
	case event.BossDefeated:
		return Cue{Notes: []float64{523, 659, 784, 1047}, Duration: 90 * time.Millisecond, Volume: 0.6}, true
	case event.FighterEliminated:
		return Cue{Notes: []float64{294, 220, 165}, Duration: 110 * time.Millisecond, Volume: 0.5}, true
	case event.PartCollected:
		if p, ok := e.Data.(event.Pickup); ok && (p.Collector == "player" || p.Collector == "bot") {
			return Cue{Notes: []float64{1175}, Duration: 30 * time.Millisecond, Volume: 0.2}, true
		}
	case event.WaveCast:
		return Cue{Notes: []float64{330, 440}, Duration: 60 * time.Millisecond, Volume: 0.35}, true
	case event.EdgeUp:
		return Cue{Notes: []float64{784, 988}, Duration: 70 * time.Millisecond, Volume: 0.45}, true
	}
	return Cue{}, false
}

// Build renders the cue into a finite streamer at rate.
func (c Cue) Build(rate beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(c.Notes))
	for _, freq := range c.Notes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(rate.N(c.Duration), volume(tone, c.Volume)))
	}
	return beep.Seq(parts...), nil
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Player plays finished streamers.
type Player interface {
	Play(s beep.Streamer)
}

// Cues plays a sound for every subscribed simulation event.
type Cues struct {
	player Player
	rate   beep.SampleRate
	warned bool // ошибка синтеза уже в логе
}

// NewCues creates a listener that sends sounds to player.
func NewCues(player Player, rate beep.SampleRate) *Cues {
	return &Cues{player: player, rate: rate}
}

// Attach subscribes the cues to every event type that has a sound.
func (c *Cues) Attach(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.EnemyKilled,
		event.BossSpawned,
		event.BossDefeated,
		event.FighterEliminated,
		event.PartCollected,
		event.WaveCast,
		event.EdgeUp,
	)
}

func (c *Cues) OnEvent(e event.Event) {
	cue, ok := CueFor(e)
	if !ok {
		return
	}
	s, err := cue.Build(c.rate)
	if err != nil {
		if !c.warned {
			log.Printf("Audio: failed to build cue for %s: %v", e.Type, err)
			c.warned = true
		}
		return
	}
	c.player.Play(s)
}
