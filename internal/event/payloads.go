// internal/event/payloads.go
package event

import (
	"edge-arena/internal/defs"
	"edge-arena/internal/utils"
)

// DamageText asks for a floating damage number at Pos.
type DamageText struct {
	Pos    utils.Vec2
	Amount int
	Primed bool
}

// ScoreText asks for a floating "+N" at Pos.
type ScoreText struct {
	Pos    utils.Vec2
	Amount int
}

// Burst asks for a particle burst.
type Burst struct {
	Pos   utils.Vec2
	Size  float64
	Boss  bool
	Fatal bool
}

// Shake asks the camera to shake with the given intensity in pixels.
type Shake struct {
	Intensity float64
}

// Flash asks for a short highlight over a circle.
type Flash struct {
	Pos    utils.Vec2
	Radius float64
}

// Banner is a timed message across the screen.
type Banner struct {
	Text     string
	Duration float64
}

// Kill describes an enemy or boss death.
type Kill struct {
	Variant defs.EnemyVariant
	Pos     utils.Vec2
	Killer  string
}

// Spawn describes a boss appearance.
type Spawn struct {
	Pos utils.Vec2
}

// Elimination describes a fighter being knocked out.
type Elimination struct {
	Victim  string
	Killer  string
	Dropped int
	Pos     utils.Vec2
}

// Pickup describes a part being collected.
type Pickup struct {
	Kind      defs.PartKind
	Pos       utils.Vec2
	Collector string
	Value     int
}

// Cast describes a wave launch.
type Cast struct {
	Caster string
	Pos    utils.Vec2
	Dir    utils.Vec2
}

// Level describes a progression step.
type Level struct {
	Fighter string
	Edges   int
	Plasma  int
	Wave    int
}
