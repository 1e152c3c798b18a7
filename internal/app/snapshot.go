// internal/app/snapshot.go
package app

import (
	"edge-arena/internal/component"
	"edge-arena/internal/defs"
	"edge-arena/internal/utils"
)

// ActorKind tells the renderer how to draw an actor.
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorBot
	ActorEnemy
	ActorBoss
)

// ActorView is a read-only copy of one fighter, enemy or the boss.
type ActorView struct {
	Kind         ActorKind
	Variant      defs.EnemyVariant
	Pos          utils.Vec2
	Radius       float64
	Angle        float64
	Edges        int
	Plasma       int
	HealthRatio  float64
	Invulnerable bool
	Dashing      bool
}

// PartView is a read-only copy of a field part.
type PartView struct {
	Pos    utils.Vec2
	Radius float64
	Kind   defs.PartKind
	Value  int
}

// ProjectileView is the capsule of a live wave.
type ProjectileView struct {
	From, To utils.Vec2
	Width    float64
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Now         float64
	WorldWidth  float64
	WorldHeight float64
	Obstacles   []component.Obstacle
	Actors      []ActorView // бойцы первыми, затем враги и босс
	Parts       []PartView
	Projectiles []ProjectileView
}

// Player returns the player's view.
func (s Snapshot) Player() ActorView {
	for _, a := range s.Actors {
		if a.Kind == ActorPlayer {
			return a
		}
	}
	return ActorView{}
}

// Snapshot copies the current world for rendering.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	now := st.Now
	snap := Snapshot{
		Now:         now,
		WorldWidth:  st.Tuning.WorldWidth,
		WorldHeight: st.Tuning.WorldHeight,
		Obstacles:   append([]component.Obstacle(nil), st.Obstacles...),
		Actors:      make([]ActorView, 0, len(st.Enemies)+3),
		Parts:       make([]PartView, 0, len(st.Parts)),
		Projectiles: make([]ProjectileView, 0, len(st.Projectiles)),
	}

	for _, f := range st.Fighters() {
		kind := ActorPlayer
		if f.IsBot() {
			kind = ActorBot
		}
		snap.Actors = append(snap.Actors, ActorView{
			Kind:         kind,
			Pos:          f.Pos,
			Radius:       f.Radius,
			Angle:        f.Angle,
			Edges:        f.Edges,
			Plasma:       f.Plasma,
			HealthRatio:  f.HealthRatio(),
			Invulnerable: f.Invulnerable(now),
			Dashing:      f.Dashing(now),
		})
	}
	for _, e := range st.Enemies {
		snap.Actors = append(snap.Actors, enemyView(e, ActorEnemy))
	}
	if st.Boss != nil {
		snap.Actors = append(snap.Actors, enemyView(st.Boss, ActorBoss))
	}

	for _, p := range st.Parts {
		snap.Parts = append(snap.Parts, PartView{Pos: p.Pos, Radius: p.Radius, Kind: p.Kind, Value: p.Value})
	}
	for _, p := range st.Projectiles {
		from, to := p.Segment()
		snap.Projectiles = append(snap.Projectiles, ProjectileView{From: from, To: to, Width: p.Width})
	}
	return snap
}

func enemyView(e *component.Enemy, kind ActorKind) ActorView {
	return ActorView{
		Kind:        kind,
		Variant:     e.Variant,
		Pos:         e.Pos,
		Radius:      e.Radius,
		Angle:       e.Angle,
		Edges:       e.Edges,
		HealthRatio: e.HealthRatio(),
	}
}
