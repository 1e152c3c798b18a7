// internal/entity/state.go
package entity

import (
	"edge-arena/internal/component"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
)

// State — единый контейнер симуляции. Все системы получают его явно,
// поэтому несколько симуляций могут жить одновременно (например, в тестах).
type State struct {
	Now    float64 // время симуляции в секундах
	Rng    *utils.PRNGService
	Tuning config.Tuning
	Defs   *defs.Library
	Events *event.Dispatcher

	Obstacles   []component.Obstacle
	Player      *component.Fighter
	Bot         *component.Fighter // может отсутствовать
	Enemies     []*component.Enemy
	Boss        *component.Enemy // nil, пока босса нет
	Parts       []*component.Part
	Projectiles []*component.Projectile

	Kills      int
	NextPartAt float64
	NextBossAt float64

	BannerText  string
	BannerUntil float64
}

// NewState creates an empty simulation container.
func NewState(t config.Tuning, lib *defs.Library, rng *utils.PRNGService, events *event.Dispatcher) *State {
	return &State{
		Rng:    rng,
		Tuning: t,
		Defs:   lib,
		Events: events,
	}
}

// Emit forwards an event to the dispatcher.
func (s *State) Emit(t event.EventType, data interface{}) {
	if s.Events != nil {
		s.Events.Emit(t, data)
	}
}

// SpawnPoint returns the player's home position, the world centre.
func (s *State) SpawnPoint() utils.Vec2 {
	return utils.Vec2{X: s.Tuning.WorldWidth / 2, Y: s.Tuning.WorldHeight / 2}
}

// ClampToWorld keeps a circle of radius inside the world rectangle.
func (s *State) ClampToWorld(pos utils.Vec2, radius float64) utils.Vec2 {
	return utils.Vec2{
		X: utils.Clamp(pos.X, radius, s.Tuning.WorldWidth-radius),
		Y: utils.Clamp(pos.Y, radius, s.Tuning.WorldHeight-radius),
	}
}

// RandomPoint returns a uniform point inside the world inset by margin.
func (s *State) RandomPoint(margin float64) utils.Vec2 {
	return utils.Vec2{
		X: s.Rng.Range(margin, s.Tuning.WorldWidth-margin),
		Y: s.Rng.Range(margin, s.Tuning.WorldHeight-margin),
	}
}

// Fighters returns the live fighters, player first.
func (s *State) Fighters() []*component.Fighter {
	if s.Bot == nil {
		return []*component.Fighter{s.Player}
	}
	return []*component.Fighter{s.Player, s.Bot}
}

// ClosestFighter returns the fighter nearest to pos.
func (s *State) ClosestFighter(pos utils.Vec2) *component.Fighter {
	best := s.Player
	if s.Bot != nil && s.Bot.Pos.DistSq(pos) < s.Player.Pos.DistSq(pos) {
		best = s.Bot
	}
	return best
}

// SetBanner shows text until Now + Tuning.BannerDuration.
func (s *State) SetBanner(text string) {
	s.BannerText = text
	s.BannerUntil = s.Now + s.Tuning.BannerDuration
	s.Emit(event.BannerShown, event.Banner{Text: text, Duration: s.Tuning.BannerDuration})
}

// Banner returns the active banner text, or "" once it expired.
func (s *State) Banner() string {
	if s.Now >= s.BannerUntil {
		return ""
	}
	return s.BannerText
}

// AddPart appends a part to the field.
func (s *State) AddPart(kind defs.PartKind, pos utils.Vec2, value int) *component.Part {
	p := &component.Part{
		Pos:       s.ClampToWorld(pos, s.Tuning.PartRadius),
		Radius:    s.Tuning.PartRadius,
		Kind:      kind,
		CreatedAt: s.Now,
		Value:     value,
	}
	s.Parts = append(s.Parts, p)
	return p
}

// FieldParts counts non-score parts.
func (s *State) FieldParts() int {
	n := 0
	for _, p := range s.Parts {
		if p.Kind != defs.PartScore {
			n++
		}
	}
	return n
}
