// internal/system/player_system.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/entity"
	"edge-arena/internal/utils"
)

const fighterSpin = 1.5 // рад/с, только для отрисовки

// PlayerSystem переводит сведённый ввод в движение и рывок игрока.
type PlayerSystem struct {
	state    *entity.State
	movement *MovementSystem
}

func NewPlayerSystem(state *entity.State, movement *MovementSystem) *PlayerSystem {
	return &PlayerSystem{state: state, movement: movement}
}

// Steer applies a movement intent and an optional dash trigger for one tick.
func (s *PlayerSystem) Steer(f *component.Fighter, move utils.Vec2, dash bool, deltaTime float64) {
	st := s.state
	t := st.Tuning

	if move.Len() > 1 {
		move = move.Normalize(utils.UnitX)
	}
	if !move.IsZero() {
		f.Aim = move.Normalize(utils.UnitX)
	}

	if dash && st.Now >= f.DashReadyAt {
		f.DashUntil = st.Now + t.DashDuration
		f.DashReadyAt = st.Now + t.DashCooldown
	}

	speed := t.FighterSpeed
	if f.Dashing(st.Now) {
		speed *= t.DashSpeedMultiplier
		if move.IsZero() {
			move = f.Aim.Normalize(utils.UnitX)
		}
	}

	f.Vel = move
	s.movement.Move(&f.Body, move, speed, deltaTime)
	f.Angle += fighterSpin * deltaTime
}
