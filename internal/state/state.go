// internal/state/state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для экранов хоста (игра, пауза)
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Переход, запрошенный во время Update,
// выполняется после того, как текущее состояние закончит свой кадр.
type StateMachine struct {
	current  State
	pending  State
	updating bool
}

// NewStateMachine создаёт машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState switches to newState, deferring the switch while an Update is running.
func (sm *StateMachine) SetState(newState State) {
	if sm.updating {
		sm.pending = newState
		return
	}
	sm.switchTo(newState)
}

func (sm *StateMachine) switchTo(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	log.Printf("State: %s -> %s", stateName(sm.current), stateName(newState))
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние и применяет отложенный переход
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.updating = true
	sm.current.Update(deltaTime)
	sm.updating = false

	if next := sm.pending; next != nil {
		sm.pending = nil
		sm.switchTo(next)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
