// internal/state/pause_state.go
package state

import (
	"edge-arena/internal/config"
	"edge-arena/internal/ui"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	resume        *ui.Button
	restart       *ui.Button
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	face := basicfont.Face7x13
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		resume:        ui.NewButton(image.Rect(cx-80, cy+10, cx+80, cy+44), "Resume", face),
		restart:       ui.NewButton(image.Rect(cx-80, cy+54, cx+80, cy+88), "Restart", face),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case s.resume.Contains(x, y), s.previousState.pauseButton.IsClicked(x, y):
			unpause = true
		case s.restart.Contains(x, y):
			restart = true
		}
	}

	if restart {
		game := s.previousState.Game()
		game.Reset()
		s.previousState.renderer.Reset(game.Snapshot())
		unpause = true
	}
	if unpause {
		// Enter игрового состояния снимает паузу без догоняющего шага
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	pauseText := "PAUSED"
	textWidth := len(pauseText) * config.TextCharWidth
	text.Draw(screen, pauseText, basicfont.Face7x13, (config.ScreenWidth-textWidth)/2, config.ScreenHeight/2-20, config.TextLightColor)

	x, y := ebiten.CursorPosition()
	s.resume.Draw(screen, x, y)
	s.restart.Draw(screen, x, y)
}

func (s *PauseState) Exit() {}
