// internal/state/game_state.go
package state

import (
	"edge-arena/internal/app"
	"edge-arena/internal/config"
	"edge-arena/internal/ui"
	"edge-arena/internal/utils"
	"edge-arena/pkg/render"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// GameState — основное состояние: ввод, симуляция, отрисовка арены и HUD
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.ArenaRenderer
	hud           *ui.HUDPanel
	pauseButton   *ui.PauseButton
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	face := basicfont.Face7x13
	renderer := render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, game.Defs(), game.Seed())
	renderer.Reset(game.Snapshot())

	return &GameState{
		sm:            sm,
		game:          game,
		renderer:      renderer,
		hud:           ui.NewHUDPanel(face),
		pauseButton:   ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
		lastClickTime: time.Now(),
	}
}

// Game returns the simulation driven by this state.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	if g.game.IsPaused() {
		g.game.Resume()
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
		g.renderer.Reset(g.game.Snapshot())
		return
	}

	in := readInput()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.IsClicked(x, y) && time.Since(g.lastClickTime) >= 200*time.Millisecond {
			in.Pause = true
			g.lastClickTime = time.Now()
		}
	}

	g.game.Frame(in)
	g.renderer.Effects.Apply(g.game.Drain())
	if g.game.IsPaused() {
		g.pauseButton.SetPaused(true)
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.renderer.Update(g.game.Snapshot(), deltaTime)
}

// readInput сводит клавиатуру к Input: WASD/стрелки, Shift/Space — рывок, E/J — волна, P/Esc — пауза.
func readInput() app.Input {
	var move utils.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}
	return app.Input{
		Move:  move.Normalize(utils.Vec2{}),
		Dash:  inpututil.IsKeyJustPressed(ebiten.KeyShift) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Wave:  inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyJ),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Snapshot())
	g.hud.Draw(screen, g.game.HUD())
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
