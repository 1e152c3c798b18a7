// cmd/arena-tui/main.go
package main

import (
	"edge-arena/internal/app"
	"edge-arena/internal/audio"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"edge-arena/internal/utils"
	"edge-arena/pkg/render/fx"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth  = 16.0 // мировых пикселей на клетку по X
	cellHeight = 32.0 // клетки терминала вдвое выше, чем шире
	moveHold   = 8    // терминал не сообщает об отпускании клавиш: намерение гаснет через N кадров
)

type host struct {
	screen  tcell.Screen
	game    *app.Game
	camera  *fx.Camera
	effects *fx.Effects

	move     utils.Vec2
	moveLeft int
	pending  app.Input
}

func main() {
	tuningPath := flag.String("config", "", "path to a tuning YAML file")
	defsPath := flag.String("defs", "", "path to an enemy/loot definitions YAML file")
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	noBot := flag.Bool("no-bot", false, "play without the rival bot")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write the log to this file instead of discarding it")
	flag.Parse()

	opts, err := app.LoadOptions(*tuningPath, *defsPath, *seed)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	opts.NoBot = *noBot
	game := app.NewGame(opts)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	// Терминал занят экраном: лог уходит в файл или никуда
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	if !*mute {
		player, err := audio.NewSpeakerPlayer()
		if err == nil {
			defer player.Close()
			audio.NewCues(player, audio.SampleRate).Attach(game.EventDispatcher)
		}
	}

	h := &host{screen: screen, game: game, effects: fx.NewEffects(game.Seed())}
	h.resize()
	h.run()
}

func (h *host) resize() {
	w, ht := h.screen.Size()
	snap := h.game.Snapshot()
	h.camera = fx.NewCamera(snap.Player().Pos, float64(w)*cellWidth, float64(ht)*cellHeight)
	h.camera.Snap(snap.Player().Pos, snap.WorldWidth, snap.WorldHeight)
}

func (h *host) run() {
	ticker := time.NewTicker(time.Second / config.TUITickRate)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := pollEvents(h.screen, done)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handleInput(ev) {
				return
			}
		case <-ticker.C:
			h.step()
			h.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done closes.
// The returned channel is closed when polling stops.
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handleInput reports false when the player asked to quit.
func (h *host) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyEscape:
			h.pending.Pause = true
		case tcell.KeyUp:
			h.steer(utils.Vec2{Y: -1})
		case tcell.KeyDown:
			h.steer(utils.Vec2{Y: 1})
		case tcell.KeyLeft:
			h.steer(utils.Vec2{X: -1})
		case tcell.KeyRight:
			h.steer(utils.Vec2{X: 1})
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				h.steer(utils.Vec2{Y: -1})
			case 's':
				h.steer(utils.Vec2{Y: 1})
			case 'a':
				h.steer(utils.Vec2{X: -1})
			case 'd':
				h.steer(utils.Vec2{X: 1})
			case ' ':
				h.pending.Dash = true
			case 'e', 'j':
				h.pending.Wave = true
			case 'p':
				h.pending.Pause = true
			case 'r':
				h.game.Reset()
				h.effects.Clear()
				h.resize()
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return true
}

// steer смешивает новое направление с текущим, чтобы диагонали работали при автоповторе.
func (h *host) steer(dir utils.Vec2) {
	if h.moveLeft > 0 && h.move.Dot(dir) >= 0 {
		dir = h.move.Add(dir)
		dir.X = utils.Clamp(dir.X, -1, 1)
		dir.Y = utils.Clamp(dir.Y, -1, 1)
	}
	h.move = dir
	h.moveLeft = moveHold
}

func (h *host) step() {
	in := h.pending
	h.pending = app.Input{}
	if h.moveLeft > 0 {
		in.Move = h.move.Normalize(utils.Vec2{})
		h.moveLeft--
	}

	h.game.Frame(in)
	h.effects.Apply(h.game.Drain())
	if h.game.IsPaused() {
		return
	}
	snap := h.game.Snapshot()
	h.camera.Follow(snap.Player().Pos, snap.WorldWidth, snap.WorldHeight, 1.0/config.TUITickRate)
	h.effects.Update(1.0 / config.TUITickRate)
}

func (h *host) draw() {
	h.screen.Clear()
	snap := h.game.Snapshot()
	lib := h.game.Defs()
	w, ht := h.screen.Size()

	toCell := func(p utils.Vec2) (int, int, bool) {
		s := h.camera.WorldToScreen(p)
		x, y := int(s.X/cellWidth), int(s.Y/cellHeight)
		return x, y, x >= 0 && y >= 0 && x < w && y < ht
	}
	put := func(p utils.Vec2, r rune, c color.RGBA) {
		if x, y, ok := toCell(p); ok {
			h.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(rgb(c)))
		}
	}

	// Границы мира и препятствия
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			world := utils.Vec2{
				X: h.camera.Pos.X - h.camera.ViewW/2 + (float64(x)+0.5)*cellWidth,
				Y: h.camera.Pos.Y - h.camera.ViewH/2 + (float64(y)+0.5)*cellHeight,
			}
			if world.X < 0 || world.Y < 0 || world.X > snap.WorldWidth || world.Y > snap.WorldHeight {
				h.screen.SetContent(x, y, '░', nil, tcell.StyleDefault.Foreground(rgb(config.BoundsColor)))
				continue
			}
			for _, o := range snap.Obstacles {
				if o.Contains(world) {
					h.screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(rgb(config.ObstacleColor)))
					break
				}
			}
		}
	}

	for _, p := range snap.Parts {
		r := '·'
		if p.Kind == defs.PartScore {
			r = '$'
		}
		put(p.Pos, r, config.PartColors[p.Kind])
	}
	for _, p := range snap.Projectiles {
		put(utils.LerpVec(p.From, p.To, 0.5), '~', config.WaveColor)
		put(p.To, '≈', config.WaveColor)
	}
	for _, a := range snap.Actors {
		r, c := actorGlyph(a, lib)
		put(a.Pos, r, c)
	}
	for _, t := range h.effects.Texts {
		if x, y, ok := toCell(t.Pos.Sub(utils.Vec2{Y: fx.TextOffset(t)})); ok {
			drawText(h.screen, x, y-1, t.Text, tcell.StyleDefault.Foreground(rgb(t.Color)))
		}
	}

	h.drawHUD(w, ht)
	h.screen.Show()
}

func (h *host) drawHUD(w, ht int) {
	hud := h.game.HUD()
	style := tcell.StyleDefault.Foreground(rgb(config.TextLightColor)).Background(tcell.ColorBlack)
	line := fmt.Sprintf(" HP %d/%d  Edges %d  ATK %d  DEF %d  Plasma %d  Wave %d  Kills %d  Parts %d  Score %d  Bot %d ",
		hud.Health, hud.MaxHealth, hud.Edges, hud.Attack, hud.Defense, hud.Plasma, hud.Wave, hud.Kills, hud.Parts, hud.Score, hud.BotScore)
	drawText(h.screen, 0, 0, line, style)
	if hud.BossHealth > 0 {
		drawText(h.screen, 0, 1, fmt.Sprintf(" BOSS %3.0f%% ", hud.BossHealth*100), style.Foreground(rgb(config.BossColor)))
	}
	if hud.Banner != "" {
		drawText(h.screen, (w-len(hud.Banner))/2, ht/4, hud.Banner, style.Bold(true))
	}
	if hud.Paused {
		drawText(h.screen, (w-6)/2, ht/2, "PAUSED", style.Reverse(true))
	}
	help := " wasd/arrows move  space dash  e wave  p pause  r reset  q quit "
	drawText(h.screen, 0, ht-1, help, style)
}

func actorGlyph(a app.ActorView, lib *defs.Library) (rune, color.RGBA) {
	switch a.Kind {
	case app.ActorPlayer:
		return '@', config.PlayerColor
	case app.ActorBot:
		return '&', config.BotColor
	case app.ActorBoss:
		return 'X', config.BossColor
	}
	d := lib.Enemy(a.Variant)
	r := 'e'
	if d.Name != "" {
		r = rune(d.Name[0])
	}
	return r, d.Visuals.Color()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
