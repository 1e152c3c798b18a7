// cmd/game/main.go
package main

import (
	"edge-arena/internal/app"
	"edge-arena/internal/audio"
	"edge-arena/internal/config"
	"edge-arena/internal/state"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("config", "", "path to a tuning YAML file")
	defsPath := flag.String("defs", "", "path to an enemy/loot definitions YAML file")
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	noBot := flag.Bool("no-bot", false, "play without the rival bot")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	opts, err := app.LoadOptions(*tuningPath, *defsPath, *seed)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	opts.NoBot = *noBot
	game := app.NewGame(opts)

	if !*mute {
		player, err := audio.NewSpeakerPlayer()
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer player.Close()
			audio.NewCues(player, audio.SampleRate).Attach(game.EventDispatcher)
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, game))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Edge Arena")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
