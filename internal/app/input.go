// internal/app/input.go
package app

import "edge-arena/internal/utils"

// Input is the reduced player input for one frame.
// Move is a direction intent with length at most 1; the flags are edge triggers.
type Input struct {
	Move  utils.Vec2
	Dash  bool
	Wave  bool
	Pause bool
}

// HUD is the flat projection of the player state shown by the interface.
type HUD struct {
	Edges     int
	Attack    int
	Defense   int
	Plasma    int
	Wave      int
	Health    int
	MaxHealth int
	Kills     int
	Parts     int
	Score     int
	BotScore  int
	Banner    string

	// Прогресс до следующего уровня: накоплено / нужно
	EdgeParts, PartsPerEdge     int
	PlasmaParts, PartsPerPlasma int
	WaveParts, PartsPerWave     int
	PlasmaMax, WaveMax          int

	DashReady  bool
	WaveReady  bool
	BossHealth float64 // доля здоровья босса, 0 если босса нет
	Paused     bool
}
