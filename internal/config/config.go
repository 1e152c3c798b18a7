// internal/config/config.go
package config

import (
	"edge-arena/internal/defs"
	"image/color"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.05

	HUDPanelX      = 16
	HUDPanelY      = 16
	HUDLineHeight  = 18
	HUDPanelWidth  = 220
	TextCharWidth  = 7
	TextOffsetY    = 4
	BannerFontSize = 13

	PauseButtonX    = ScreenWidth - 40
	PauseButtonY    = 36
	PauseButtonSize = 14.0

	HealthBarWidth  = 40.0
	HealthBarHeight = 5.0
	StrokeWidth     = 2.0

	// Визуальные эффекты (время жизни в секундах)
	FloatingTextDuration = 0.9
	FloatingTextRise     = 40.0
	BurstDuration        = 0.45
	BurstParticles       = 10
	FlashDuration        = 0.12
	ShakeDecay           = 9.0

	// Терминальный хост
	TUITickRate = 60
)

var (
	BackgroundColor = color.RGBA{18, 18, 28, 255}
	GridColor       = color.RGBA{34, 34, 50, 255}
	BoundsColor     = color.RGBA{90, 90, 120, 255}
	ObstacleColor   = color.RGBA{70, 74, 96, 255}
	ObstacleStroke  = color.RGBA{120, 126, 160, 255}
	PlayerColor     = color.RGBA{80, 200, 255, 255}
	BotColor        = color.RGBA{120, 240, 140, 255}
	BossColor       = color.RGBA{255, 60, 90, 255}
	PlasmaColor     = color.RGBA{200, 120, 255, 255}
	WaveColor       = color.RGBA{120, 220, 255, 200}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	HealthBarBack   = color.RGBA{40, 20, 20, 220}
	HealthBarFill   = color.RGBA{80, 220, 90, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDamageColor = color.RGBA{255, 210, 90, 255}
	TextScoreColor  = color.RGBA{120, 255, 160, 255}
	PanelColor      = color.RGBA{10, 10, 20, 180}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	PauseColor      = color.RGBA{70, 130, 180, 220}
	PlayColor       = color.RGBA{220, 60, 60, 220}

	PartColors = map[defs.PartKind]color.RGBA{
		defs.PartEdge:  {240, 240, 240, 255},
		defs.PartRegen: {90, 230, 120, 255},
		defs.PartWave:  {110, 190, 255, 255},
		defs.PartScore: {255, 215, 0, 255}, // золотой
	}
)
