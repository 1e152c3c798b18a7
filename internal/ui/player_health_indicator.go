// internal/ui/player_health_indicator.go
package ui

import (
	"edge-arena/internal/config"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 180
	healthBarHeight = 14
)

var (
	healthHigh = color.RGBA{70, 140, 255, 255}
	healthLow  = color.RGBA{230, 60, 60, 255}
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: face}
}

// Draw рисует полосу здоровья: синяя выше половины, красная ниже.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = float64(health) / float64(maxHealth)
	}
	fill := healthHigh
	if ratio <= 0.5 {
		fill = healthLow
	}

	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.HealthBarBack, true)
	if ratio > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, float32(healthBarWidth*ratio), healthBarHeight, fill, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, borderColor, true)

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	textWidth := len(healthText) * config.TextCharWidth
	text.Draw(screen, healthText, i.fontFace, int(i.X)+(healthBarWidth-textWidth)/2, int(i.Y)+healthBarHeight-3, config.TextLightColor)
}

// Height возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) Height() float32 {
	return healthBarHeight
}
