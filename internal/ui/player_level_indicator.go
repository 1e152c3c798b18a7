// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelIndicator отображает прогресс до следующего уровня и сами уровни (плазма, волна).
type LevelIndicator struct {
	X, Y float32
	Fill color.RGBA
}

const (
	progressBarWidth  = 118
	progressBarHeight = 8
	levelRectWidth    = 16
	levelRectHeight   = 10
	levelRectGap      = 9
	borderWidth       = 1

	// LevelIndicatorHeight is the vertical space one indicator takes.
	LevelIndicatorHeight = progressBarHeight + 6 + levelRectHeight
)

var borderColor = color.White

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(x, y float32, fill color.RGBA) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y, Fill: fill}
}

// Draw отрисовывает полосу прогресса (parts из perLevel) и maxLevel прямоугольников уровня.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level, maxLevel, parts, perLevel int) {
	// 1. Обводка полосы прогресса
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillRatio := 0.0
	if perLevel > 0 {
		fillRatio = float64(parts) / float64(perLevel)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(progressBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, progressBarHeight-borderWidth*2, i.Fill, true)
	}

	// 3. Прямоугольники уровня
	rectY := i.Y + progressBarHeight + 6
	for j := 0; j < maxLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, i.Fill, true)
		}
	}
}
