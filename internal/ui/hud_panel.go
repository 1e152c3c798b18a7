// internal/ui/hud_panel.go
package ui

import (
	"edge-arena/internal/app"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUDPanel draws the player's stats in the top-left corner and the banner in the middle.
type HUDPanel struct {
	fontFace font.Face
	health   *PlayerHealthIndicator
	edges    *LevelIndicator
	plasma   *LevelIndicator
	wave     *LevelIndicator
}

func NewHUDPanel(face font.Face) *HUDPanel {
	x := float32(config.HUDPanelX + 8)
	y := float32(config.HUDPanelY + 8)
	return &HUDPanel{
		fontFace: face,
		health:   NewPlayerHealthIndicator(x, y, face),
		edges:    NewLevelIndicator(x, y+24+config.HUDLineHeight, config.PartColors[defs.PartEdge]),
		plasma:   NewLevelIndicator(x, y+48+config.HUDLineHeight*2+LevelIndicatorHeight, config.PlasmaColor),
		wave:     NewLevelIndicator(x, y+72+config.HUDLineHeight*3+LevelIndicatorHeight*2, config.WaveColor),
	}
}

func (p *HUDPanel) Draw(screen *ebiten.Image, hud app.HUD) {
	panelHeight := float32(config.HUDLineHeight*8 + LevelIndicatorHeight*3 + 100)
	vector.DrawFilledRect(screen, config.HUDPanelX, config.HUDPanelY, config.HUDPanelWidth, panelHeight, config.PanelColor, true)

	p.health.Draw(screen, hud.Health, hud.MaxHealth)

	x := config.HUDPanelX + 8
	line := func(y float32, s string) {
		text.Draw(screen, s, p.fontFace, x, int(y), config.TextLightColor)
	}

	line(p.edges.Y-4, fmt.Sprintf("Edges %d  ATK %d  DEF %d", hud.Edges, hud.Attack, hud.Defense))
	p.edges.Draw(screen, 0, 0, hud.EdgeParts, hud.PartsPerEdge)
	line(p.plasma.Y-4, fmt.Sprintf("Plasma %d", hud.Plasma))
	p.plasma.Draw(screen, hud.Plasma, hud.PlasmaMax, hud.PlasmaParts, hud.PartsPerPlasma)
	line(p.wave.Y-4, fmt.Sprintf("Wave %d", hud.Wave))
	p.wave.Draw(screen, hud.Wave, hud.WaveMax, hud.WaveParts, hud.PartsPerWave)

	y := p.wave.Y + LevelIndicatorHeight + config.HUDLineHeight + 4
	line(y, fmt.Sprintf("Kills %d   Parts %d", hud.Kills, hud.Parts))
	line(y+config.HUDLineHeight, fmt.Sprintf("Score %d   Bot %d", hud.Score, hud.BotScore))
	status := "dash ready"
	if !hud.DashReady {
		status = "dash ..."
	}
	if hud.WaveReady {
		status += "  wave ready"
	}
	line(y+config.HUDLineHeight*2, status)

	if hud.BossHealth > 0 {
		p.drawBossBar(screen, hud.BossHealth)
	}
	if hud.Banner != "" {
		p.drawBanner(screen, hud.Banner)
	}
}

func (p *HUDPanel) drawBossBar(screen *ebiten.Image, ratio float64) {
	const w, h = 400, 10
	x := float32(config.ScreenWidth-w) / 2
	y := float32(config.ScreenHeight - 40)
	vector.DrawFilledRect(screen, x, y, w, h, config.HealthBarBack, true)
	vector.DrawFilledRect(screen, x, y, float32(w*ratio), h, config.BossColor, true)
	vector.StrokeRect(screen, x, y, w, h, borderWidth, borderColor, true)
	text.Draw(screen, "BOSS", p.fontFace, int(x), int(y)-4, config.TextLightColor)
}

func (p *HUDPanel) drawBanner(screen *ebiten.Image, banner string) {
	width := len(banner) * config.TextCharWidth
	x := (config.ScreenWidth - width) / 2
	y := config.ScreenHeight / 4
	vector.DrawFilledRect(screen, float32(x-16), float32(y-config.BannerFontSize-6), float32(width+32), float32(config.BannerFontSize+16), config.PanelColor, true)
	text.Draw(screen, banner, p.fontFace, x, y, config.TextLightColor)
}
