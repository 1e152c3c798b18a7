// pkg/render/arena_renderer.go
package render

import (
	"edge-arena/internal/app"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"edge-arena/internal/utils"
	"edge-arena/pkg/render/fx"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const gridStep = 80.0

// ArenaRenderer рисует снимок мира: препятствия, предметы, волны, бойцов и эффекты.
type ArenaRenderer struct {
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	defs         *defs.Library

	Camera  *fx.Camera
	Effects *fx.Effects
}

func NewArenaRenderer(screenWidth, screenHeight int, lib *defs.Library, seed int64) *ArenaRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &ArenaRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 48),
		fillIs:       make([]uint16, 0, 48),
		strokeVs:     make([]ebiten.Vertex, 0, 96),
		strokeIs:     make([]uint16, 0, 96),
		fontFace:     basicfont.Face7x13,
		defs:         lib,
		Camera:       fx.NewCamera(utils.Vec2{}, float64(screenWidth), float64(screenHeight)),
		Effects:      fx.NewEffects(seed),
	}
}

// Update advances the camera and the effects by dt.
func (r *ArenaRenderer) Update(snap app.Snapshot, dt float64) {
	r.Camera.Follow(snap.Player().Pos, snap.WorldWidth, snap.WorldHeight, dt)
	r.Effects.Update(dt)
}

// Reset drops all running effects and centres the camera on the player.
func (r *ArenaRenderer) Reset(snap app.Snapshot) {
	r.Effects.Clear()
	r.Camera.Snap(snap.Player().Pos, snap.WorldWidth, snap.WorldHeight)
}

// Draw renders snap onto screen.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	shake := r.Effects.ShakeOffset()
	toScreen := func(p utils.Vec2) (float32, float32) {
		s := r.Camera.WorldToScreen(p).Add(shake)
		return float32(s.X), float32(s.Y)
	}

	r.drawGrid(screen, snap, toScreen)

	for _, o := range snap.Obstacles {
		x, y := toScreen(utils.Vec2{X: o.X, Y: o.Y})
		vector.DrawFilledRect(screen, x, y, float32(o.W), float32(o.H), config.ObstacleColor, true)
		vector.StrokeRect(screen, x, y, float32(o.W), float32(o.H), config.StrokeWidth, config.ObstacleStroke, true)
	}

	for _, p := range snap.Parts {
		x, y := toScreen(p.Pos)
		c := config.PartColors[p.Kind]
		pulse := 1 + 0.15*math.Sin(snap.Now*6+p.Pos.X*0.01)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius*pulse), c, true)
		if p.Kind == defs.PartScore {
			vector.StrokeCircle(screen, x, y, float32(p.Radius*pulse)+2, 1, config.TextLightColor, true)
		}
	}

	for _, p := range snap.Projectiles {
		x1, y1 := toScreen(p.From)
		x2, y2 := toScreen(p.To)
		vector.StrokeLine(screen, x1, y1, x2, y2, float32(p.Width), config.WaveColor, true)
	}

	for _, a := range snap.Actors {
		r.drawActor(screen, a, toScreen, snap.Now)
	}

	for _, p := range r.Effects.Particles {
		x, y := toScreen(p.Pos)
		vector.DrawFilledCircle(screen, x, y, 2.5, WithAlpha(p.Color, 1-p.Progress()), true)
	}
	for _, f := range r.Effects.Flashes {
		x, y := toScreen(f.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(f.Radius), WithAlpha(config.FlashColor, 0.7*(1-f.Progress())), true)
	}
	for _, t := range r.Effects.Texts {
		x, y := toScreen(t.Pos)
		y -= float32(fx.TextOffset(t))
		width := len(t.Text) * config.TextCharWidth
		text.Draw(screen, t.Text, r.fontFace, int(x)-width/2, int(y)+config.TextOffsetY, WithAlpha(t.Color, 1-t.Progress()))
	}
}

func (r *ArenaRenderer) drawGrid(screen *ebiten.Image, snap app.Snapshot, toScreen func(utils.Vec2) (float32, float32)) {
	for gx := 0.0; gx <= snap.WorldWidth; gx += gridStep {
		x1, y1 := toScreen(utils.Vec2{X: gx, Y: 0})
		x2, y2 := toScreen(utils.Vec2{X: gx, Y: snap.WorldHeight})
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, config.GridColor, false)
	}
	for gy := 0.0; gy <= snap.WorldHeight; gy += gridStep {
		x1, y1 := toScreen(utils.Vec2{X: 0, Y: gy})
		x2, y2 := toScreen(utils.Vec2{X: snap.WorldWidth, Y: gy})
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, config.GridColor, false)
	}
	x, y := toScreen(utils.Vec2{})
	vector.StrokeRect(screen, x, y, float32(snap.WorldWidth), float32(snap.WorldHeight), 3, config.BoundsColor, false)
}

func (r *ArenaRenderer) drawActor(screen *ebiten.Image, a app.ActorView, toScreen func(utils.Vec2) (float32, float32), now float64) {
	x, y := toScreen(a.Pos)
	body := ActorColor(a, r.defs)
	if a.Invulnerable && int(now*10)%2 == 0 {
		body = WithAlpha(body, 0.4)
	}
	if a.Dashing {
		body = LightenColor(body, 0.35)
	}

	sides := a.Edges
	if sides < 3 {
		sides = 3
	}
	path := polygonPath(float64(x), float64(y), a.Radius, a.Angle, sides)
	r.fillPath(screen, &path, body)
	r.strokePath(screen, &path, LightenColor(body, 0.5))

	// Плазменные клинки вращаются вокруг бойца
	for i := 0; i < a.Plasma; i++ {
		ang := now*3 + 2*math.Pi*float64(i)/float64(a.Plasma)
		bx := float64(x) + math.Cos(ang)*(a.Radius+8)
		by := float64(y) + math.Sin(ang)*(a.Radius+8)
		vector.DrawFilledCircle(screen, float32(bx), float32(by), 3, config.PlasmaColor, true)
	}

	r.drawHealthBar(screen, x, y-float32(a.Radius)-10, a.HealthRatio)
}

func (r *ArenaRenderer) drawHealthBar(screen *ebiten.Image, cx, y float32, ratio float64) {
	w := float32(config.HealthBarWidth)
	h := float32(config.HealthBarHeight)
	vector.DrawFilledRect(screen, cx-w/2, y, w, h, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, cx-w/2, y, w*float32(utils.Clamp(ratio, 0, 1)), h, config.HealthBarFill, false)
}

// polygonPath builds a regular polygon with the given number of sides.
func polygonPath(x, y, radius, angle float64, sides int) vector.Path {
	path := vector.Path{}
	for i := 0; i < sides; i++ {
		a := angle + 2*math.Pi*float64(i)/float64(sides)
		px := x + radius*math.Cos(a)
		py := y + radius*math.Sin(a)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *ArenaRenderer) fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *ArenaRenderer) strokePath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(config.StrokeWidth),
	})
	paintVertices(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
