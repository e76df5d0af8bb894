package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/cursor"
	"github.com/iburimskiy/particle-field/internal/palette"
	"github.com/iburimskiy/particle-field/internal/theme"
)

const backgroundBands = 64

func (g *Game) drawBackground(screen *ebiten.Image, t theme.Theme) {
	top, bottom := palette.Background(t)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	band := float64(h) / backgroundBands
	for i := 0; i < backgroundBands; i++ {
		ratio := float64(i) / (backgroundBands - 1)
		c := color.RGBA{
			R: lerp(top.R, bottom.R, ratio),
			G: lerp(top.G, bottom.G, ratio),
			B: lerp(top.B, bottom.B, ratio),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, f32(float64(i)*band), float32(w), f32(band+1), c, false)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image, t theme.Theme) {
	x, y := f32(g.cursor.X), f32(g.cursor.Y)
	s := g.scale
	r := g.cursor.Size() / 2 * s

	vector.StrokeCircle(screen, x, y, f32(r+cursor.GlowWidth/4*s), f32(cursor.GlowWidth/2*s), cursor.Glow(t).NRGBA(), true)
	vector.StrokeCircle(screen, x, y, f32(r), f32(cursor.StrokeWidth*s), cursor.Stroke(t).NRGBA(), true)
}
