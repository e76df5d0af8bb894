package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/palette"
)

// layer is the offscreen image the field draws into. It can only be
// acquired while the game is drawing.
type layer struct {
	img     *ebiten.Image
	drawing bool
}

func (l *layer) begin() { l.drawing = true }
func (l *layer) end()   { l.drawing = false }

func (l *layer) Acquire(width, height int) (field.Canvas, error) {
	if !l.drawing {
		return nil, field.ErrSurfaceUnavailable
	}
	if l.img == nil || l.img.Bounds().Dx() != width || l.img.Bounds().Dy() != height {
		l.release()
		l.img = ebiten.NewImage(width, height)
	}
	return canvas{dst: l.img}, nil
}

func (l *layer) release() {
	if l.img != nil {
		l.img.Deallocate()
		l.img = nil
	}
}

// canvas adapts an ebiten image to field.Canvas.
type canvas struct {
	dst *ebiten.Image
}

func (c canvas) Clear() { c.dst.Clear() }

func (c canvas) FillCircle(x, y, radius float64, p palette.Paint) {
	vector.DrawFilledCircle(c.dst, f32(x), f32(y), f32(radius), p.NRGBA(), true)
}

func (c canvas) StrokeLine(x0, y0, x1, y1, width float64, p palette.Paint) {
	vector.StrokeLine(c.dst, f32(x0), f32(y0), f32(x1), f32(y1), f32(width), p.NRGBA(), true)
}
