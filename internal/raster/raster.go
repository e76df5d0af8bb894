// Package raster draws the particle field into an in-memory RGBA image,
// for snapshots and headless runs.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/palette"
)

const circleSegments = 24

// ErrEmpty is returned when a zero-sized canvas is requested.
var ErrEmpty = errors.New("raster: empty canvas")

// Canvas is a field.Canvas backed by an *image.RGBA.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{z: vector.NewRasterizer(width, height)}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.z.DrawOp = draw.Over
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) FillCircle(x, y, radius float64, p palette.Paint) {
	if radius <= 0 {
		return
	}
	bbox, ok := c.begin(x-radius, y-radius, x+radius, y+radius)
	if !ok {
		return
	}
	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
	for i := 0; i < circleSegments; i++ {
		a := float64(i) * 2 * math.Pi / circleSegments
		px, py := float32(x-ox+math.Cos(a)*radius), float32(y-oy+math.Sin(a)*radius)
		if i == 0 {
			c.z.MoveTo(px, py)
		} else {
			c.z.LineTo(px, py)
		}
	}
	c.z.ClosePath()
	c.fill(bbox, p)
}

// StrokeLine fills the quad around the segment. Sub-pixel widths come out
// as partial coverage, which reads as a faint line.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, p palette.Paint) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	bbox, ok := c.begin(
		math.Min(x0, x1)-math.Abs(nx), math.Min(y0, y1)-math.Abs(ny),
		math.Max(x0, x1)+math.Abs(nx), math.Max(y0, y1)+math.Abs(ny),
	)
	if !ok {
		return
	}
	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
	c.z.MoveTo(float32(x0+nx-ox), float32(y0+ny-oy))
	c.z.LineTo(float32(x1+nx-ox), float32(y1+ny-oy))
	c.z.LineTo(float32(x1-nx-ox), float32(y1-ny-oy))
	c.z.LineTo(float32(x0-nx-ox), float32(y0-ny-oy))
	c.z.ClosePath()
	c.fill(bbox, p)
}

// begin sizes the rasterizer to the pixels a shape spanning (minX, minY)
// to (maxX, maxY) can touch, clipped to the image. Paths are then built
// relative to bbox.Min.
func (c *Canvas) begin(minX, minY, maxX, maxY float64) (image.Rectangle, bool) {
	bbox := shapeBounds(minX, minY, maxX, maxY).Intersect(c.img.Bounds())
	if bbox.Empty() {
		return bbox, false
	}
	c.z.Reset(bbox.Dx(), bbox.Dy())
	c.z.DrawOp = draw.Over
	return bbox, true
}

func (c *Canvas) fill(bbox image.Rectangle, p palette.Paint) {
	src := image.NewUniform(p.NRGBA())
	c.z.Draw(c.img, bbox, src, image.Point{})
}

// shapeBounds rounds a float extent outwards with a one pixel margin for
// antialiased edges.
func shapeBounds(minX, minY, maxX, maxY float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	)
}

// Target keeps one canvas and reallocates it when the requested size changes.
type Target struct {
	canvas *Canvas
}

func (t *Target) Acquire(width, height int) (field.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmpty
	}
	if t.canvas == nil || t.canvas.img.Bounds().Dx() != width || t.canvas.img.Bounds().Dy() != height {
		t.canvas = NewCanvas(width, height)
	}
	return t.canvas, nil
}

// Image returns the last frame, nil before the first one.
func (t *Target) Image() *image.RGBA {
	if t.canvas == nil {
		return nil
	}
	return t.canvas.img
}

// Compose draws layer over a vertical gradient from top to bottom.
func Compose(layer *image.RGBA, top, bottom color.Color) *image.RGBA {
	b := layer.Bounds()
	out := image.NewRGBA(b)
	tr, tg, tb, _ := top.RGBA()
	br, bg, bb, _ := bottom.RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := 0.0
		if b.Dy() > 1 {
			t = float64(y-b.Min.Y) / float64(b.Dy()-1)
		}
		row := color.RGBA{
			R: lerp8(tr, br, t),
			G: lerp8(tg, bg, t),
			B: lerp8(tb, bb, t),
			A: 255,
		}
		draw.Draw(out, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(row), image.Point{}, draw.Src)
	}
	draw.Draw(out, b, layer, b.Min, draw.Over)
	return out
}

func lerp8(a, b uint32, t float64) uint8 {
	return uint8((float64(a>>8)*(1-t) + float64(b>>8)*t) + 0.5)
}
