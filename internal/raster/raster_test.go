package raster

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/palette"
	"github.com/iburimskiy/particle-field/internal/surface"
	"github.com/iburimskiy/particle-field/internal/theme"
)

func opaque(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillCircle(10, 10, 4, palette.White)

	if a := c.Image().RGBAAt(10, 10).A; a != 255 {
		t.Errorf("expected opaque centre, got alpha %d", a)
	}
	if a := c.Image().RGBAAt(1, 1).A; a != 0 {
		t.Errorf("expected untouched corner, got alpha %d", a)
	}

	c.Clear()
	if n := opaque(c.Image()); n != 0 {
		t.Errorf("expected clear canvas, %d pixels still set", n)
	}
}

func TestFillCircleHonoursAlpha(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillCircle(10, 10, 4, palette.White.WithAlpha(0.5))
	a := c.Image().RGBAAt(10, 10).A
	if a < 120 || a > 135 {
		t.Errorf("expected roughly half alpha, got %d", a)
	}
}

func TestStrokeLine(t *testing.T) {
	c := NewCanvas(40, 10)
	c.StrokeLine(2, 5, 38, 5, 2, palette.White)
	if a := c.Image().RGBAAt(20, 5).A; a == 0 {
		t.Error("expected the line to cover its midpoint")
	}
	if a := c.Image().RGBAAt(20, 0).A; a != 0 {
		t.Errorf("expected nothing far from the line, got alpha %d", a)
	}

	// Degenerate segments draw nothing.
	c.Clear()
	c.StrokeLine(5, 5, 5, 5, 1, palette.White)
	if n := opaque(c.Image()); n != 0 {
		t.Errorf("zero-length line drew %d pixels", n)
	}
}

func TestShapesStayInsideTheirBounds(t *testing.T) {
	c := NewCanvas(1024, 640)
	c.FillCircle(700.5, 400.5, 3, palette.White)

	if a := c.Image().RGBAAt(700, 400).A; a != 255 {
		t.Errorf("expected opaque centre, got alpha %d", a)
	}
	want := image.Rect(696, 396, 705, 405)
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.Image().RGBAAt(x, y).A > 0 && !image.Pt(x, y).In(want) {
				t.Fatalf("pixel (%d,%d) set outside the circle", x, y)
			}
		}
	}

	c.Clear()
	c.StrokeLine(100, 50, 140, 90, 1, palette.White)
	if a := c.Image().RGBAAt(120, 70).A; a == 0 {
		t.Error("expected the diagonal to cover its midpoint")
	}
	if a := c.Image().RGBAAt(140, 50).A; a != 0 {
		t.Errorf("expected nothing off the diagonal, got alpha %d", a)
	}
}

func TestShapesClipAtEdges(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillCircle(0, 0, 4, palette.White)
	if a := c.Image().RGBAAt(0, 0).A; a != 255 {
		t.Errorf("expected the visible quarter at the corner, got alpha %d", a)
	}
	c.FillCircle(19.5, 10, 3, palette.White)
	if a := c.Image().RGBAAt(19, 10).A; a == 0 {
		t.Error("expected the circle on the right edge to show")
	}
	c.StrokeLine(-10, 15, 30, 15, 2, palette.White)
	if a := c.Image().RGBAAt(10, 15).A; a == 0 {
		t.Error("expected a line crossing the canvas to cover its middle")
	}

	c.Clear()
	c.FillCircle(-50, -50, 4, palette.White)
	c.StrokeLine(30, 30, 40, 40, 1, palette.White)
	if n := opaque(c.Image()); n != 0 {
		t.Errorf("off-canvas shapes drew %d pixels", n)
	}
}

func TestFullSizeFrameIsCheap(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	f, err := field.New(config.DefaultParticles(), field.WithRand(rand.New(rand.NewPCG(3, 3))))
	if err != nil {
		t.Fatal(err)
	}
	var tgt Target
	var q frame.Queue
	if err := f.Attach(surface.NewWindow(1024, 640), theme.NewSignal(theme.Dark), &tgt, &q); err != nil {
		t.Fatal(err)
	}
	defer f.Detach()

	start := time.Now()
	for i := 0; i < 60; i++ {
		q.Pump()
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("60 frames at 1024x640 took %v", elapsed)
	}
}

func BenchmarkFillCircle(b *testing.B) {
	c := NewCanvas(1024, 640)
	p := palette.White.WithAlpha(0.6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.FillCircle(float64(i%1024), float64(i%640), 2.5, p)
	}
}

func BenchmarkStrokeLine(b *testing.B) {
	c := NewCanvas(1024, 640)
	p := palette.White.WithAlpha(0.15)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := float64(i % 1000)
		c.StrokeLine(x, 100, x+60, 180, 0.5, p)
	}
}

func TestTargetReallocatesOnResize(t *testing.T) {
	var tgt Target
	if tgt.Image() != nil {
		t.Fatal("expected no image before the first acquire")
	}
	if _, err := tgt.Acquire(0, 10); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}

	a, err := tgt.Acquire(30, 20)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := tgt.Acquire(30, 20)
	if a != b {
		t.Error("same size should reuse the canvas")
	}
	tgt.Acquire(60, 20)
	if got := tgt.Image().Bounds().Dx(); got != 60 {
		t.Errorf("expected width 60 after resize, got %d", got)
	}
}

func TestCompose(t *testing.T) {
	layer := image.NewRGBA(image.Rect(0, 0, 4, 3))
	layer.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	out := Compose(layer, color.RGBA{A: 255}, color.RGBA{R: 200, A: 255})
	if got := out.RGBAAt(0, 0); got.R != 0 || got.A != 255 {
		t.Errorf("top row should be the top colour, got %v", got)
	}
	if got := out.RGBAAt(0, 2); got.R != 200 {
		t.Errorf("bottom row should be the bottom colour, got %v", got)
	}
	if got := out.RGBAAt(1, 1); got.R != 255 || got.G != 255 {
		t.Errorf("layer pixel should be on top, got %v", got)
	}
}

func TestFieldRendersIntoRaster(t *testing.T) {
	f, err := field.New(config.DefaultParticles(), field.WithRand(rand.New(rand.NewPCG(9, 9))))
	if err != nil {
		t.Fatal(err)
	}
	var tgt Target
	var q frame.Queue
	win := surface.NewWindow(400, 300)
	if err := f.Attach(win, theme.NewSignal(theme.Dark), &tgt, &q); err != nil {
		t.Fatal(err)
	}
	defer f.Detach()

	for i := 0; i < 3; i++ {
		q.Pump()
	}
	if tgt.Image() == nil || opaque(tgt.Image()) == 0 {
		t.Error("expected particles in the rendered image")
	}
}
