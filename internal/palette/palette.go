package palette

import (
	"fmt"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/theme"
)

// Palette is the colour and opacity policy of one theme.
type Palette struct {
	Theme theme.Theme

	// Ray strokes sparkle rays, Link strokes connection lines.
	Ray       Paint
	Link      Paint
	LinkAlpha float64

	colors     []colorful.Color
	hueMin     float64
	hueMax     float64
	saturation float64
	lightness  float64
	opacityMin float64
	opacityMax float64
}

// New builds the palette of t from its configuration.
func New(t theme.Theme, cfg config.Palette) (Palette, error) {
	if err := cfg.Validate(); err != nil {
		return Palette{}, fmt.Errorf("%s palette: %w", t, err)
	}

	p := Palette{
		Theme:      t,
		LinkAlpha:  cfg.LinkAlpha,
		hueMin:     cfg.HueMin,
		hueMax:     cfg.HueMax,
		saturation: cfg.Saturation,
		lightness:  cfg.Lightness,
		opacityMin: cfg.OpacityMin,
		opacityMax: cfg.OpacityMax,
	}

	for _, s := range cfg.Colors {
		c, err := ParseColor(s)
		if err != nil {
			return Palette{}, fmt.Errorf("%s palette: %w", t, err)
		}
		p.colors = append(p.colors, c.Color)
	}

	var err error
	if p.Ray, err = ParseColor(cfg.RayColor); err != nil {
		return Palette{}, fmt.Errorf("%s palette ray: %w", t, err)
	}
	if p.Link, err = ParseColor(cfg.LinkColor); err != nil {
		return Palette{}, fmt.Errorf("%s palette link: %w", t, err)
	}
	return p, nil
}

// Color draws a particle colour: uniformly from the fixed set when there
// is one, otherwise from the hue band.
func (p Palette) Color(r *rand.Rand) colorful.Color {
	if len(p.colors) > 0 {
		return p.colors[r.IntN(len(p.colors))]
	}
	h := p.hueMin + r.Float64()*(p.hueMax-p.hueMin)
	return colorful.Hsl(h, p.saturation, p.lightness)
}

// Opacity draws a particle opacity from [min, max).
func (p Palette) Opacity(r *rand.Rand) float64 {
	return p.opacityMin + r.Float64()*(p.opacityMax-p.opacityMin)
}

// Owns reports whether c could have been drawn from this palette.
func (p Palette) Owns(c colorful.Color) bool {
	if len(p.colors) > 0 {
		for _, pc := range p.colors {
			if pc.AlmostEqualRgb(c) {
				return true
			}
		}
		return false
	}
	h, s, l := c.Hsl()
	const eps = 1e-6
	return h >= p.hueMin-eps && h <= p.hueMax+eps &&
		abs(s-p.saturation) < 1e-3 && abs(l-p.lightness) < 1e-3
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Set holds both theme palettes.
type Set struct {
	Dark  Palette
	Light Palette
}

// NewSet builds the dark and light palettes.
func NewSet(cfg config.Particles) (Set, error) {
	dark, err := New(theme.Dark, cfg.Dark)
	if err != nil {
		return Set{}, err
	}
	light, err := New(theme.Light, cfg.Light)
	if err != nil {
		return Set{}, err
	}
	return Set{Dark: dark, Light: light}, nil
}

// For returns the palette of t.
func (s Set) For(t theme.Theme) Palette {
	if t == theme.Light {
		return s.Light
	}
	return s.Dark
}
