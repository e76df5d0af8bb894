// Package palette turns the colour settings of a theme into paints the
// renderer can hand to a canvas.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Paint is a colour with an alpha multiplier. Alpha is not clamped here;
// canvases clamp it when they rasterize, like a 2D context's globalAlpha.
type Paint struct {
	Color colorful.Color
	Alpha float64
}

// White is the opaque white used for sparkle glows.
var White = Paint{Color: colorful.Color{R: 1, G: 1, B: 1}, Alpha: 1}

// WithAlpha multiplies the paint's own alpha by a.
func (p Paint) WithAlpha(a float64) Paint {
	p.Alpha *= a
	return p
}

// NRGBA converts the paint into a non-premultiplied colour.
func (p Paint) NRGBA() color.NRGBA {
	r, g, b := p.Color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(p.Alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseColor understands #rgb, #rrggbb, hsl(h, s%, l%), rgb(r, g, b) and
// rgba(r, g, b, a).
func ParseColor(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return Paint{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		return Paint{Color: c, Alpha: 1}, nil
	case strings.HasPrefix(s, "hsl("):
		v, err := args(s, "hsl(", 3)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Color: colorful.Hsl(v[0], v[1]/100, v[2]/100), Alpha: 1}, nil
	case strings.HasPrefix(s, "rgba("):
		v, err := args(s, "rgba(", 4)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Color: colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}, Alpha: v[3]}, nil
	case strings.HasPrefix(s, "rgb("):
		v, err := args(s, "rgb(", 3)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Color: colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}, Alpha: 1}, nil
	}
	return Paint{}, fmt.Errorf("parse colour %q: unsupported format", s)
}

func args(s, prefix string, n int) ([]float64, error) {
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("parse colour %q: missing closing parenthesis", s)
	}
	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, prefix), ")"), ",")
	if len(parts) != n {
		return nil, fmt.Errorf("parse colour %q: expected %d components, got %d", s, n, len(parts))
	}
	out := make([]float64, n)
	for i, part := range parts {
		part = strings.TrimSuffix(strings.TrimSpace(part), "%")
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse colour %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
