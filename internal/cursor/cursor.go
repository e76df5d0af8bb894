// Package cursor is the ring that trails the pointer in place of the
// system cursor.
package cursor

import (
	"math"

	"github.com/iburimskiy/particle-field/internal/palette"
	"github.com/iburimskiy/particle-field/internal/theme"
)

const (
	IdleSize    = 28
	PressedSize = 36
	StrokeWidth = 2.5
	GlowWidth   = 12

	// Duration is how long the ring takes to settle on the pointer.
	Duration = 0.15
)

var (
	darkStroke  = mustPaint("#ffffff")
	lightStroke = mustPaint("#181b23")
	glow        = mustPaint("#2979ff")
)

func mustPaint(s string) palette.Paint {
	p, err := palette.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Follower eases toward the last pointer position.
type Follower struct {
	X, Y    float64
	Pressed bool

	targetX, targetY float64
	placed           bool
}

// MoveTo sets the pointer position. The first call snaps the ring.
func (f *Follower) MoveTo(x, y float64) {
	f.targetX, f.targetY = x, y
	if !f.placed {
		f.X, f.Y = x, y
		f.placed = true
	}
}

// Step advances the tween by dt seconds. The remaining distance decays
// exponentially so that about 1% is left after Duration.
func (f *Follower) Step(dt float64) {
	if dt <= 0 {
		return
	}
	k := 1 - math.Exp(-dt*math.Log(100)/Duration)
	f.X += (f.targetX - f.X) * k
	f.Y += (f.targetY - f.Y) * k
}

// Size is the ring diameter.
func (f *Follower) Size() float64 {
	if f.Pressed {
		return PressedSize
	}
	return IdleSize
}

// Stroke is the ring colour for t.
func Stroke(t theme.Theme) palette.Paint {
	if t == theme.Light {
		return lightStroke
	}
	return darkStroke
}

// Glow is the soft halo around the ring for t.
func Glow(t theme.Theme) palette.Paint {
	if t == theme.Light {
		return glow.WithAlpha(0.10)
	}
	return glow.WithAlpha(0.15)
}
