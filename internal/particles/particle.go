// Package particles holds the particle population: sizing, seeding,
// theme re-seeding and the per-frame motion step.
package particles

import (
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/palette"
	"github.com/iburimskiy/particle-field/internal/theme"
)

// Particle is a single decorative point. Velocity and radius are fixed
// at creation; only position and phase change per frame.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Color   colorful.Color
	Theme   theme.Theme
	Phase   int
}

// Count is the population size for a surface of the given area in square
// pixels: min(cap, floor(area / divisor)).
func Count(area float64, cfg config.Particles) int {
	if area <= 0 || cfg.DensityDivisor <= 0 {
		return 0
	}
	n := int(math.Floor(area / cfg.DensityDivisor))
	return min(n, cfg.PopulationCap)
}

// Seed draws n fresh particles spread over the surface.
func Seed(r *rand.Rand, n, width, height int, pal palette.Palette, cfg config.Particles) []Particle {
	out := make([]Particle, n)
	for i := range out {
		out[i] = spawn(r, width, height, cfg)
		paint(r, &out[i], pal, cfg)
	}
	return out
}

// Reseed rebuilds the population for a new palette. Particles that
// already exist keep position, velocity and radius so the field does not
// jump; colour, opacity and phase are drawn again. Missing particles are
// spawned fresh and any surplus is dropped.
func Reseed(r *rand.Rand, prev []Particle, n, width, height int, pal palette.Palette, cfg config.Particles) []Particle {
	out := make([]Particle, n)
	kept := copy(out, prev)
	for i := range out {
		if i >= kept {
			out[i] = spawn(r, width, height, cfg)
		}
		paint(r, &out[i], pal, cfg)
	}
	return out
}

func spawn(r *rand.Rand, width, height int, cfg config.Particles) Particle {
	return Particle{
		X:      r.Float64() * float64(width),
		Y:      r.Float64() * float64(height),
		VX:     symmetric(r, cfg.Velocity),
		VY:     symmetric(r, cfg.Velocity),
		Radius: cfg.RadiusMin + r.Float64()*(cfg.RadiusMax-cfg.RadiusMin),
	}
}

func paint(r *rand.Rand, p *Particle, pal palette.Palette, cfg config.Particles) {
	p.Color = pal.Color(r)
	p.Opacity = pal.Opacity(r)
	p.Theme = pal.Theme
	p.Phase = r.IntN(cfg.InitialPhaseMax)
}

func symmetric(r *rand.Rand, v float64) float64 {
	return r.Float64()*2*v - v
}

// Update moves the particle one frame and wraps each axis independently
// back into [0, width) x [0, height). Leaving past the far edge re-enters
// at 0; leaving below 0 re-enters at the far edge.
func (p *Particle) Update(width, height float64) {
	p.X = wrap(p.X+p.VX, width)
	p.Y = wrap(p.Y+p.VY, height)
	p.Phase++
}

func wrap(v, limit float64) float64 {
	switch {
	case v >= limit:
		return 0
	case v < 0:
		return math.Nextafter(limit, 0)
	}
	return v
}

// Sparkling reports whether this frame draws the sparkle glow and rays.
func (p *Particle) Sparkling(period int) bool {
	return period > 0 && p.Phase%period == 0
}
