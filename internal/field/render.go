package field

import (
	"math"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/palette"
	"github.com/iburimskiy/particle-field/internal/particles"
)

func (f *Field) render(c Canvas, w, h float64) {
	c.Clear()

	pal := f.palettes.For(f.observer.Theme())
	for i := range f.population {
		p := &f.population[i]
		p.Update(w, h)
		f.drawParticle(c, p, pal)
	}

	f.connect(c, pal)
}

func (f *Field) drawParticle(c Canvas, p *particles.Particle, pal palette.Palette) {
	c.FillCircle(p.X, p.Y, p.Radius, palette.Paint{Color: p.Color, Alpha: p.Opacity})

	if !p.Sparkling(f.cfg.SparklePeriod) {
		return
	}

	// Glow alpha may exceed 1; canvases clamp it.
	glow := palette.White.WithAlpha(p.Opacity * config.SparkleAlphaScale)
	c.FillCircle(p.X, p.Y, p.Radius*config.SparkleGlowScale, glow)

	ray := pal.Ray.WithAlpha(p.Opacity * config.RayAlphaScale)
	for i := 0; i < config.RayCount; i++ {
		angle := float64(i) * 2 * math.Pi / config.RayCount
		cos, sin := math.Cos(angle), math.Sin(angle)
		c.StrokeLine(
			p.X+cos*p.Radius*config.RayInner, p.Y+sin*p.Radius*config.RayInner,
			p.X+cos*p.Radius*config.RayOuter, p.Y+sin*p.Radius*config.RayOuter,
			config.RayWidth, ray,
		)
	}
}

// connect strokes a line between every pair closer than the connection
// distance. Exact pairwise distances, O(n^2) over a capped population.
func (f *Field) connect(c Canvas, pal palette.Palette) {
	ps := f.population
	for i := 0; i < len(ps); i++ {
		a := &ps[i]
		for j := i + 1; j < len(ps); j++ {
			b := &ps[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			alpha, ok := ConnectionAlpha(d, f.cfg.ConnectionDistance, pal.LinkAlpha)
			if !ok {
				continue
			}
			c.StrokeLine(a.X, a.Y, b.X, b.Y, config.ConnectionWidth, pal.Link.WithAlpha(alpha))
		}
	}
}

// ConnectionAlpha is the line alpha for two particles distance apart:
// (threshold - distance) / threshold * factor. ok is false at or beyond
// the threshold, where no line is drawn.
func ConnectionAlpha(distance, threshold, factor float64) (alpha float64, ok bool) {
	if distance >= threshold {
		return 0, false
	}
	return (threshold - distance) / threshold * factor, true
}
