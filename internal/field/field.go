// Package field renders the ambient particle field: a theme-reactive
// population of drifting particles with periodic sparkles and faint lines
// between close neighbours, redrawn on every display refresh.
package field

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/palette"
	"github.com/iburimskiy/particle-field/internal/particles"
	"github.com/iburimskiy/particle-field/internal/surface"
	"github.com/iburimskiy/particle-field/internal/theme"
)

var (
	// ErrSurfaceUnavailable means the frame could not get a canvas. The
	// frame is skipped and the next one tries again.
	ErrSurfaceUnavailable = errors.New("field: drawing surface unavailable")

	ErrAttached = errors.New("field: already attached")
)

// Canvas is the 2D drawing API the field renders with.
type Canvas interface {
	Clear()
	FillCircle(x, y, radius float64, p palette.Paint)
	StrokeLine(x0, y0, x1, y1, width float64, p palette.Paint)
}

// Target hands out a canvas of the requested size for one frame.
type Target interface {
	Acquire(width, height int) (Canvas, error)
}

// Option configures a Field.
type Option func(*Field)

// WithRand sets the random source used for seeding.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) { f.rng = r }
}

// WithLogger sets the logger for surface outages.
func WithLogger(l *log.Logger) Option {
	return func(f *Field) { f.logger = l }
}

// Field owns the population, the surface size, the observed theme and the
// frame task. All of its methods run on the host's frame loop.
type Field struct {
	cfg      config.Particles
	palettes palette.Set
	rng      *rand.Rand
	logger   *log.Logger

	surface  surface.Manager
	observer *theme.Observer
	target   Target
	handle   *frame.Handle

	population []particles.Particle
	seeded     bool
	attached   bool
	outage     bool
	frames     uint64
}

// New validates cfg and builds a detached field.
func New(cfg config.Particles, opts ...Option) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("field: invalid configuration: %w", err)
	}
	set, err := palette.NewSet(cfg)
	if err != nil {
		return nil, fmt.Errorf("field: invalid configuration: %w", err)
	}

	f := &Field{cfg: cfg, palettes: set}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if f.logger == nil {
		f.logger = log.New(io.Discard, "", 0)
	}
	return f, nil
}

// Attach sizes the surface, reads the theme, seeds the population and
// starts the frame task. Missing host ports fail here, once.
func (f *Field) Attach(vp surface.Viewport, src theme.Source, target Target, req frame.Requester) error {
	if f.attached {
		return ErrAttached
	}
	if target == nil {
		return errors.New("field: no drawing target")
	}
	if req == nil {
		return errors.New("field: no frame requester")
	}

	if err := f.surface.Attach(vp); err != nil {
		return fmt.Errorf("field: attach surface: %w", err)
	}
	f.observer = theme.NewObserver(f.retheme)
	if err := f.observer.Attach(src); err != nil {
		f.surface.Detach()
		return fmt.Errorf("field: attach theme: %w", err)
	}

	f.target = target
	f.population = nil
	f.seeded = false
	f.seed()

	f.attached = true
	f.handle = frame.Start(req, f.Step)
	return nil
}

// seed draws a fresh population, or keeps motion of the existing one.
// With no usable surface it waits for the first valid frame.
func (f *Field) seed() {
	if !f.surface.Valid() {
		f.seeded = false
		return
	}
	w, h := f.surface.Size()
	n := particles.Count(f.surface.Area(), f.cfg)
	pal := f.palettes.For(f.observer.Theme())
	if f.population == nil {
		f.population = particles.Seed(f.rng, n, w, h, pal, f.cfg)
	} else {
		f.population = particles.Reseed(f.rng, f.population, n, w, h, pal, f.cfg)
	}
	f.seeded = true
}

func (f *Field) retheme(t theme.Theme) {
	if !f.attached {
		return
	}
	f.logger.Printf("particle field: theme changed to %s, reseeding %d particles", t, len(f.population))
	f.seed()
}

// Step runs one frame: update and draw every particle, then the
// connection pass. A frame without a usable surface is skipped.
func (f *Field) Step() {
	if !f.attached {
		return
	}

	w, h := f.surface.Size()
	if w <= 0 || h <= 0 {
		f.skip(fmt.Errorf("%w: surface is %dx%d", ErrSurfaceUnavailable, w, h))
		return
	}
	c, err := f.target.Acquire(w, h)
	if err != nil || c == nil {
		if err == nil {
			err = ErrSurfaceUnavailable
		}
		f.skip(err)
		return
	}
	if f.outage {
		f.logger.Printf("particle field: drawing surface available again (%dx%d)", w, h)
		f.outage = false
	}
	if !f.seeded {
		f.seed()
	}

	f.render(c, float64(w), float64(h))
	f.frames++
}

func (f *Field) skip(err error) {
	if f.outage {
		return
	}
	f.outage = true
	f.logger.Printf("particle field: skipping frames: %v", err)
}

// Detach stops the frame task and releases both subscriptions. A frame
// callback already queued becomes a no-op. Safe to call more than once.
func (f *Field) Detach() {
	if !f.attached {
		return
	}
	f.attached = false
	f.handle.Stop()
	f.observer.Detach()
	f.surface.Detach()
	f.population = nil
	f.seeded = false
	f.target = nil
}

// Particles returns a copy of the current population.
func (f *Field) Particles() []particles.Particle {
	return append([]particles.Particle(nil), f.population...)
}

// Theme is the theme the population is coloured for.
func (f *Field) Theme() theme.Theme {
	if f.observer == nil {
		return theme.Dark
	}
	return f.observer.Theme()
}

// Size is the current surface size.
func (f *Field) Size() (int, int) { return f.surface.Size() }

// Running reports whether the field is attached and animating.
func (f *Field) Running() bool { return f.attached && f.handle.Running() }
