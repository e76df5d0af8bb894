// Package surface tracks the pixel size of the drawing surface.
package surface

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoViewport is returned when a manager is attached without a viewport.
var ErrNoViewport = errors.New("surface: no viewport")

// Viewport is the host window the surface follows.
type Viewport interface {
	Size() (width, height int)
	Subscribe(fn func(width, height int)) (cancel func(), err error)
}

// Manager mirrors the viewport size. Resizing never touches particles;
// they wrap into the new bounds on their next update.
type Manager struct {
	width, height int
	cancel        func()
	attached      bool
}

// Attach sizes the surface to the viewport and follows its resizes.
func (m *Manager) Attach(vp Viewport) error {
	if vp == nil {
		return ErrNoViewport
	}
	if m.attached {
		m.Detach()
	}

	m.width, m.height = clampSize(vp.Size())
	m.attached = true

	cancel, err := vp.Subscribe(m.resize)
	if err != nil {
		m.attached = false
		m.width, m.height = 0, 0
		return fmt.Errorf("surface: subscribe: %w", err)
	}
	m.cancel = cancel
	return nil
}

func (m *Manager) resize(width, height int) {
	if !m.attached {
		return
	}
	m.width, m.height = clampSize(width, height)
}

func clampSize(w, h int) (int, int) {
	return max(w, 0), max(h, 0)
}

// Size returns the current width and height.
func (m *Manager) Size() (int, int) { return m.width, m.height }

// Area is width*height in square pixels.
func (m *Manager) Area() float64 { return float64(m.width) * float64(m.height) }

// Valid reports whether the surface can be drawn on.
func (m *Manager) Valid() bool { return m.width > 0 && m.height > 0 }

// Detach stops following the viewport. Safe to call more than once.
func (m *Manager) Detach() {
	m.attached = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Window is a host-side Viewport whose size is pushed by the host.
type Window struct {
	mu     sync.Mutex
	width  int
	height int
	subs   map[int]func(int, int)
	nextID int
}

func NewWindow(width, height int) *Window {
	return &Window{width: width, height: height, subs: map[int]func(int, int){}}
}

func (w *Window) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

func (w *Window) Subscribe(fn func(int, int)) (func(), error) {
	if fn == nil {
		return nil, errors.New("surface: nil subscriber")
	}
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			w.mu.Unlock()
		})
	}, nil
}

// Resize records the new size and notifies subscribers when it changed.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	if width == w.width && height == w.height {
		w.mu.Unlock()
		return
	}
	w.width, w.height = width, height
	fns := make([]func(int, int), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}

// Subscribers reports how many subscriptions are live.
func (w *Window) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}
