// Package theme carries the host's two-valued presentation mode and the
// observer that republishes it to the particle field.
package theme

import (
	"errors"
	"fmt"
	"sync"
)

// Theme is a presentation mode.
type Theme int

const (
	Dark Theme = iota
	Light
)

// ErrNoSource is returned when an observer is attached without a signal.
var ErrNoSource = errors.New("theme: no source to observe")

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Parse converts "dark" or "light" into a Theme.
func Parse(s string) (Theme, error) {
	switch s {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown theme %q", s)
}

// Source is the read-only theme input owned by the host. Subscribers are
// told that something changed and re-read Current, the same way an
// attribute mutation observer works.
type Source interface {
	Current() Theme
	Subscribe(fn func()) (cancel func(), err error)
}

// Signal is the host-side Source. Every Set notifies subscribers, even
// when the value does not change.
type Signal struct {
	mu      sync.Mutex
	current Theme
	subs    map[int]func()
	nextID  int
}

func NewSignal(initial Theme) *Signal {
	return &Signal{
		current: initial,
		subs:    map[int]func(){},
	}
}

func (s *Signal) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Signal) Subscribe(fn func()) (func(), error) {
	if fn == nil {
		return nil, errors.New("theme: nil subscriber")
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}, nil
}

// Set stores t and notifies every subscriber.
func (s *Signal) Set(t Theme) {
	s.mu.Lock()
	s.current = t
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Toggle flips the theme and returns the new value.
func (s *Signal) Toggle() Theme {
	next := s.Current().Toggle()
	s.Set(next)
	return next
}

// Subscribers reports how many subscriptions are live.
func (s *Signal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
