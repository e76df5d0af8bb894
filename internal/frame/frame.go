// Package frame schedules one callback per display refresh.
package frame

import (
	"sync"
	"sync/atomic"
)

// Requester runs fn once, on the next display refresh.
type Requester interface {
	RequestFrame(fn func())
}

// Queue is a Requester whose callbacks run when the host pumps it,
// typically once from its draw hook.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

func (q *Queue) RequestFrame(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Pump runs the callbacks queued before the call. Callbacks queued while
// pumping wait for the next pump. It returns how many ran.
func (q *Queue) Pump() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len reports how many callbacks are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Handle is a self-rescheduling repeating task. Every tick checks the
// stop token before and after running the step, so a callback that fires
// after Stop does nothing and schedules nothing.
type Handle struct {
	req     Requester
	step    func()
	stopped atomic.Bool
}

// Start schedules step on every frame until the handle is stopped.
func Start(req Requester, step func()) *Handle {
	h := &Handle{req: req, step: step}
	h.req.RequestFrame(h.tick)
	return h
}

func (h *Handle) tick() {
	if h.stopped.Load() {
		return
	}
	h.step()
	if h.stopped.Load() {
		return
	}
	h.req.RequestFrame(h.tick)
}

// Stop cancels the task. Safe to call more than once and from a step.
func (h *Handle) Stop() { h.stopped.Store(true) }

// Running reports whether the task will keep scheduling frames.
func (h *Handle) Running() bool { return !h.stopped.Load() }
