package frame

import "testing"

func TestQueuePumpRunsOnlyQueuedCallbacks(t *testing.T) {
	var q Queue
	var order []int
	q.RequestFrame(func() {
		order = append(order, 1)
		q.RequestFrame(func() { order = append(order, 3) })
	})
	q.RequestFrame(func() { order = append(order, 2) })

	if n := q.Pump(); n != 2 {
		t.Fatalf("expected 2 callbacks, ran %d", n)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("unexpected order %v", order)
	}
	if q.Len() != 1 {
		t.Fatalf("callback queued during pump should wait, queue has %d", q.Len())
	}
	q.Pump()
	if len(order) != 3 || order[2] != 3 {
		t.Errorf("expected deferred callback on next pump, got %v", order)
	}
}

func TestHandleRepeatsEveryFrame(t *testing.T) {
	var q Queue
	steps := 0
	h := Start(&q, func() { steps++ })

	for i := 0; i < 10; i++ {
		q.Pump()
	}
	if steps != 10 {
		t.Errorf("expected 10 steps, got %d", steps)
	}
	if !h.Running() {
		t.Error("expected the handle to keep running")
	}
	if q.Len() != 1 {
		t.Errorf("expected exactly one pending frame, got %d", q.Len())
	}
}

func TestHandleStopWithFrameInFlight(t *testing.T) {
	var q Queue
	steps := 0
	h := Start(&q, func() { steps++ })
	q.Pump()

	// A frame is already queued when Stop is called.
	h.Stop()
	h.Stop()
	if q.Len() != 1 {
		t.Fatalf("expected the in-flight frame to still be queued, got %d", q.Len())
	}

	q.Pump()
	q.Pump()
	if steps != 1 {
		t.Errorf("stopped task must not step again, got %d steps", steps)
	}
	if q.Len() != 0 {
		t.Errorf("stopped task must not reschedule, queue has %d", q.Len())
	}
	if h.Running() {
		t.Error("handle should report stopped")
	}
}

func TestHandleStopFromStep(t *testing.T) {
	var q Queue
	var h *Handle
	steps := 0
	h = Start(&q, func() {
		steps++
		if steps == 3 {
			h.Stop()
		}
	})

	for i := 0; i < 10; i++ {
		q.Pump()
	}
	if steps != 3 {
		t.Errorf("expected 3 steps, got %d", steps)
	}
	if q.Len() != 0 {
		t.Errorf("expected nothing scheduled, queue has %d", q.Len())
	}
}
