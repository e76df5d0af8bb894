package theme

import "fmt"

// Observer keeps the last seen theme and calls onChange only when the
// value really changes. Redundant notifications are absorbed.
type Observer struct {
	onChange func(Theme)

	current  Theme
	cancel   func()
	attached bool
}

func NewObserver(onChange func(Theme)) *Observer {
	return &Observer{onChange: onChange}
}

// Attach reads the current theme synchronously and subscribes to changes.
// It does not call onChange for the initial value.
func (o *Observer) Attach(src Source) error {
	if src == nil {
		return ErrNoSource
	}
	if o.attached {
		o.Detach()
	}

	o.current = src.Current()
	o.attached = true

	cancel, err := src.Subscribe(func() { o.notify(src) })
	if err != nil {
		o.attached = false
		return fmt.Errorf("theme: subscribe: %w", err)
	}
	o.cancel = cancel
	return nil
}

func (o *Observer) notify(src Source) {
	if !o.attached {
		return
	}
	t := src.Current()
	if t == o.current {
		return
	}
	o.current = t
	if o.onChange != nil {
		o.onChange(t)
	}
}

// Theme returns the last observed theme.
func (o *Observer) Theme() Theme { return o.current }

// Detach unsubscribes. Safe to call more than once.
func (o *Observer) Detach() {
	o.attached = false
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}
