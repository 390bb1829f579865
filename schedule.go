package radial

import "time"

// Clock abstracts wall time so tests can advance virtual time
// deterministically instead of sleeping through real delays.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// timer is a single-slot cancellable scheduled task. It never fires on its
// own: the owner calls fire with the current clock reading each frame.
// Scheduling replaces any pending task, so at most one is ever in flight.
type timer struct {
	deadline time.Time
	fn       func()
	pending  bool
}

// schedule arms the timer to run fn once delay has elapsed past now.
// A non-positive delay runs fn synchronously and leaves the timer idle.
func (t *timer) schedule(now time.Time, delay time.Duration, fn func()) {
	if delay <= 0 {
		t.pending = false
		t.fn = nil
		fn()
		return
	}
	t.deadline = now.Add(delay)
	t.fn = fn
	t.pending = true
}

// cancel discards any pending task.
func (t *timer) cancel() {
	t.pending = false
	t.fn = nil
}

// fire runs the pending task if its deadline has passed. The task is
// cleared before it runs so it can safely re-arm the timer.
func (t *timer) fire(now time.Time) {
	if !t.pending || now.Before(t.deadline) {
		return
	}
	fn := t.fn
	t.pending = false
	t.fn = nil
	fn()
}
