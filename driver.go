package radial

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Driver produces an animation progress value in [0, 1] advancing over a
// configured duration. The state machine starts it on open (bounce) and
// reverses it on close (fade); consumers only read Progress each frame.
//
// There is no global animation manager — the menu calls Update itself.
type Driver struct {
	tween    *gween.Tween
	progress float64
	forward  ease.TweenFunc
	backward ease.TweenFunc

	// OnComplete fires once each time a started or reversed run finishes.
	OnComplete func()
}

// NewDriver creates a driver using the given easing curves for the forward
// and reverse runs. Nil curves default to linear.
func NewDriver(forward, backward ease.TweenFunc) *Driver {
	if forward == nil {
		forward = ease.Linear
	}
	if backward == nil {
		backward = ease.Linear
	}
	return &Driver{forward: forward, backward: backward}
}

// Start animates progress from its current value to 1 over duration.
// A non-positive duration snaps to 1 immediately.
func (d *Driver) Start(duration time.Duration) {
	if duration <= 0 {
		d.tween = nil
		d.progress = 1
		return
	}
	d.tween = gween.New(float32(d.progress), 1, float32(duration.Seconds()), d.forward)
}

// Reverse animates progress from its current value back to 0 over duration.
// A non-positive duration snaps to 0 immediately.
func (d *Driver) Reverse(duration time.Duration) {
	if duration <= 0 {
		d.tween = nil
		d.progress = 0
		return
	}
	d.tween = gween.New(float32(d.progress), 0, float32(duration.Seconds()), d.backward)
}

// Update advances the active run by dt seconds and fires OnComplete when it
// finishes. Idle drivers are a no-op.
func (d *Driver) Update(dt float32) {
	if d.tween == nil {
		return
	}
	val, finished := d.tween.Update(dt)
	d.progress = float64(val)
	if finished {
		d.tween = nil
		if d.OnComplete != nil {
			d.OnComplete()
		}
	}
}

// Progress returns the current value in [0, 1].
func (d *Driver) Progress() float64 { return d.progress }

// Done reports whether no run is active.
func (d *Driver) Done() bool { return d.tween == nil }

// reset snaps the driver to the given progress with no active run.
func (d *Driver) reset(progress float64) {
	d.tween = nil
	d.progress = progress
}
