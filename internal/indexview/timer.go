package indexview

import "time"

// Clock reports the current time. The game loop uses the wall clock; tests
// drive a manual one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Timer is a single cancellable deadline polled from the update loop.
// Scheduling again replaces whatever was armed before, so at most one
// callback is ever pending.
type Timer struct {
	deadline time.Time
	fn       func()
	armed    bool
}

// Schedule arms the timer to run fn once now >= at.
func (t *Timer) Schedule(at time.Time, fn func()) {
	t.deadline = at
	t.fn = fn
	t.armed = fn != nil
}

// Cancel disarms the timer.
func (t *Timer) Cancel() {
	t.armed = false
	t.fn = nil
}

// Pending reports whether a callback is armed.
func (t *Timer) Pending() bool { return t.armed }

// Deadline returns the armed deadline.
func (t *Timer) Deadline() (time.Time, bool) {
	return t.deadline, t.armed
}

// Poll runs the callback when its deadline has passed and reports whether it
// fired. The callback may re-arm the timer.
func (t *Timer) Poll(now time.Time) bool {
	if !t.armed || now.Before(t.deadline) {
		return false
	}
	fn := t.fn
	t.Cancel()
	fn()
	return true
}

// tween linearly moves a value between two points over a duration.
type tween struct {
	from, to float64
	start    time.Time
	dur      time.Duration
	active   bool
}

// at returns the value at now and whether the tween has finished.
func (tw *tween) at(now time.Time) (float64, bool) {
	if tw.dur <= 0 {
		return tw.to, true
	}
	elapsed := now.Sub(tw.start)
	if elapsed >= tw.dur {
		return tw.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := float64(elapsed) / float64(tw.dur)
	return tw.from + (tw.to-tw.from)*p, false
}
