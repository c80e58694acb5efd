package indexview

import "time"

// VisibilityState is the visibility mode of the index bar.
type VisibilityState int

const (
	Hidden       VisibilityState = iota
	Visible                      // shown until hidden or a drag ends
	FlashPending                 // waiting for a flash reveal
	FlashShown                   // revealed by a flash, auto-hides at the deadline
)

func (s VisibilityState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case FlashPending:
		return "flash-pending"
	case FlashShown:
		return "flash-shown"
	}
	return "unknown"
}

// DefaultFadeDuration is the opacity fade used by show and hide.
const DefaultFadeDuration = 200 * time.Millisecond

// Visibility drives the bar's opacity from drag lifecycle and show, hide and
// flash requests. Every call is total: requests that make no sense in the
// current state are ignored. It owns one Timer, so a new flash, show, hide
// or drag always supersedes whatever was scheduled before.
type Visibility struct {
	clock   Clock
	fadeDur time.Duration

	state    VisibilityState
	deadline time.Time

	dragging      bool
	hideDeferred  bool
	alwaysVisible bool

	opacity float64
	fade    tween
	fades   int

	timer Timer
}

// NewVisibility returns a hidden controller. A nil clock means SystemClock.
func NewVisibility(clock Clock, fade time.Duration) *Visibility {
	if clock == nil {
		clock = SystemClock
	}
	if fade < 0 {
		fade = 0
	}
	return &Visibility{clock: clock, fadeDur: fade}
}

func (v *Visibility) State() VisibilityState { return v.state }
func (v *Visibility) Opacity() float64       { return v.opacity }
func (v *Visibility) Dragging() bool         { return v.dragging }
func (v *Visibility) Animating() bool        { return v.fade.active }

// HideDeferred reports whether a flash ended mid-drag and is waiting for the
// drag to end.
func (v *Visibility) HideDeferred() bool { return v.hideDeferred }

// Deadline returns the reveal time in FlashPending and the hide time in
// FlashShown.
func (v *Visibility) Deadline() (time.Time, bool) {
	if v.state != FlashPending && v.state != FlashShown {
		return time.Time{}, false
	}
	return v.deadline, true
}

// SetFadeDuration changes the duration of subsequent fades.
func (v *Visibility) SetFadeDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	v.fadeDur = d
}

// SetAlwaysVisible pins the bar on screen. Drag ends and flashes no longer
// hide it; an explicit Hide still does.
func (v *Visibility) SetAlwaysVisible(on bool) {
	if v.alwaysVisible == on {
		return
	}
	v.alwaysVisible = on
	if on {
		v.Show()
		return
	}
	v.Hide()
}

// DragBegin shows the bar at full opacity without a fade and cancels any
// pending flash.
func (v *Visibility) DragBegin() {
	v.dragging = true
	v.hideDeferred = false
	v.timer.Cancel()
	v.fade.active = false
	v.opacity = 1
	v.state = Visible
}

// DragEnd fades the bar out unless it is pinned visible.
func (v *Visibility) DragEnd() {
	if !v.dragging {
		return
	}
	v.dragging = false
	v.hideDeferred = false
	if v.alwaysVisible {
		return
	}
	v.Hide()
}

// Show fades the bar in and keeps it there.
func (v *Visibility) Show() {
	if v.dragging || v.state == Visible {
		return
	}
	v.timer.Cancel()
	v.state = Visible
	v.startFade(1)
}

// Hide fades the bar out.
func (v *Visibility) Hide() {
	if v.dragging || v.state == Hidden {
		return
	}
	v.timer.Cancel()
	v.hideDeferred = false
	v.state = Hidden
	v.startFade(0)
}

// Flash reveals the bar after delay and hides it again duration after the
// reveal. A newer flash replaces an older one. While dragging it does
// nothing: the drag end already hides the bar.
func (v *Visibility) Flash(delay, duration time.Duration) {
	if v.dragging {
		return
	}
	if delay < 0 {
		delay = 0
	}
	v.state = FlashPending
	v.deadline = v.clock.Now().Add(delay)
	v.timer.Schedule(v.deadline, func() { v.reveal(duration) })
}

func (v *Visibility) reveal(duration time.Duration) {
	if v.dragging {
		return
	}
	v.state = FlashShown
	v.deadline = v.clock.Now().Add(duration)
	v.startFade(1)
	v.timer.Schedule(v.deadline, v.flashEnded)
}

func (v *Visibility) flashEnded() {
	// DragBegin cancels the timer, so this only guards a caller that re-arms
	// it mid-drag.
	if v.dragging {
		v.hideDeferred = true
		return
	}
	if v.alwaysVisible {
		v.state = Visible
		return
	}
	v.Hide()
}

// Update advances the running fade and fires a due timer. Call once per frame.
func (v *Visibility) Update() {
	now := v.clock.Now()
	v.stepFade(now)
	if v.timer.Poll(now) {
		v.stepFade(now)
	}
}

func (v *Visibility) startFade(target float64) {
	v.fades++
	v.fade = tween{
		from:   v.opacity,
		to:     target,
		start:  v.clock.Now(),
		dur:    v.fadeDur,
		active: true,
	}
	if v.fadeDur <= 0 {
		v.stepFade(v.fade.start)
	}
}

func (v *Visibility) stepFade(now time.Time) {
	if !v.fade.active {
		return
	}
	val, done := v.fade.at(now)
	if !done {
		v.opacity = val
		return
	}
	v.fade.active = false
	// A drag that started after this fade was scheduled owns the opacity.
	if v.fade.to == 0 && v.dragging {
		v.opacity = 1
		return
	}
	v.opacity = val
}
