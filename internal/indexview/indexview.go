// Package indexview implements an A–Z style index scrubber: a column of
// section labels along one edge of a list that maps presses and drags to a
// (section, item) position in the host's list.
//
// The package holds no rendering code. A host feeds it pointer events, the
// surface height and a per-frame Update call, and reads back labels, opacity
// and preview text to draw.
package indexview

import (
	"log"
	"math"
	"strings"
	"time"
)

// Phase is the stage of a pointer gesture.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// PointerEvent is one pointer sample. Y is relative to the top of the surface.
type PointerEvent struct {
	Phase Phase
	Y     float64
}

// Edge is the screen edge the bar sticks to.
type Edge int

const (
	EdgeRight Edge = iota
	EdgeLeft
)

func (e Edge) String() string {
	if e == EdgeLeft {
		return "left"
	}
	return "right"
}

// ParseEdge converts a config value to an Edge. Anything but "left" is right.
func ParseEdge(s string) Edge {
	if strings.EqualFold(strings.TrimSpace(s), "left") {
		return EdgeLeft
	}
	return EdgeRight
}

// Haptic emits a discrete selection pulse. Pulse must not block.
type Haptic interface {
	Pulse()
}

// HapticFunc adapts a function to Haptic.
type HapticFunc func()

func (f HapticFunc) Pulse() { f() }

// DragState is the gesture bookkeeping of an IndexView.
type DragState struct {
	Dragging    bool
	LastSection int
	LastPath    Path
}

// Options configures an IndexView.
type Options struct {
	// ScrollsToSectionTop reports item 0 of the touched section instead of
	// the item under the pointer.
	ScrollsToSectionTop bool
	// AlwaysVisible keeps the bar on screen between drags.
	AlwaysVisible bool
	Edge          Edge
	// FadeDuration of show and hide. Zero means DefaultFadeDuration; use a
	// negative value for instant changes.
	FadeDuration time.Duration
	Clock        Clock
	Haptic       Haptic
}

// IndexView is the index scrubber control.
type IndexView struct {
	delegate Delegate
	haptic   Haptic
	vis      *Visibility

	labels      []string
	extended    []string
	overlayText string

	drag          DragState
	surfaceHeight float64

	scrollsToSectionTop bool
	edge                Edge

	warned map[error]bool
}

// New creates an IndexView for delegate. Call Setup to load its sections.
func New(delegate Delegate, opts Options) *IndexView {
	fade := opts.FadeDuration
	if fade == 0 {
		fade = DefaultFadeDuration
	}
	v := &IndexView{
		delegate:            delegate,
		haptic:              opts.Haptic,
		vis:                 NewVisibility(opts.Clock, fade),
		scrollsToSectionTop: opts.ScrollsToSectionTop,
		edge:                opts.Edge,
	}
	v.SetAlwaysVisible(opts.AlwaysVisible)
	return v
}

// SetDelegate replaces the host. It does not reload sections.
func (v *IndexView) SetDelegate(d Delegate) { v.delegate = d }

// Detach drops the host. The control stays inert until a delegate is set and
// Setup runs again.
func (v *IndexView) Detach() {
	v.cancelDrag(nil)
	v.delegate = nil
}

// Setup reloads section labels and extended titles from the delegate,
// replacing the previous set wholesale and resetting the drag state. A drag
// in progress is ended.
func (v *IndexView) Setup() {
	d := v.delegate
	v.cancelDrag(d)

	v.labels = nil
	v.extended = nil
	if d != nil {
		v.labels = append([]string(nil), d.SectionLabels()...)
		if t, ok := d.(ExtendedTitler); ok {
			v.extended = append([]string(nil), t.ExtendedTitles()...)
		}
	}
	v.drag = DragState{}
	v.overlayText = ""
	if len(v.extended) > 0 {
		v.overlayText = v.extended[0]
	}
	v.warned = nil
}

func (v *IndexView) cancelDrag(d Delegate) {
	if !v.drag.Dragging {
		return
	}
	v.drag.Dragging = false
	if obs, ok := d.(DragObserver); ok {
		obs.DragEnded()
	}
	v.vis.DragEnd()
}

// Labels returns the current section labels.
func (v *IndexView) Labels() []string { return v.labels }

// DragState returns a copy of the gesture state.
func (v *IndexView) DragState() DragState { return v.drag }

// Visibility exposes the visibility controller.
func (v *IndexView) Visibility() *Visibility { return v.vis }

// Opacity of the bar in [0, 1].
func (v *IndexView) Opacity() float64 { return v.vis.Opacity() }

// OverlayText is the preview label for the last reported section. Empty when
// the delegate has no extended titles.
func (v *IndexView) OverlayText() string { return v.overlayText }

// OverlayOpacity is the opacity of the preview label. It is only shown while
// dragging.
func (v *IndexView) OverlayOpacity() float64 {
	if !v.drag.Dragging || v.overlayText == "" {
		return 0
	}
	return v.vis.Opacity()
}

func (v *IndexView) Edge() Edge                      { return v.edge }
func (v *IndexView) SetEdge(e Edge)                  { v.edge = e }
func (v *IndexView) ScrollsToSectionTop() bool       { return v.scrollsToSectionTop }
func (v *IndexView) SetScrollsToSectionTop(on bool)  { v.scrollsToSectionTop = on }
func (v *IndexView) SetFadeDuration(d time.Duration) { v.vis.SetFadeDuration(d) }
func (v *IndexView) SetHaptic(h Haptic)              { v.haptic = h }

// SetAlwaysVisible pins the bar on screen between drags. The preview label
// still only shows while dragging.
func (v *IndexView) SetAlwaysVisible(on bool) { v.vis.SetAlwaysVisible(on) }

// SetSurfaceHeight records the height of the interactive surface.
func (v *IndexView) SetSurfaceHeight(h float64) { v.surfaceHeight = h }

// SurfaceHeight returns the last height set with SetSurfaceHeight.
func (v *IndexView) SurfaceHeight() float64 { return v.surfaceHeight }

// Show fades the bar in and keeps it on screen.
func (v *IndexView) Show() { v.vis.Show() }

// Hide fades the bar out.
func (v *IndexView) Hide() { v.vis.Hide() }

// Flash briefly reveals the bar to hint at its presence.
func (v *IndexView) Flash(delay, duration time.Duration) {
	v.vis.Flash(delay, duration)
}

// Update advances fades and timers. Call once per frame.
func (v *IndexView) Update() { v.vis.Update() }

// HandlePointer processes one pointer sample and reports at most one
// TargetSelected. Configuration errors are logged once and the sample is
// dropped; nothing is returned to the host.
func (v *IndexView) HandlePointer(ev PointerEvent) {
	d := v.delegate
	if d == nil {
		return
	}
	if ev.Phase == PhaseBegan {
		if err := v.checkSurface(); err != nil {
			v.warnOnce(err)
			return
		}
	}
	if len(v.labels) == 0 {
		return
	}

	switch ev.Phase {
	case PhaseBegan:
		if obs, ok := d.(DragObserver); ok {
			obs.DragBegan()
		}
		v.vis.DragBegin()
		v.drag.Dragging = true
	case PhaseChanged:
		if !v.drag.Dragging {
			return
		}
		v.scrollTo(d, ev.Y)
	case PhaseEnded, PhaseCancelled:
		v.cancelDrag(d)
	}
}

// checkSurface reports the configuration errors that make a drag pointless.
func (v *IndexView) checkSurface() error {
	if len(v.labels) == 0 {
		return ErrNoSections
	}
	if !(v.surfaceHeight > 0) || math.IsInf(v.surfaceHeight, 0) {
		return ErrInvalidSurface
	}
	return nil
}

func (v *IndexView) scrollTo(d Delegate, y float64) {
	count := func(section int) int {
		n := d.ItemCount(section)
		if n < 0 {
			return 0
		}
		return n
	}
	path, ok, err := ComputeTarget(y, v.surfaceHeight, len(v.labels), count, v.scrollsToSectionTop)
	if err != nil {
		v.warnOnce(err)
		return
	}
	if !ok {
		return
	}

	if path.Section != v.drag.LastSection {
		v.drag.LastSection = path.Section
		if v.haptic != nil {
			v.haptic.Pulse()
		}
	}
	v.drag.LastPath = path
	d.TargetSelected(path.Section, path.Item)

	if path.Section < len(v.extended) {
		v.overlayText = v.extended[path.Section]
	}
}

func (v *IndexView) warnOnce(err error) {
	if v.warned[err] {
		return
	}
	if v.warned == nil {
		v.warned = make(map[error]bool)
	}
	v.warned[err] = true
	log.Printf("Index view ignoring pointer input: %v", err)
}
