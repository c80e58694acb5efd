package indexview

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	labels   []string
	titles   []string
	counts   []int
	selected []Path
	began    int
	ended    int
}

func (h *fakeHost) SectionLabels() []string  { return h.labels }
func (h *fakeHost) ExtendedTitles() []string { return h.titles }
func (h *fakeHost) ItemCount(section int) int {
	if section < 0 || section >= len(h.counts) {
		return 0
	}
	return h.counts[section]
}
func (h *fakeHost) TargetSelected(section, item int) {
	h.selected = append(h.selected, Path{section, item})
}
func (h *fakeHost) DragBegan() { h.began++ }
func (h *fakeHost) DragEnded() { h.ended++ }

func newTestView(t *testing.T, h *fakeHost, opts Options) (*IndexView, *manualClock, *int) {
	t.Helper()
	clk := newManualClock()
	pulses := 0
	opts.Clock = clk
	opts.Haptic = HapticFunc(func() { pulses++ })
	v := New(h, opts)
	v.SetSurfaceHeight(500)
	v.Setup()
	return v, clk, &pulses
}

func fiveSections() *fakeHost {
	return &fakeHost{
		labels: []string{"A", "B", "C", "D", "E"},
		titles: []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"},
		counts: []int{2, 2, 2, 2, 2},
	}
}

func TestIndexViewPulsesOncePerSection(t *testing.T) {
	h := fiveSections()
	v, _, pulses := newTestView(t, h, Options{})

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 0})
	for y := 0.0; y < 500; y += 5 {
		v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: y})
	}
	// the bottom edge stays in the last section
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 500})
	v.HandlePointer(PointerEvent{Phase: PhaseEnded, Y: 500})

	assert.Equal(t, 4, *pulses)
	assert.Equal(t, 101, len(h.selected))
	assert.Equal(t, Path{0, 0}, h.selected[0])
	assert.Equal(t, Path{4, 1}, h.selected[len(h.selected)-1])
	assert.Equal(t, 1, h.began)
	assert.Equal(t, 1, h.ended)
}

func TestIndexViewTapSelects(t *testing.T) {
	h := fiveSections()
	v, _, pulses := newTestView(t, h, Options{})

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 250})
	assert.Empty(t, h.selected, "began alone reports nothing")
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 250})
	v.HandlePointer(PointerEvent{Phase: PhaseEnded, Y: 250})

	require.Len(t, h.selected, 1)
	assert.Equal(t, Path{2, 1}, h.selected[0])
	assert.Equal(t, 1, *pulses)
	assert.Equal(t, "Charlie", v.OverlayText())
	assert.Equal(t, DragState{LastSection: 2, LastPath: Path{2, 1}}, v.DragState())
}

func TestIndexViewChangedWithoutBeganIgnored(t *testing.T) {
	h := fiveSections()
	v, _, pulses := newTestView(t, h, Options{})

	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 300})
	assert.Empty(t, h.selected)
	assert.Zero(t, *pulses)
}

func TestIndexViewScrollsToSectionTop(t *testing.T) {
	h := fiveSections()
	v, _, _ := newTestView(t, h, Options{ScrollsToSectionTop: true})

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 190})
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 190})
	require.Len(t, h.selected, 1)
	assert.Equal(t, Path{1, 0}, h.selected[0])

	v.SetScrollsToSectionTop(false)
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 190})
	assert.Equal(t, Path{1, 1}, h.selected[1])
}

func TestIndexViewShortExtendedTitles(t *testing.T) {
	h := fiveSections()
	h.titles = []string{"Alpha"}
	v, _, _ := newTestView(t, h, Options{})

	assert.Equal(t, "Alpha", v.OverlayText())
	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 450})
	assert.NotPanics(t, func() {
		v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 450})
	})
	require.Len(t, h.selected, 1)
	assert.Equal(t, 4, h.selected[0].Section)
	assert.Equal(t, "Alpha", v.OverlayText())
}

func TestIndexViewWithoutExtendedTitles(t *testing.T) {
	h := &fakeHost{labels: []string{"A", "B"}, counts: []int{1, 1}}
	v, _, _ := newTestView(t, h, Options{})

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 400})
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 400})
	assert.Empty(t, v.OverlayText())
	assert.Zero(t, v.OverlayOpacity())
}

func TestIndexViewSetupResets(t *testing.T) {
	h := fiveSections()
	v, _, _ := newTestView(t, h, Options{})

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 400})
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 400})
	require.True(t, v.DragState().Dragging)

	h.labels = []string{"X", "Y"}
	h.titles = []string{"Xray", "Yankee"}
	h.counts = []int{3, 3}
	v.Setup()

	assert.Equal(t, DragState{}, v.DragState())
	assert.Equal(t, 1, h.ended)
	assert.Equal(t, []string{"X", "Y"}, v.Labels())
	assert.Equal(t, "Xray", v.OverlayText())
	assert.False(t, v.Visibility().Dragging())
}

func TestIndexViewSetupCopiesLabels(t *testing.T) {
	h := fiveSections()
	v, _, _ := newTestView(t, h, Options{})
	h.labels[0] = "changed"
	assert.Equal(t, "A", v.Labels()[0])
}

func TestIndexViewDetach(t *testing.T) {
	h := fiveSections()
	v, _, pulses := newTestView(t, h, Options{})

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 10})
	v.Detach()
	assert.False(t, v.DragState().Dragging)
	assert.False(t, v.Visibility().Dragging())

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 300})
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 300})
	v.HandlePointer(PointerEvent{Phase: PhaseEnded, Y: 300})
	v.Setup()

	assert.Empty(t, h.selected)
	assert.Zero(t, *pulses)
	assert.Equal(t, 1, h.began)
	assert.Empty(t, v.Labels())
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestIndexViewInvalidSurfaceWarnsOnce(t *testing.T) {
	buf := captureLog(t)
	h := fiveSections()
	v, _, _ := newTestView(t, h, Options{})
	v.SetSurfaceHeight(0)

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 10})
	for i := 0; i < 5; i++ {
		v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: float64(i * 10)})
	}

	assert.Empty(t, h.selected)
	assert.Zero(t, h.began)
	assert.Zero(t, v.Opacity())
	assert.False(t, v.DragState().Dragging)
	assert.Equal(t, Hidden, v.Visibility().State())

	v.HandlePointer(PointerEvent{Phase: PhaseEnded, Y: 10})
	assert.Zero(t, h.ended)
	assert.Equal(t, 1, strings.Count(buf.String(), "surface height"))
}

func TestIndexViewNoSections(t *testing.T) {
	buf := captureLog(t)
	h := &fakeHost{}
	v, _, _ := newTestView(t, h, Options{})

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 10})
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 10})
	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 10})

	assert.Zero(t, h.began)
	assert.Empty(t, h.selected)
	assert.Equal(t, 1, strings.Count(buf.String(), "no sections"))
}

func TestIndexViewDragVisibility(t *testing.T) {
	h := fiveSections()
	v, clk, _ := newTestView(t, h, Options{FadeDuration: -1})

	assert.Zero(t, v.Opacity())
	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 10})
	assert.Equal(t, 1.0, v.Opacity())
	assert.Equal(t, 1.0, v.OverlayOpacity())

	v.HandlePointer(PointerEvent{Phase: PhaseEnded, Y: 10})
	clk.Advance(time.Millisecond)
	v.Update()
	assert.Zero(t, v.Opacity())
	assert.Equal(t, Hidden, v.Visibility().State())
}

func TestIndexViewFlashHidesOverlay(t *testing.T) {
	h := fiveSections()
	v, clk, _ := newTestView(t, h, Options{FadeDuration: -1})

	v.Flash(0, time.Second)
	v.Update()
	assert.Equal(t, 1.0, v.Opacity())
	assert.Zero(t, v.OverlayOpacity())

	clk.Advance(time.Second)
	v.Update()
	assert.Zero(t, v.Opacity())
}

func TestIndexViewFlashIgnoredWhileDragging(t *testing.T) {
	h := fiveSections()
	v, clk, _ := newTestView(t, h, Options{FadeDuration: -1})

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 10})
	v.Flash(0, time.Second)
	clk.Advance(2 * time.Second)
	v.Update()
	assert.Equal(t, 1.0, v.Opacity())
	assert.Equal(t, 1.0, v.OverlayOpacity())
}

func TestIndexViewAlwaysVisible(t *testing.T) {
	h := fiveSections()
	v, _, _ := newTestView(t, h, Options{AlwaysVisible: true, FadeDuration: -1})

	assert.Equal(t, 1.0, v.Opacity())
	assert.Zero(t, v.OverlayOpacity(), "no preview before a drag")

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 10})
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 300})
	assert.Equal(t, 1.0, v.OverlayOpacity())

	v.HandlePointer(PointerEvent{Phase: PhaseEnded, Y: 300})
	assert.Zero(t, v.OverlayOpacity(), "preview goes away with the drag")
	assert.Equal(t, 1.0, v.Opacity())

	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 10})
	v.HandlePointer(PointerEvent{Phase: PhaseCancelled, Y: 10})
	assert.Zero(t, v.OverlayOpacity())
	assert.Equal(t, 1.0, v.Opacity())
	assert.Equal(t, Visible, v.Visibility().State())
}

func TestDelegateFuncs(t *testing.T) {
	var selected []Path
	d := DelegateFuncs{
		Labels:   func() []string { return []string{"A"} },
		Count:    func(int) int { return 4 },
		Selected: func(s, i int) { selected = append(selected, Path{s, i}) },
	}
	v := New(d, Options{Clock: newManualClock()})
	v.SetSurfaceHeight(100)
	v.Setup()
	v.HandlePointer(PointerEvent{Phase: PhaseBegan, Y: 60})
	v.HandlePointer(PointerEvent{Phase: PhaseChanged, Y: 60})
	v.HandlePointer(PointerEvent{Phase: PhaseEnded, Y: 60})
	assert.Equal(t, []Path{{0, 2}}, selected)

	var b BaseDelegate
	assert.Nil(t, b.ExtendedTitles())
	assert.NotPanics(t, func() {
		b.DragBegan()
		b.DragEnded()
	})
}

func TestParseEdge(t *testing.T) {
	assert.Equal(t, EdgeLeft, ParseEdge(" Left "))
	assert.Equal(t, EdgeRight, ParseEdge("right"))
	assert.Equal(t, EdgeRight, ParseEdge(""))
	assert.Equal(t, "left", EdgeLeft.String())
}
