package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/couchindex/internal/indexview"
)

// IndexBar places an IndexView along one edge of a list viewport, feeds it
// pointer input and draws it.
type IndexBar struct {
	View *indexview.IndexView
	// ItemCount, when set, dims the labels of empty sections.
	ItemCount func(section int) int

	pointer   PointerTracker
	capturing bool

	area Rect
	edge indexview.Edge
	bar  Rect
	surf *ebiten.Image
}

func NewIndexBar(view *indexview.IndexView) *IndexBar {
	return &IndexBar{View: view}
}

// Layout attaches the bar to the view's edge of area and updates the
// surface height used for hit mapping.
func (b *IndexBar) Layout(area Rect) {
	b.area = area
	b.edge = b.View.Edge()
	b.bar = barRect(area, b.edge)
	b.View.SetSurfaceHeight(b.surface().H)
}

func barRect(area Rect, edge indexview.Edge) Rect {
	x := area.X + area.W - IndexBarMargin - IndexBarWidth
	if edge == indexview.EdgeLeft {
		x = area.X + IndexBarMargin
	}
	h := area.H - 2*IndexBarMargin
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: area.Y + IndexBarMargin, W: IndexBarWidth, H: h}
}

// Bounds is the drawn rectangle of the bar.
func (b *IndexBar) Bounds() Rect { return b.bar }

// Reserved is the horizontal space the bar takes from the list, margins
// included.
func (b *IndexBar) Reserved() float64 { return IndexBarWidth + 2*IndexBarMargin }

// surface is the part of the bar the labels are spread over.
func (b *IndexBar) surface() Rect { return b.bar.Inset(0, IndexBarInsetY) }

func (b *IndexBar) hitRect() Rect {
	r := b.bar
	r.X -= IndexHitSlop
	r.W += 2 * IndexHitSlop
	return r
}

func (b *IndexBar) localY(y int) float64 { return float64(y) - b.surface().Y }

// Capturing reports whether a press that started on the bar is in progress.
func (b *IndexBar) Capturing() bool { return b.capturing }

// Update polls the pointer and forwards presses that start on the bar to the
// view. A press is reported as began followed by changed at the same point so
// a tap jumps straight to its section. Returns true while the bar owns the
// pointer, including the frame it is released.
func (b *IndexBar) Update() bool {
	if b.edge != b.View.Edge() {
		b.Layout(b.area)
	}

	ev, ok := b.pointer.Poll()
	if !ok {
		return b.capturing
	}
	switch ev.Phase {
	case indexview.PhaseBegan:
		if !b.hitRect().Contains(float64(ev.X), float64(ev.Y)) {
			return false
		}
		b.capturing = true
		y := b.localY(ev.Y)
		b.View.HandlePointer(indexview.PointerEvent{Phase: indexview.PhaseBegan, Y: y})
		b.View.HandlePointer(indexview.PointerEvent{Phase: indexview.PhaseChanged, Y: y})
	case indexview.PhaseChanged:
		if b.capturing {
			b.View.HandlePointer(indexview.PointerEvent{Phase: indexview.PhaseChanged, Y: b.localY(ev.Y)})
		}
	case indexview.PhaseEnded, indexview.PhaseCancelled:
		if !b.capturing {
			return false
		}
		b.capturing = false
		b.View.HandlePointer(indexview.PointerEvent{Phase: ev.Phase, Y: b.localY(ev.Y)})
		return true
	}
	return b.capturing
}

// labelCenter is the vertical center of label i of n spread over [top, top+h).
func labelCenter(i, n int, top, h float64) float64 {
	return top + (float64(i)+0.5)*h/float64(n)
}

// labelStride returns k such that only every k-th label is drawn when the
// surface is too short to fit all n at lineH each.
func labelStride(n int, h, lineH float64) int {
	if n <= 0 || h <= 0 || lineH <= 0 {
		return 1
	}
	fit := int(h / lineH)
	if fit < 1 {
		fit = 1
	}
	if n <= fit {
		return 1
	}
	return (n + fit - 1) / fit
}

// Draw renders the bar at the view's opacity and the preview label while
// dragging.
func (b *IndexBar) Draw(dst *ebiten.Image) {
	if alpha := b.View.Opacity(); alpha > 0 && b.bar.H > 0 {
		b.drawBar(dst, alpha)
	}
	b.drawPreview(dst)
}

func (b *IndexBar) drawBar(dst *ebiten.Image, alpha float64) {
	w, h := int(b.bar.W), int(b.bar.H)
	if b.surf == nil || b.surf.Bounds().Dx() != w || b.surf.Bounds().Dy() != h {
		b.surf = ebiten.NewImage(w, h)
	}
	b.surf.Clear()

	// Drawn opaque offscreen, then faded as one layer so overlapping shapes
	// do not blend twice.
	DrawFilledRoundRect(b.surf, 0, 0, float32(w), float32(h), IndexBarRadius, ColorIndexBar)

	labels := b.View.Labels()
	n := len(labels)
	if n > 0 {
		top := float64(IndexBarInsetY)
		sh := float64(h) - 2*IndexBarInsetY
		stride := labelStride(n, sh, FontSizeIndex*1.2)
		drag := b.View.DragState()
		cx := float64(w) / 2

		if drag.Dragging {
			cy := labelCenter(drag.LastSection, n, top, sh)
			d := float32(FontSizeIndex * 1.6)
			DrawFilledRoundRect(b.surf, float32(cx)-d/2, float32(cy)-d/2, d, d, d/2, ColorPrimaryDark)
		}
		for i := 0; i < n; i += stride {
			clr := color.Color(ColorIndexLabel)
			switch {
			case drag.Dragging && i == drag.LastSection:
				clr = ColorText
			case b.ItemCount != nil && b.ItemCount(i) <= 0:
				clr = ColorIndexEmpty
			}
			DrawTextCentered(b.surf, labels[i], cx, labelCenter(i, n, top, sh), FontSizeIndex, clr)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.bar.X, b.bar.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(b.surf, op)
}

func (b *IndexBar) drawPreview(dst *ebiten.Image) {
	alpha := b.View.OverlayOpacity()
	txt := b.View.OverlayText()
	if alpha <= 0 || txt == "" || b.area.W <= 0 {
		return
	}
	tw, _ := MeasureText(txt, FontSizePreview)
	w := tw + 80
	if w < IndexPreviewW {
		w = IndexPreviewW
	}
	if w > b.area.W-2*b.Reserved() {
		w = b.area.W - 2*b.Reserved()
	}
	x := b.area.X + (b.area.W-w)/2
	y := b.area.Y + (b.area.H-IndexPreviewH)/2

	DrawFilledRoundRect(dst, float32(x), float32(y), float32(w), IndexPreviewH, 24, fade(ColorIndexPreview, alpha))
	DrawTextCenteredAlpha(dst, truncateText(txt, w-40, FontSizePreview),
		x+w/2, y+IndexPreviewH/2, FontSizePreview, ColorText, alpha)
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
