package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/couchindex/internal/indexview"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// IndexViewer is implemented by screens that host an index bar.
type IndexViewer interface {
	IndexView() *indexview.IndexView
}

// debugLines describes the state of an index view, one fact per line.
func debugLines(v *indexview.IndexView, now time.Time) []string {
	vis := v.Visibility()
	drag := v.DragState()
	lines := []string{
		fmt.Sprintf("sections: %d  surface: %.0fpx  edge: %s", len(v.Labels()), v.SurfaceHeight(), v.Edge()),
		fmt.Sprintf("visibility: %s  opacity: %.2f  fading: %t", vis.State(), vis.Opacity(), vis.Animating()),
		fmt.Sprintf("dragging: %t  last section: %d  last path: %d/%d", drag.Dragging, drag.LastSection, drag.LastPath.Section, drag.LastPath.Item),
		fmt.Sprintf("scroll to section top: %t  hide deferred: %t", v.ScrollsToSectionTop(), vis.HideDeferred()),
	}
	if dl, ok := vis.Deadline(); ok {
		lines = append(lines, fmt.Sprintf("flash deadline in %s", dl.Sub(now).Truncate(time.Millisecond)))
	}
	if t := v.OverlayText(); t != "" {
		lines = append(lines, fmt.Sprintf("preview: %q  opacity: %.2f", t, v.OverlayOpacity()))
	}
	return lines
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, current Screen) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	var lines []string
	if iv, ok := current.(IndexViewer); ok {
		lines = debugLines(iv.IndexView(), time.Now())
	} else {
		lines = []string{"(no index view on this screen)"}
	}

	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW := 560.0
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: Index View (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
