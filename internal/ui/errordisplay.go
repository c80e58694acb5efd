package ui

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copiedFrames is how long the "Copied!" feedback stays up (~2 seconds at 60fps).
const copiedFrames = 120

// ErrorDisplay draws an error message with a "Copy" button.
// Store one per screen that shows errors, call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	copyRect    Rect
	copiedTimer int // frames remaining to show "Copied!" feedback
}

// Draw renders the error text and a Copy button. Returns the total height used.
// fontSize is typically FontSizeSmall or FontSizeBody.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, errText string, x, y, fontSize float64) float64 {
	if errText == "" {
		ed.copyRect = Rect{}
		return 0
	}

	DrawText(dst, errText, x, y, fontSize, ColorError)

	// "Copy" button to the right of error text
	tw, _ := MeasureText(errText, fontSize)
	ed.copyRect = Rect{X: x + tw + 12, Y: y - 2, W: 50, H: fontSize + 6}
	r := ed.copyRect

	if ed.copiedTimer > 0 {
		ed.copiedTimer--
		DrawText(dst, "Copied!", r.X, y, FontSizeSmall, ColorSuccess)
	} else {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurface, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, ColorTextMuted, false)
		DrawTextCentered(dst, "Copy", r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, ColorTextSecondary)
	}

	return fontSize + 8
}

// HandleClick checks if the copy button was clicked. Call from Update with mouse coords.
// Returns true if the click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int, errText string) bool {
	if errText == "" || ed.copyRect.W == 0 {
		return false
	}
	if !ed.copyRect.Contains(float64(mx), float64(my)) {
		return false
	}
	if err := writeClipboard(errText); err != nil {
		log.Printf("Failed to copy error to clipboard: %v", err)
		return true
	}
	ed.copiedTimer = copiedFrames
	return true
}
