package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is read through these so tests can drive a fake pointer.
var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	appendTouchIDs       = ebiten.AppendTouchIDs
	touchPosition        = ebiten.TouchPosition
	isFocused            = ebiten.IsFocused
	wheel                = ebiten.Wheel
)

// Direction represents a navigation direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirPageUp
	DirPageDown
	DirHome
	DirEnd
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// InputState returns the current navigation direction and action keys pressed this frame.
func InputState() (dir Direction, enter, back bool) {
	switch {
	case inputRepeating(ebiten.KeyArrowUp):
		dir = DirUp
	case inputRepeating(ebiten.KeyArrowDown):
		dir = DirDown
	case inputRepeating(ebiten.KeyPageUp):
		dir = DirPageUp
	case inputRepeating(ebiten.KeyPageDown):
		dir = DirPageDown
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		dir = DirHome
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		dir = DirEnd
	}
	enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !IsModifierPressed()
	back = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
	return
}

// KeyJustPressed reports a fresh press of key without modifiers.
func KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key) && !IsModifierPressed()
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for _, k := range repeatKeys {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var (
	keyHoldFrames = make(map[ebiten.Key]int)
	repeatKeys    = []ebiten.Key{
		ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyPageUp, ebiten.KeyPageDown,
		ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyBackspace, ebiten.KeyDelete,
	}
)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	return shouldRepeat(keyHoldFrames[key])
}

// shouldRepeat reports whether a key held for frames frames fires this frame.
func shouldRepeat(frames int) bool {
	if frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = cursorPosition()
		clicked = true
	}
	return
}

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return Rect{rx, ry, rw, rh}.Contains(float64(px), float64(py))
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return wheel()
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
