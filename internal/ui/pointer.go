package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/couchindex/internal/indexview"
)

// PointerSample is one pointer transition in screen coordinates.
type PointerSample struct {
	Phase indexview.Phase
	X, Y  int
}

// PointerTracker merges the left mouse button and the first touch into a
// single press/drag/release stream. It is polled once per frame.
type PointerTracker struct {
	down    bool
	touch   bool
	touchID ebiten.TouchID
	x, y    int

	mouseWasDown bool
	touchWasDown bool
	touches      []ebiten.TouchID
}

// Active reports whether a press is in progress.
func (p *PointerTracker) Active() bool { return p.down }

// Poll reads the pointer state and returns at most one transition. Losing
// window focus mid-press yields PhaseCancelled.
func (p *PointerTracker) Poll() (PointerSample, bool) {
	p.touches = appendTouchIDs(p.touches[:0])
	mouseDown := isMouseButtonPressed(ebiten.MouseButtonLeft)
	touchDown := len(p.touches) > 0
	defer func() {
		p.mouseWasDown = mouseDown
		p.touchWasDown = touchDown
	}()

	if p.down {
		return p.track(mouseDown)
	}
	if !isFocused() {
		return PointerSample{}, false
	}

	switch {
	case touchDown && !p.touchWasDown:
		p.down, p.touch = true, true
		p.touchID = p.touches[0]
		p.x, p.y = touchPosition(p.touchID)
	case mouseDown && !p.mouseWasDown:
		p.down, p.touch = true, false
		p.x, p.y = cursorPosition()
	default:
		return PointerSample{}, false
	}
	return p.sample(indexview.PhaseBegan), true
}

func (p *PointerTracker) track(mouseDown bool) (PointerSample, bool) {
	if !isFocused() {
		p.down = false
		return p.sample(indexview.PhaseCancelled), true
	}

	var x, y int
	if p.touch {
		if !p.hasTouch(p.touchID) {
			p.down = false
			return p.sample(indexview.PhaseEnded), true
		}
		x, y = touchPosition(p.touchID)
	} else {
		if !mouseDown {
			p.down = false
			return p.sample(indexview.PhaseEnded), true
		}
		x, y = cursorPosition()
	}

	if x == p.x && y == p.y {
		return PointerSample{}, false
	}
	p.x, p.y = x, y
	return p.sample(indexview.PhaseChanged), true
}

func (p *PointerTracker) hasTouch(id ebiten.TouchID) bool {
	for _, t := range p.touches {
		if t == id {
			return true
		}
	}
	return false
}

func (p *PointerTracker) sample(phase indexview.Phase) PointerSample {
	return PointerSample{Phase: phase, X: p.x, Y: p.y}
}
