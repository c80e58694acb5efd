package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var vibrate = ebiten.Vibrate

// Haptics emits the selection tick when the index bar crosses a section.
// Vibrate is a no-op on platforms without a vibration motor.
type Haptics struct {
	Enabled   bool
	Duration  time.Duration
	Magnitude float64
}

const defaultHapticMagnitude = 0.5

func (h *Haptics) Pulse() {
	if !h.Enabled || h.Duration <= 0 {
		return
	}
	mag := h.Magnitude
	if mag <= 0 {
		mag = defaultHapticMagnitude
	}
	vibrate(&ebiten.VibrateOptions{Duration: h.Duration, Magnitude: mag})
}
