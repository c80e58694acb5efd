package ui

// ScrollState provides reusable vertical scroll tracking with smooth animation.
// Embed this struct in screens that need scrollable content.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	MaxY          float64 // largest valid offset, 0 when the content fits
}

func (s *ScrollState) clamp(y float64) float64 {
	if y > s.MaxY {
		y = s.MaxY
	}
	if y < 0 {
		y = 0
	}
	return y
}

// SetContent updates the scroll range for content of the given height shown
// in a viewport of viewHeight.
func (s *ScrollState) SetContent(contentHeight, viewHeight float64) {
	s.MaxY = contentHeight - viewHeight
	if s.MaxY < 0 {
		s.MaxY = 0
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY)
	s.ScrollY = s.clamp(s.ScrollY)
}

// HandleMouseWheel updates the target scroll position from mouse wheel input.
// Call this from Update(). Reports whether the wheel moved.
func (s *ScrollState) HandleMouseWheel() bool {
	_, wy := MouseWheelDelta()
	if wy == 0 {
		return false
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY - wy*ScrollWheelSpeed)
	return true
}

// Animate performs smooth scroll interpolation. Call this from Draw().
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	if d := s.ScrollY - s.TargetScrollY; d > -0.5 && d < 0.5 {
		s.ScrollY = s.TargetScrollY
	}
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

// JumpTo moves to y immediately, skipping the animation.
func (s *ScrollState) JumpTo(y float64) {
	y = s.clamp(y)
	s.ScrollY = y
	s.TargetScrollY = y
}

// EnsureVisible scrolls the least amount that brings [top, bottom) into a
// viewport of viewHeight.
func (s *ScrollState) EnsureVisible(top, bottom, viewHeight float64) {
	if bottom > viewHeight+s.TargetScrollY {
		s.TargetScrollY = bottom - viewHeight
	}
	if top < s.TargetScrollY {
		s.TargetScrollY = top
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY)
}
