package ui

import "image/color"

// Colors: dark theme inspired by Jellyfin branding
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF} // Jellyfin blue
	ColorPrimaryDark   = color.RGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	ColorIndexBar     = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorIndexLabel   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorIndexEmpty   = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorIndexPreview = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xE8}
)

// Layout constants
const (
	ScreenWidth  = 1920
	ScreenHeight = 1080

	HeaderHeight = 72
	FooterHeight = 40
	ListPadding  = 40

	RowHeight           = 44
	SectionHeaderHeight = 40

	IndexBarWidth  = 36
	IndexBarMargin = 12
	IndexBarInsetY = 16 // vertical padding inside the bar
	IndexBarRadius = 18
	IndexPreviewW  = 520
	IndexPreviewH  = 140
	IndexHitSlop   = 16 // extra grab width beside the bar

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 18
	FontSizeSmall   = 13
	FontSizeIndex   = 15
	FontSizePreview = 48

	ScrollAnimSpeed = 0.12

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
)
