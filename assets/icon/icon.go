// Package icon draws the window icon: a list with an index bar along its
// right edge and one highlighted section.
package icon

import (
	"image"
	"image/color"
)

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	rowCol     = color.RGBA{R: 0x3A, G: 0x3A, B: 0x48, A: 0xFF}
	headerCol  = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	barCol     = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xE0}
	dotCol     = color.RGBA{R: 0xB0, G: 0xB0, B: 0xC0, A: 0xFF}
	thumbCol   = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, background)
	drawList(img, s)
	drawIndexBar(img, s)
	return img
}

// drawList draws two sections: a header bar followed by item rows.
func drawList(img *image.RGBA, s float64) {
	x := s * 0.10
	w := s * 0.60
	y := s * 0.12
	for section := 0; section < 2; section++ {
		fillRoundedRect(img, x, y, w*0.35, s*0.07, s*0.02, headerCol)
		y += s * 0.11
		for row := 0; row < 2; row++ {
			rw := w * (0.95 - 0.2*float64(row))
			fillRoundedRect(img, x+s*0.04, y, rw, s*0.06, s*0.02, rowCol)
			y += s * 0.10
		}
		y += s * 0.03
	}
}

// drawIndexBar draws the bar with a dot per section and the touched section
// enlarged.
func drawIndexBar(img *image.RGBA, s float64) {
	x := s * 0.76
	w := s * 0.14
	y := s * 0.08
	h := s * 0.84
	fillRoundedRect(img, x, y, w, h, w/2, barCol)

	const dots = 7
	const touched = 2
	cx := x + w/2
	step := (h - w) / (dots - 1)
	for i := 0; i < dots; i++ {
		cy := y + w/2 + float64(i)*step
		r := s * 0.025
		c := dotCol
		if i == touched {
			r = s * 0.05
			c = thumbCol
		}
		fillRoundedRect(img, cx-r, cy-r, 2*r, 2*r, r, c)
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillRoundedRect fills a rectangle whose corners are quarter circles of
// radius rf.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	bounds := img.Bounds()
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			if insideRounded(float64(x), float64(y), xf, yf, wf, hf, rf) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func insideRounded(px, py, x, y, w, h, r float64) bool {
	cx := clamp(px, x+r, x+w-r)
	cy := clamp(py, y+r, y+h-r)
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// c.RGBA is premultiplied
	inv := 0xFFFF - a0
	nr := r0 + er*inv/0xFFFF
	ng := g0 + eg*inv/0xFFFF
	nb := b0 + eb*inv/0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
