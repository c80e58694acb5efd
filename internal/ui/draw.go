package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whitePixel *ebiten.Image

func whiteSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// roundRectPath traces a rectangle with corners of the given radius. The
// radius is clamped to half the shorter side.
func roundRectPath(x, y, w, h, radius float32) *vector.Path {
	r := radius
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r < 0 {
		r = 0
	}
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

// DrawFilledRoundRect draws a filled rectangle with rounded corners.
func DrawFilledRoundRect(dst *ebiten.Image, x, y, w, h, radius float32, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if radius <= 0 {
		vector.DrawFilledRect(dst, x, y, w, h, clr, false)
		return
	}
	vs, is := roundRectPath(x, y, w, h, radius).AppendVerticesAndIndicesForFilling(nil, nil)

	cr, cg, cb, ca := clr.RGBA()
	var fr, fg, fb, fa float32
	if ca > 0 {
		// un-premultiply, the default color scale mode expects straight alpha
		fr = float32(cr) / float32(ca)
		fg = float32(cg) / float32(ca)
		fb = float32(cb) / float32(ca)
		fa = float32(ca) / 0xffff
	}
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = fr, fg, fb, fa
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSource(), op)
}

// clip returns the part of dst covered by r, for drawing that must not spill
// outside a panel.
func clip(dst *ebiten.Image, r Rect) *ebiten.Image {
	return dst.SubImage(image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))).(*ebiten.Image)
}
