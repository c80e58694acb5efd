package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

// InitDefaultFont loads the bundled Go Regular face.
func InitDefaultFont() error {
	return InitFonts(goregular.TTF)
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	DrawTextAlpha(dst, txt, x, y, size, clr, 1)
}

// DrawTextAlpha draws txt with its color scaled by alpha in [0, 1].
func DrawTextAlpha(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color, alpha float64) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	DrawTextCenteredAlpha(dst, txt, cx, cy, size, clr, 1)
}

func DrawTextCenteredAlpha(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color, alpha float64) {
	w, h := MeasureText(txt, size)
	DrawTextAlpha(dst, txt, cx-w/2, cy-h/2, size, clr, alpha)
}

func MeasureText(txt string, size float64) (float64, float64) {
	face := GetFace(size)
	return text.Measure(txt, face, 0)
}

// truncateText shortens s with an ellipsis until it fits maxWidth. It cuts on
// rune boundaries so multi-byte titles stay valid.
func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := strings.TrimRight(string(runes[:i]), " ") + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
