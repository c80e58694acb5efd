package ui

import (
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll

// TextInput is a single-line editable field with a rune cursor.
type TextInput struct {
	Text   string
	Cursor int  // rune position within Text
	Masked bool // draw every rune as a bullet
}

// NewTextInput creates a TextInput initialized with the given text and cursor at the end.
func NewTextInput(text string) TextInput {
	return TextInput{
		Text:   text,
		Cursor: utf8.RuneCountInString(text),
	}
}

// SetText replaces the text and moves cursor to the end.
func (ti *TextInput) SetText(text string) {
	ti.Text = text
	ti.Cursor = utf8.RuneCountInString(text)
}

// Clear resets the text and cursor.
func (ti *TextInput) Clear() {
	ti.Text = ""
	ti.Cursor = 0
}

// Insert adds s at the cursor, dropping control characters and newlines.
// Reports whether anything was inserted.
func (ti *TextInput) Insert(s string) bool {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return false
	}
	before, after := ti.splitAtCursor()
	ti.Text = before + s + after
	ti.Cursor += utf8.RuneCountInString(s)
	return true
}

// Backspace deletes the rune before the cursor.
func (ti *TextInput) Backspace() bool {
	if ti.Cursor == 0 {
		return false
	}
	before, after := ti.splitAtCursor()
	_, size := utf8.DecodeLastRuneInString(before)
	ti.Text = before[:len(before)-size] + after
	ti.Cursor--
	return true
}

// Delete deletes the rune after the cursor.
func (ti *TextInput) Delete() bool {
	before, after := ti.splitAtCursor()
	if after == "" {
		return false
	}
	_, size := utf8.DecodeRuneInString(after)
	ti.Text = before + after[size:]
	return true
}

// Move shifts the cursor by delta runes, clamped to the text.
func (ti *TextInput) Move(delta int) {
	ti.Cursor += delta
	if ti.Cursor < 0 {
		ti.Cursor = 0
	}
	if n := utf8.RuneCountInString(ti.Text); ti.Cursor > n {
		ti.Cursor = n
	}
}

// Paste inserts the clipboard contents at the cursor.
func (ti *TextInput) Paste() bool {
	clip, err := readClipboard()
	if err != nil {
		log.Printf("Failed to read clipboard: %v", err)
		return false
	}
	return ti.Insert(clip)
}

// Update processes keyboard input. Returns true if the text changed.
func (ti *TextInput) Update() bool {
	changed := false

	if inputRepeating(ebiten.KeyArrowLeft) {
		ti.Move(-1)
	}
	if inputRepeating(ebiten.KeyArrowRight) {
		ti.Move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ti.Cursor = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		ti.Move(len(ti.Text))
	}

	// Ctrl+V paste from clipboard
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) {
		changed = ti.Paste() || changed
	} else if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		changed = ti.Insert(string(chars)) || changed
	}

	if inputRepeating(ebiten.KeyBackspace) {
		changed = ti.Backspace() || changed
	}
	if inputRepeating(ebiten.KeyDelete) {
		changed = ti.Delete() || changed
	}
	return changed
}

// DisplayText returns the text as drawn, with a cursor bar when focused.
func (ti *TextInput) DisplayText(focused bool) string {
	before, after := ti.splitAtCursor()
	if ti.Masked {
		before = strings.Repeat("•", utf8.RuneCountInString(before))
		after = strings.Repeat("•", utf8.RuneCountInString(after))
	}
	if !focused {
		return before + after
	}
	return before + "│" + after
}

// splitAtCursor returns the text before and after the cursor position.
func (ti *TextInput) splitAtCursor() (before, after string) {
	bytePos := 0
	for i := 0; i < ti.Cursor && bytePos < len(ti.Text); i++ {
		_, size := utf8.DecodeRuneInString(ti.Text[bytePos:])
		bytePos += size
	}
	return ti.Text[:bytePos], ti.Text[bytePos:]
}
