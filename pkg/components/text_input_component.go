package components

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// TextInputComponent is a single-line text field.
type TextInputComponent struct {
	Text string // current content

	Width  float64
	Height float64
	Font   *text.GoTextFace

	// cursor
	CursorVisible    bool    // blink phase
	CursorBlinkTimer float64 // seconds since the last blink toggle
	CursorPosition   int     // rune index

	MaxLength   int    // 0 = unlimited
	Placeholder string // shown while Text is empty and the field is unfocused

	IsFocused bool

	PaddingLeft float64

	// OnChange is called after every edit with the new content.
	OnChange func(text string)
}
