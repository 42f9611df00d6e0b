package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonType selects how a button is drawn.
type ButtonType int

const (
	// ButtonTypeLabel is a flat rectangle with a centered text label.
	ButtonTypeLabel ButtonType = iota
	// ButtonTypeThumbnail draws an image fitted into the button box
	// (catalog thumbnails).
	ButtonTypeThumbnail
)

// ButtonComponent is a clickable rectangle in window coordinates.
// Pure data; ButtonSystem drives State and fires OnClick,
// ButtonRenderSystem draws it.
type ButtonComponent struct {
	Type ButtonType

	// Label buttons
	Text string
	Font *text.GoTextFace

	// Thumbnail buttons. Image stays nil until the asset resolves.
	Image *ebiten.Image

	Width  float64
	Height float64

	State   UIState
	Enabled bool

	// IsEnabled, when set, is polled every frame to refresh Enabled
	// (e.g. Undo is enabled only while there is something to undo).
	IsEnabled func() bool

	OnClick func()
}
