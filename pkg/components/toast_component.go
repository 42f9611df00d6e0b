package components

import "github.com/tanema/gween"

// ToastComponent is a short status message that fades out.
// Alpha is driven by Fade; the entity is removed when Fade finishes.
type ToastComponent struct {
	Text  string
	Alpha float32
	Fade  *gween.Tween
	Error bool
}
