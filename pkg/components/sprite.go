package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent holds the asset a sprite is drawn from.
//
// Path is the authoritative, serializable part. Image is derived from Path
// by the asset resolver and stays nil until resolution completes; the
// renderer skips sprites whose Image is nil.
type SpriteComponent struct {
	Path  string        // asset path, e.g. "assets/flowers/rose.png"
	Image *ebiten.Image // resolved bitmap, nil while pending
}
