package components

// BoundsComponent is an axis-aligned box in canvas pixels, top-left origin.
//
// For flowers the box is the unscaled footprint; the drawn footprint is the
// box scaled by ScaleComponent about its center. Hit testing uses the box
// as stored.
type BoundsComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies in [X, X+Width) x [Y, Y+Height).
func (b *BoundsComponent) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}
