package components

// ScaleComponent is the uniform scale factor of a flower.
// 1.0 draws the flower at its stored size; the wheel changes it in steps.
type ScaleComponent struct {
	Scale float64
}
