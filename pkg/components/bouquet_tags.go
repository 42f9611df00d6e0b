package components

// FlowerComponent tags a sprite entity as a flower.
type FlowerComponent struct{}

// VaseComponent tags a sprite entity as the vase.
type VaseComponent struct{}
