package config

// Window and canvas layout.
// All canvas coordinates are canvas-local: origin at the canvas top-left,
// independent of where the canvas sits inside the window.
const (
	// WindowWidth is the logical screen width returned from Layout.
	WindowWidth = 640
	// WindowHeight is the logical screen height returned from Layout.
	WindowHeight = 480

	// CanvasX is the window X of the canvas origin.
	CanvasX = 320
	// CanvasY is the window Y of the canvas origin.
	CanvasY = 15
	// CanvasWidth is the width of the composition frame (and of the export).
	CanvasWidth = 300
	// CanvasHeight is the height of the composition frame (and of the export).
	CanvasHeight = 450
)

// Scene limits and gesture tuning.
const (
	// MaxFlowers caps the number of flowers in a bouquet. Extra adds are ignored.
	MaxFlowers = 12

	// SnapGrid is the drag placement grid in pixels.
	SnapGrid = 8.0

	// FlowerScaleStep is the per-notch wheel change of a flower's scale.
	FlowerScaleStep = 0.1
	// FlowerScaleMin is the smallest flower scale reachable with the wheel.
	FlowerScaleMin = 0.3
	// FlowerScaleMax is the largest flower scale reachable with the wheel.
	FlowerScaleMax = 3.0

	// VaseSizeStep is the per-notch wheel change of the vase width and height.
	VaseSizeStep = 10.0
	// VaseSizeMin bounds both vase dimensions from below.
	VaseSizeMin = 100.0
	// VaseSizeMax bounds both vase dimensions from above.
	VaseSizeMax = 350.0
)

// Placement of newly selected sprites.
// A new flower lands at (FlowerSpawnX + r*FlowerSpawnRangeX, FlowerSpawnY + r*FlowerSpawnRangeY)
// with r drawn independently per axis from [0, 1).
const (
	FlowerSpawnX      = 90.0
	FlowerSpawnY      = 70.0
	FlowerSpawnRangeX = 100.0
	FlowerSpawnRangeY = 120.0
	FlowerWidth       = 60.0
	FlowerHeight      = 60.0

	VaseX      = 60.0
	VaseY      = 230.0
	VaseWidth  = 180.0
	VaseHeight = 170.0
)

// Canvas rendering.
const (
	// CaptionY is the canvas baseline-area Y of the caption text.
	CaptionY = 400.0
	// CaptionFontSize is the caption font size in pixels.
	CaptionFontSize = 18.0
	// CaptionMaxLength limits the caption field, in runes.
	CaptionMaxLength = 40

	// DragOutlineWidth is the stroke width of the dragged flower outline.
	DragOutlineWidth = 2.0
	// DragOutlinePadding is how far the outline sits outside the flower box.
	DragOutlinePadding = 4.0

	// VaseShadowAlpha is the opacity of the vase drop shadow.
	VaseShadowAlpha = 0.3
	// VaseShadowBlur is the blur radius of the vase drop shadow in pixels.
	VaseShadowBlur = 20.0
)

// Export.
const (
	// ExportBaseName is the file name (without extension) of exported images.
	ExportBaseName = "bouquet"
	// ExportExtension is the extension of exported images.
	ExportExtension = ".png"
	// ExportFileName is ExportBaseName + ExportExtension.
	ExportFileName = ExportBaseName + ExportExtension
)

// Side panel (catalog, caption field, toolbar) in window coordinates.
const (
	PanelX           = 16.0
	ThumbnailSize    = 48.0
	ThumbnailGap     = 8.0
	ThumbnailsPerRow = 4

	FlowerLabelY  = 16.0
	FlowerThumbsY = 36.0
	VaseLabelY    = 156.0
	VaseThumbsY   = 176.0

	CaptionLabelY      = 244.0
	CaptionFieldY      = 264.0
	CaptionFieldWidth  = 272.0
	CaptionFieldHeight = 32.0

	ToolbarY       = 320.0
	ToolbarButtonW = 84.0
	ToolbarButtonH = 32.0
	ToolbarGap     = 10.0

	ToastY = 372.0

	UIFontSize = 14.0
)

// ThumbnailPosition returns the window position of the index-th thumbnail of
// a catalog row block starting at rowY.
func ThumbnailPosition(index int, rowY float64) (x, y float64) {
	col := index % ThumbnailsPerRow
	row := index / ThumbnailsPerRow
	x = PanelX + float64(col)*(ThumbnailSize+ThumbnailGap)
	y = rowY + float64(row)*(ThumbnailSize+ThumbnailGap)
	return x, y
}

// WindowToCanvas converts a window position into canvas-local coordinates.
func WindowToCanvas(x, y float64) (float64, float64) {
	return x - CanvasX, y - CanvasY
}

// InCanvas reports whether a canvas-local point lies inside the frame.
func InCanvas(x, y float64) bool {
	return x >= 0 && x < CanvasWidth && y >= 0 && y < CanvasHeight
}
