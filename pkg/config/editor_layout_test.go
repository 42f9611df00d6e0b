package config

import "testing"

func TestThumbnailPosition(t *testing.T) {
	tests := []struct {
		name  string
		index int
		wantX float64
		wantY float64
	}{
		{name: "first", index: 0, wantX: PanelX, wantY: FlowerThumbsY},
		{name: "end of first row", index: 3, wantX: PanelX + 3*(ThumbnailSize+ThumbnailGap), wantY: FlowerThumbsY},
		{name: "wraps to second row", index: 4, wantX: PanelX, wantY: FlowerThumbsY + ThumbnailSize + ThumbnailGap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ThumbnailPosition(tt.index, FlowerThumbsY)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ThumbnailPosition(%d) = (%.1f, %.1f), want (%.1f, %.1f)", tt.index, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestWindowToCanvas(t *testing.T) {
	x, y := WindowToCanvas(CanvasX+10, CanvasY+20)
	if x != 10 || y != 20 {
		t.Errorf("WindowToCanvas() = (%.1f, %.1f), want (10, 20)", x, y)
	}

	if !InCanvas(0, 0) {
		t.Error("canvas origin should be inside the canvas")
	}
	if InCanvas(CanvasWidth, 0) || InCanvas(0, CanvasHeight) || InCanvas(-1, 5) {
		t.Error("points on or past the far edges should be outside the canvas")
	}
}

func TestPanelFitsLeftOfCanvas(t *testing.T) {
	// the rightmost thumbnail and the caption field must not overlap the canvas
	x, _ := ThumbnailPosition(ThumbnailsPerRow-1, FlowerThumbsY)
	if x+ThumbnailSize > CanvasX {
		t.Errorf("thumbnail row ends at %.1f, past canvas origin %d", x+ThumbnailSize, CanvasX)
	}
	if PanelX+CaptionFieldWidth > CanvasX {
		t.Errorf("caption field ends at %.1f, past canvas origin %d", PanelX+CaptionFieldWidth, CanvasX)
	}
	if PanelX+3*ToolbarButtonW+2*ToolbarGap > CanvasX {
		t.Error("toolbar overlaps the canvas")
	}
	if CanvasY+CanvasHeight > WindowHeight || CanvasX+CanvasWidth > WindowWidth {
		t.Error("canvas does not fit the window")
	}
}
