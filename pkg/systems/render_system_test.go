package systems

import (
	"image/color"
	"testing"

	"github.com/archit-roy/interactive-bouquet/pkg/bouquet"
	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestFlowerDrawRect(t *testing.T) {
	tests := []struct {
		name       string
		sprite     bouquet.Sprite
		x, y, w, h float64
	}{
		{"原始大小", bouquet.Sprite{X: 10, Y: 20, Width: 60, Height: 60, Scale: 1}, 10, 20, 60, 60},
		{"放大两倍", bouquet.Sprite{X: 10, Y: 20, Width: 60, Height: 60, Scale: 2}, -20, -10, 120, 120},
		{"缩小一半", bouquet.Sprite{X: 0, Y: 0, Width: 40, Height: 20, Scale: 0.5}, 10, 5, 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := FlowerDrawRect(tt.sprite)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("got (%v,%v,%v,%v), want (%v,%v,%v,%v)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestOutlineRect(t *testing.T) {
	f := bouquet.Sprite{X: 100, Y: 100, Width: 60, Height: 60, Scale: 1}
	x, y, w, h := OutlineRect(f)
	pad := config.DragOutlinePadding
	if x != 100-pad || y != 100-pad || w != 60+2*pad || h != 60+2*pad {
		t.Errorf("Unexpected outline (%v,%v,%v,%v)", x, y, w, h)
	}

	f.Scale = 2
	x, _, w, _ = OutlineRect(f)
	if w != (60+2*pad)*2 || x != 130-w/2 {
		t.Errorf("描边应随花朵绕中心缩放, got x=%v w=%v", x, w)
	}
}

func TestShadowOffsets(t *testing.T) {
	offsets := shadowOffsets()
	if len(offsets) == 0 {
		t.Fatal("Expected shadow layers")
	}
	for _, off := range offsets {
		if d := off[0]*off[0] + off[1]*off[1]; d > config.VaseShadowBlur*config.VaseShadowBlur {
			t.Errorf("投影偏移超出模糊半径: %v", off)
		}
		if off[2] <= 0 || off[2] > config.VaseShadowAlpha {
			t.Errorf("Unexpected layer alpha %v", off[2])
		}
	}
}

func TestRenderSystemRepaintsOnlyWhenDirty(t *testing.T) {
	editor := bouquet.NewEditor(bouquet.Options{})
	s := NewRenderSystem(editor, nil, color.Black, color.White)
	screen := ebiten.NewImage(config.WindowWidth, config.WindowHeight)

	s.Draw(screen)
	if s.Repaints() != 1 {
		t.Fatalf("首帧应重绘一次, got %d", s.Repaints())
	}
	s.Draw(screen)
	if s.Repaints() != 1 {
		t.Errorf("未修改时不应重绘, got %d", s.Repaints())
	}

	editor.SetCaption("hello")
	editor.AddFlower("assets/flowers/rose.png")
	s.Draw(screen)
	if s.Repaints() != 2 {
		t.Errorf("同一帧内的多次修改应合并为一次重绘, got %d", s.Repaints())
	}

	if b := s.Canvas().Bounds(); b.Dx() != config.CanvasWidth || b.Dy() != config.CanvasHeight {
		t.Errorf("Unexpected canvas size %v", b)
	}
}
