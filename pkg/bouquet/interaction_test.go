package bouquet

import (
	"testing"

	"github.com/archit-roy/interactive-bouquet/pkg/config"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{3.9, 0},
		{4, 8},
		{101, 104},
		{203, 200},
		{204, 208},
		{-4, 0},
		{-5, -8},
	}
	for _, tt := range tests {
		if got := Snap(tt.in); got != tt.want {
			t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFlowerAtTopmost(t *testing.T) {
	m := NewModel()
	bottom, _ := m.AddFlower(flowerState("bottom", 0, 0))
	top, _ := m.AddFlower(flowerState("top", 30, 30))
	in := NewInteraction(m)

	tests := []struct {
		name   string
		x, y   float64
		want   uint64
		wantOK bool
	}{
		{"overlap picks topmost", 40, 40, uint64(top), true},
		{"only bottom", 10, 10, uint64(bottom), true},
		{"left edge inclusive", 0, 0, uint64(bottom), true},
		{"right edge exclusive", 90, 40, 0, false},
		{"miss", 200, 200, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := in.FlowerAt(tt.x, tt.y)
			if ok != tt.wantOK || uint64(id) != tt.want {
				t.Errorf("FlowerAt(%v,%v) = %d,%t want %d,%t", tt.x, tt.y, id, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDragRaisesAndSnaps(t *testing.T) {
	m := NewModel()
	a, _ := m.AddFlower(flowerState("a", 100, 200))
	m.AddFlower(flowerState("b", 300, 300))
	in := NewInteraction(m)

	if !in.BeginDrag(110, 210) {
		t.Fatal("Expected drag to start on flower a")
	}
	flowers := m.Flowers()
	if flowers[len(flowers)-1].ID != a {
		t.Error("Dragged flower should be topmost")
	}

	// Offset (10,10); target origin (101,203) snaps to (104,200).
	in.DragTo(111, 213)
	s, _ := m.Sprite(a)
	if s.X != 104 || s.Y != 200 {
		t.Errorf("Expected snapped origin (104,200), got (%v,%v)", s.X, s.Y)
	}

	if !in.EndDrag() {
		t.Error("EndDrag should report an active drag")
	}
	if in.EndDrag() {
		t.Error("Second EndDrag should be a no-op")
	}
	if in.DragTo(0, 0) {
		t.Error("DragTo without a drag should do nothing")
	}
}

func TestBeginDragMiss(t *testing.T) {
	m := NewModel()
	m.AddFlower(flowerState("a", 0, 0))
	in := NewInteraction(m)

	if in.BeginDrag(250, 250) {
		t.Error("Drag should not start on empty canvas")
	}
	if in.Dragged() != 0 {
		t.Error("Expected no active drag")
	}
}

func TestWheelFlowerScaleClamp(t *testing.T) {
	m := NewModel()
	id, _ := m.AddFlower(flowerState("a", 0, 0))
	in := NewInteraction(m)

	for i := 0; i < 40; i++ {
		in.Wheel(10, 10, WheelUp, nil)
	}
	s, _ := m.Sprite(id)
	if s.Scale != config.FlowerScaleMax {
		t.Errorf("Expected scale clamped to %v, got %v", config.FlowerScaleMax, s.Scale)
	}

	for i := 0; i < 40; i++ {
		in.Wheel(10, 10, WheelDown, nil)
	}
	s, _ = m.Sprite(id)
	if s.Scale != config.FlowerScaleMin {
		t.Errorf("Expected scale clamped to %v, got %v", config.FlowerScaleMin, s.Scale)
	}
}

func TestWheelFlowerBeforeVase(t *testing.T) {
	m := NewModel()
	vase := m.SetVase(SpriteState{Path: "v", X: 0, Y: 0, Width: 180, Height: 170})
	flower, _ := m.AddFlower(flowerState("a", 10, 10))
	in := NewInteraction(m)

	in.Wheel(20, 20, WheelUp, nil)

	f, _ := m.Sprite(flower)
	v, _ := m.Sprite(vase)
	if f.Scale != 1.1 {
		t.Errorf("Expected flower scale 1.1, got %v", f.Scale)
	}
	if v.Width != 180 || v.Height != 170 {
		t.Errorf("Vase should be untouched, got %vx%v", v.Width, v.Height)
	}
}

func TestWheelVaseClamp(t *testing.T) {
	m := NewModel()
	id := m.SetVase(SpriteState{Path: "v", X: 0, Y: 0, Width: 180, Height: 110})
	in := NewInteraction(m)

	in.Wheel(5, 5, WheelDown, nil)
	v, _ := m.Sprite(id)
	if v.Width != 170 || v.Height != 100 {
		t.Errorf("Expected 170x100, got %vx%v", v.Width, v.Height)
	}

	in.Wheel(5, 5, WheelDown, nil)
	v, _ = m.Sprite(id)
	if v.Width != 160 || v.Height != 100 {
		t.Errorf("Expected dimensions clamped independently to 160x100, got %vx%v", v.Width, v.Height)
	}

	for i := 0; i < 30; i++ {
		in.Wheel(5, 5, WheelUp, nil)
	}
	v, _ = m.Sprite(id)
	if v.Width != config.VaseSizeMax || v.Height != config.VaseSizeMax {
		t.Errorf("Expected %v square, got %vx%v", config.VaseSizeMax, v.Width, v.Height)
	}
}

func TestWheelMiss(t *testing.T) {
	m := NewModel()
	in := NewInteraction(m)
	called := false
	if in.Wheel(10, 10, WheelUp, func() { called = true }) {
		t.Error("Wheel over empty canvas should do nothing")
	}
	if called {
		t.Error("Wheel miss must not record history")
	}
}
