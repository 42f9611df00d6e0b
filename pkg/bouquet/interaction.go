package bouquet

import (
	"math"

	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
)

// WheelDirection is the direction of one wheel notch.
type WheelDirection int

const (
	// WheelUp grows the sprite under the pointer.
	WheelUp WheelDirection = iota
	// WheelDown shrinks the sprite under the pointer.
	WheelDown
)

// Snap rounds v to the nearest multiple of config.SnapGrid. Halves round
// up, so Snap(4) == 8 and Snap(-4) == 0.
func Snap(v float64) float64 {
	return math.Floor(v/config.SnapGrid+0.5) * config.SnapGrid
}

// Interaction turns canvas-local pointer and wheel input into drag, drop
// and resize operations on a Model.
//
// Hit testing uses each sprite's stored box and ignores the flower scale,
// so once a flower is scaled its clickable area and its drawn area differ.
type Interaction struct {
	model   *Model
	dragged ecs.EntityID // 0 = no active drag
	offsetX float64
	offsetY float64
}

// NewInteraction creates an interaction engine bound to model.
func NewInteraction(model *Model) *Interaction {
	return &Interaction{model: model}
}

// Dragged returns the flower being dragged, 0 when none.
func (in *Interaction) Dragged() ecs.EntityID {
	return in.dragged
}

// FlowerAt returns the topmost flower whose box contains (x, y).
func (in *Interaction) FlowerAt(x, y float64) (ecs.EntityID, bool) {
	ids := in.model.flowerIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		b, ok := in.model.bounds(ids[i])
		if ok && b.Contains(x, y) {
			return ids[i], true
		}
	}
	return 0, false
}

// VaseAt reports whether the vase box contains (x, y).
func (in *Interaction) VaseAt(x, y float64) (ecs.EntityID, bool) {
	id := in.model.vaseID()
	if id == 0 {
		return 0, false
	}
	b, ok := in.model.bounds(id)
	if !ok || !b.Contains(x, y) {
		return 0, false
	}
	return id, true
}

// BeginDrag starts dragging the topmost flower under (x, y): the flower is
// raised to the top of the paint order and the pointer offset from its
// origin is remembered. Drags are not history entries.
// Returns false, changing nothing, when no flower is hit.
func (in *Interaction) BeginDrag(x, y float64) bool {
	id, ok := in.FlowerAt(x, y)
	if !ok {
		return false
	}

	b, _ := in.model.bounds(id)
	in.model.raiseFlower(id)
	in.dragged = id
	in.offsetX = x - b.X
	in.offsetY = y - b.Y
	return true
}

// DragTo moves the dragged flower so it keeps its offset from the pointer,
// snapped to the grid. Returns false when nothing is being dragged.
func (in *Interaction) DragTo(x, y float64) bool {
	if in.dragged == 0 {
		return false
	}
	b, ok := in.model.bounds(in.dragged)
	if !ok {
		in.dragged = 0
		return false
	}
	b.X = Snap(x - in.offsetX)
	b.Y = Snap(y - in.offsetY)
	return true
}

// EndDrag drops the dragged flower. Safe to call with no active drag;
// returns whether a drag was active.
func (in *Interaction) EndDrag() bool {
	was := in.dragged != 0
	in.dragged = 0
	in.offsetX, in.offsetY = 0, 0
	return was
}

// Wheel resizes the sprite under (x, y). Flowers are tested first, topmost
// first; a flower hit changes its scale by config.FlowerScaleStep and the
// vase is not considered. Otherwise a vase hit changes both vase
// dimensions by config.VaseSizeStep. record runs right before the change.
// Returns whether anything was hit.
func (in *Interaction) Wheel(x, y float64, dir WheelDirection, record func()) bool {
	if id, ok := in.FlowerAt(x, y); ok {
		sc, ok := in.model.scale(id)
		if !ok {
			return false
		}
		if record != nil {
			record()
		}
		delta := config.FlowerScaleStep
		if dir == WheelDown {
			delta = -delta
		}
		sc.Scale = clamp(roundTenth(sc.Scale+delta), config.FlowerScaleMin, config.FlowerScaleMax)
		return true
	}

	if id, ok := in.VaseAt(x, y); ok {
		b, _ := in.model.bounds(id)
		if record != nil {
			record()
		}
		delta := config.VaseSizeStep
		if dir == WheelDown {
			delta = -delta
		}
		b.Width = clamp(b.Width+delta, config.VaseSizeMin, config.VaseSizeMax)
		b.Height = clamp(b.Height+delta, config.VaseSizeMin, config.VaseSizeMax)
		return true
	}

	return false
}

// Reset forgets the active drag, used after the model was replaced.
func (in *Interaction) Reset() {
	in.EndDrag()
}

// roundTenth rounds v to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
