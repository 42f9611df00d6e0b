package bouquet

import (
	"log"
	"math/rand"
	"time"

	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageResolver turns an asset path into a bitmap, asynchronously.
//
// done is called at most once, on the game loop goroutine, when the image
// is available. A path that cannot be loaded never calls done.
// Resolving the same path again is allowed and cheap.
type ImageResolver interface {
	Resolve(path string, done func(img *ebiten.Image))
}

// Options configures an Editor.
type Options struct {
	// Resolver loads sprite bitmaps. Nil leaves every sprite pending,
	// which is enough for headless use and tests.
	Resolver ImageResolver

	// Rand jitters the spawn position of new flowers.
	// Defaults to a time-seeded source.
	Rand *rand.Rand
}

// Editor is the single owner of a bouquet. UI code calls into it and never
// touches the Model directly: every mutation records history first and
// marks the canvas dirty.
type Editor struct {
	model       *Model
	history     *History
	interaction *Interaction
	resolver    ImageResolver
	rng         *rand.Rand
	dirty       bool
}

// NewEditor creates an editor over an empty bouquet.
func NewEditor(opts Options) *Editor {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	model := NewModel()
	return &Editor{
		model:       model,
		history:     NewHistory(),
		interaction: NewInteraction(model),
		resolver:    opts.Resolver,
		rng:         rng,
		dirty:       true, // first frame paints the empty canvas
	}
}

// Model exposes the bouquet for reading.
func (e *Editor) Model() *Model {
	return e.model
}

// History exposes the undo/redo stacks for reading.
func (e *Editor) History() *History {
	return e.history
}

// AddFlower places a new flower from the catalog on top of the bouquet.
// Silently ignored once the bouquet is full.
func (e *Editor) AddFlower(path string) bool {
	if e.model.FlowerCount() >= config.MaxFlowers {
		log.Printf("[Editor] Flower cap (%d) reached, ignoring %s", config.MaxFlowers, path)
		return false
	}
	e.record()

	id, ok := e.model.AddFlower(SpriteState{
		Path:   path,
		X:      config.FlowerSpawnX + e.rng.Float64()*config.FlowerSpawnRangeX,
		Y:      config.FlowerSpawnY + e.rng.Float64()*config.FlowerSpawnRangeY,
		Width:  config.FlowerWidth,
		Height: config.FlowerHeight,
		Scale:  1,
	})
	if !ok {
		return false
	}
	log.Printf("[Editor] Added flower #%d (%s), %d/%d", id, path, e.model.FlowerCount(), config.MaxFlowers)
	e.resolve(id, path)
	e.dirty = true
	return true
}

// SelectVase replaces the vase with a new one from the catalog.
func (e *Editor) SelectVase(path string) {
	e.record()

	id := e.model.SetVase(SpriteState{
		Path:   path,
		X:      config.VaseX,
		Y:      config.VaseY,
		Width:  config.VaseWidth,
		Height: config.VaseHeight,
	})
	log.Printf("[Editor] Selected vase #%d (%s)", id, path)
	e.resolve(id, path)
	e.dirty = true
}

// SetCaption replaces the caption. Each call is its own history entry.
func (e *Editor) SetCaption(text string) {
	e.record()
	e.model.SetCaption(text)
	e.dirty = true
}

// Undo restores the bouquet as it was before the last recorded action.
// No-op when there is nothing to undo.
func (e *Editor) Undo() bool {
	prev, ok := e.history.Undo(e.model.Snapshot())
	if !ok {
		return false
	}
	e.install(prev)
	log.Printf("[Editor] Undo: %d flowers, vase=%t", len(prev.Flowers), prev.Vase != nil)
	return true
}

// Redo re-applies the last undone action. No-op when there is nothing to redo.
func (e *Editor) Redo() bool {
	next, ok := e.history.Redo(e.model.Snapshot())
	if !ok {
		return false
	}
	e.install(next)
	log.Printf("[Editor] Redo: %d flowers, vase=%t", len(next.Flowers), next.Vase != nil)
	return true
}

// CanUndo reports whether Undo would do anything.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// PointerDown starts dragging the topmost flower under the canvas-local
// point (x, y), raising it to the top. Neither the raise nor the move is
// recorded in history.
func (e *Editor) PointerDown(x, y float64) bool {
	if !e.interaction.BeginDrag(x, y) {
		return false
	}
	e.dirty = true
	return true
}

// PointerMove drags the active flower, if any.
func (e *Editor) PointerMove(x, y float64) {
	if e.interaction.DragTo(x, y) {
		e.dirty = true
	}
}

// PointerUp ends the active drag, if any. Also used when the pointer
// leaves the canvas.
func (e *Editor) PointerUp() {
	e.interaction.EndDrag()
	e.dirty = true
}

// Wheel resizes the sprite under (x, y) by one notch.
func (e *Editor) Wheel(x, y float64, dir WheelDirection) bool {
	if !e.interaction.Wheel(x, y, dir, e.record) {
		return false
	}
	e.dirty = true
	return true
}

// Dragged returns the flower being dragged, 0 when none.
func (e *Editor) Dragged() ecs.EntityID {
	return e.interaction.Dragged()
}

// MarkDirty forces a repaint on the next frame.
func (e *Editor) MarkDirty() {
	e.dirty = true
}

// ConsumeDirty reports whether a repaint is due and clears the flag.
func (e *Editor) ConsumeDirty() bool {
	d := e.dirty
	e.dirty = false
	return d
}

// record checkpoints the current bouquet. Called before every mutation.
func (e *Editor) record() {
	e.history.Record(e.model.Snapshot())
}

// install replaces the bouquet with s and asks for every bitmap again.
func (e *Editor) install(s Snapshot) {
	e.interaction.Reset()
	e.model.Restore(s)
	for _, f := range e.model.Flowers() {
		e.resolve(f.ID, f.Path)
	}
	if v, ok := e.model.Vase(); ok {
		e.resolve(v.ID, v.Path)
	}
	e.dirty = true
}

// resolve requests the bitmap of a sprite. The completion targets the
// sprite ID, so it is dropped if the sprite was replaced in the meantime
// and lands on the right sprite however the paint order changed.
func (e *Editor) resolve(id ecs.EntityID, path string) {
	if e.resolver == nil {
		return
	}
	e.resolver.Resolve(path, func(img *ebiten.Image) {
		if e.model.SetImage(id, img) {
			e.dirty = true
		}
	})
}
