// Package bouquet holds the editable bouquet: the scene model, its
// snapshot history and the pointer/wheel interaction engine, all driven
// through a single Editor.
//
// Everything in this package runs on the game loop goroutine. Asynchronous
// work (asset resolution) reports back through callbacks that the caller
// delivers on that same goroutine.
package bouquet

import (
	"github.com/archit-roy/interactive-bouquet/pkg/components"
	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// Kind distinguishes flowers from the vase.
type Kind int

const (
	KindFlower Kind = iota
	KindVase
)

// Sprite is a read-only view of one placed sprite.
type Sprite struct {
	ID     ecs.EntityID
	Kind   Kind
	Path   string
	Image  *ebiten.Image // nil while the asset is pending
	X      float64
	Y      float64
	Width  float64
	Height float64
	Scale  float64 // 1 for the vase
}

// Model is the bouquet being edited: an ordered list of flowers (paint
// order, last is topmost), at most one vase and a caption.
//
// Sprites live as entities in an EntityManager so each keeps a stable ID
// while its list position changes.
type Model struct {
	em      *ecs.EntityManager
	flowers []ecs.EntityID
	vase    ecs.EntityID // 0 = no vase
	caption string
}

// NewModel creates an empty bouquet.
func NewModel() *Model {
	return &Model{em: ecs.NewEntityManager()}
}

// AddFlower appends a flower on top of the others. It is a no-op returning
// false once the bouquet holds config.MaxFlowers flowers.
func (m *Model) AddFlower(state SpriteState) (ecs.EntityID, bool) {
	if len(m.flowers) >= config.MaxFlowers {
		return 0, false
	}
	if state.Scale == 0 {
		state.Scale = 1
	}
	id := m.createSprite(state)
	m.em.AddComponent(id, &components.FlowerComponent{})
	m.em.AddComponent(id, &components.ScaleComponent{Scale: state.Scale})
	m.flowers = append(m.flowers, id)
	return id, true
}

// SetVase replaces the vase, if any, with a new one.
func (m *Model) SetVase(state SpriteState) ecs.EntityID {
	if m.vase != 0 {
		m.em.DestroyEntity(m.vase)
		m.em.RemoveMarkedEntities()
	}
	id := m.createSprite(state)
	m.em.AddComponent(id, &components.VaseComponent{})
	m.vase = id
	return id
}

// SetCaption replaces the caption.
func (m *Model) SetCaption(text string) {
	m.caption = text
}

// Caption returns the caption.
func (m *Model) Caption() string {
	return m.caption
}

// FlowerCount returns the number of flowers.
func (m *Model) FlowerCount() int {
	return len(m.flowers)
}

// Flowers returns the flowers in paint order.
func (m *Model) Flowers() []Sprite {
	out := make([]Sprite, 0, len(m.flowers))
	for _, id := range m.flowers {
		if s, ok := m.Sprite(id); ok {
			out = append(out, s)
		}
	}
	return out
}

// Vase returns the vase, if one has been selected.
func (m *Model) Vase() (Sprite, bool) {
	if m.vase == 0 {
		return Sprite{}, false
	}
	return m.Sprite(m.vase)
}

// Sprite returns the sprite with the given ID.
func (m *Model) Sprite(id ecs.EntityID) (Sprite, bool) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](m.em, id)
	if !ok {
		return Sprite{}, false
	}
	bounds, ok := ecs.GetComponent[*components.BoundsComponent](m.em, id)
	if !ok {
		return Sprite{}, false
	}

	s := Sprite{
		ID:     id,
		Kind:   KindVase,
		Path:   sprite.Path,
		Image:  sprite.Image,
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  bounds.Width,
		Height: bounds.Height,
		Scale:  1,
	}
	if ecs.HasComponent[*components.FlowerComponent](m.em, id) {
		s.Kind = KindFlower
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](m.em, id); ok {
			s.Scale = scale.Scale
		}
	}
	return s, true
}

// SetImage fills in the resolved bitmap of a sprite. Returns false when the
// sprite no longer exists (it was dropped by a restore in the meantime).
func (m *Model) SetImage(id ecs.EntityID, img *ebiten.Image) bool {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](m.em, id)
	if !ok {
		return false
	}
	sprite.Image = img
	return true
}

// Snapshot returns a deep copy of the bouquet without bitmaps.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Flowers: make([]SpriteState, 0, len(m.flowers)),
		Caption: m.caption,
	}
	for _, id := range m.flowers {
		if st, ok := m.state(id); ok {
			s.Flowers = append(s.Flowers, st)
		}
	}
	if m.vase != 0 {
		if st, ok := m.state(m.vase); ok {
			s.Vase = &st
		}
	}
	return s
}

// Restore replaces the whole bouquet with s. Every sprite gets a new ID and
// a pending bitmap; the caller is expected to resolve them again.
func (m *Model) Restore(s Snapshot) {
	for _, id := range m.flowers {
		m.em.DestroyEntity(id)
	}
	if m.vase != 0 {
		m.em.DestroyEntity(m.vase)
	}
	m.em.RemoveMarkedEntities()

	m.flowers = m.flowers[:0]
	m.vase = 0
	m.caption = s.Caption

	for _, st := range s.Flowers {
		if _, ok := m.AddFlower(st); !ok {
			break
		}
	}
	if s.Vase != nil {
		m.SetVase(*s.Vase)
	}
}

// flowerIDs returns the flower IDs in paint order. The slice is shared.
func (m *Model) flowerIDs() []ecs.EntityID {
	return m.flowers
}

// vaseID returns the vase ID, 0 when there is none.
func (m *Model) vaseID() ecs.EntityID {
	return m.vase
}

// bounds returns the live box of a sprite.
func (m *Model) bounds(id ecs.EntityID) (*components.BoundsComponent, bool) {
	return ecs.GetComponent[*components.BoundsComponent](m.em, id)
}

// scale returns the live scale of a flower.
func (m *Model) scale(id ecs.EntityID) (*components.ScaleComponent, bool) {
	return ecs.GetComponent[*components.ScaleComponent](m.em, id)
}

// raiseFlower moves a flower to the end of the paint order.
func (m *Model) raiseFlower(id ecs.EntityID) {
	for i, fid := range m.flowers {
		if fid != id {
			continue
		}
		copy(m.flowers[i:], m.flowers[i+1:])
		m.flowers[len(m.flowers)-1] = id
		return
	}
}

func (m *Model) createSprite(state SpriteState) ecs.EntityID {
	id := m.em.CreateEntity()
	m.em.AddComponent(id, &components.SpriteComponent{Path: state.Path})
	m.em.AddComponent(id, &components.BoundsComponent{
		X:      state.X,
		Y:      state.Y,
		Width:  state.Width,
		Height: state.Height,
	})
	return id
}

func (m *Model) state(id ecs.EntityID) (SpriteState, bool) {
	s, ok := m.Sprite(id)
	if !ok {
		return SpriteState{}, false
	}
	st := SpriteState{
		Path:   s.Path,
		X:      s.X,
		Y:      s.Y,
		Width:  s.Width,
		Height: s.Height,
	}
	if s.Kind == KindFlower {
		st.Scale = s.Scale
	}
	return st, true
}
