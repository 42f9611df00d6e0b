package bouquet

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SpriteState is the serializable part of a sprite: everything except the
// resolved bitmap, which is derived from Path again after a restore.
type SpriteState struct {
	Path   string  `yaml:"path"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale,omitempty"` // flowers only
}

// Snapshot is a deep, self-contained copy of a whole bouquet.
// It shares no memory with the live model.
type Snapshot struct {
	Flowers []SpriteState `yaml:"flowers"`
	Vase    *SpriteState  `yaml:"vase,omitempty"`
	Caption string        `yaml:"caption"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Caption: s.Caption}
	if s.Flowers != nil {
		out.Flowers = make([]SpriteState, len(s.Flowers))
		copy(out.Flowers, s.Flowers)
	}
	if s.Vase != nil {
		vase := *s.Vase
		out.Vase = &vase
	}
	return out
}

// String renders the snapshot as YAML, for logs and debugging.
func (s Snapshot) String() string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("snapshot(%d flowers, vase=%t, caption=%q)", len(s.Flowers), s.Vase != nil, s.Caption)
	}
	return string(data)
}
