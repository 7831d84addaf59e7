package pacanim

import (
	"sort"
	"time"
)

// Color is the side a pac fights for.
type Color string

// Available pac colors
const (
	ColorBlue Color = "blue"
	ColorRed  Color = "red"
)

// PacType is the pac sprite variant. Variants map to leagues.
type PacType int

// Available pac types
const (
	TypeWoodBronze PacType = 1
	TypeScissor    PacType = 2
	TypePaper      PacType = 3
	TypeRock       PacType = 4
)

// Kind is a playback intent with its own duration and loop policy.
type Kind string

// Available animation kinds
const (
	KindWalk      Kind = "walk"
	KindDeath     Kind = "death"
	KindCollision Kind = "collision"
)

// AnimationDefinition is an ordered sequence of frame identifiers with
// a total duration and a loop policy. Definitions stored in a catalog
// are immutable.
type AnimationDefinition struct {
	Frames   []string
	Duration time.Duration
	Loop     bool
}

// FrameDuration returns the time one frame stays on screen.
func (d *AnimationDefinition) FrameDuration() time.Duration {
	if len(d.Frames) == 0 {
		return 0
	}
	return d.Duration / time.Duration(len(d.Frames))
}

// SpriteKey identifies one pac sprite set in the catalog.
type SpriteKey struct {
	Color Color
	Type  PacType
}

// Catalog maps pac sprite sets to their animation definitions.
// It is built once at startup and read-only afterwards.
type Catalog struct {
	defs map[SpriteKey]map[Kind]*AnimationDefinition
}

// NewCatalog creates a catalog from a prebuilt definition table.
func NewCatalog(defs map[SpriteKey]map[Kind]*AnimationDefinition) *Catalog {
	return &Catalog{defs: defs}
}

// Lookup returns the definition for the given sprite set and kind,
// or nil if the combination is absent from the catalog.
func (c *Catalog) Lookup(color Color, pacType PacType, kind Kind) *AnimationDefinition {
	kinds, ok := c.defs[SpriteKey{Color: color, Type: pacType}]
	if !ok {
		return nil
	}
	return kinds[kind]
}

// Keys returns every sprite set present in the catalog.
func (c *Catalog) Keys() []SpriteKey {
	keys := make([]SpriteKey, 0, len(c.defs))
	for key := range c.defs {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Color != keys[j].Color {
			return keys[i].Color < keys[j].Color
		}
		return keys[i].Type < keys[j].Type
	})
	return keys
}

// Kinds returns the animation kinds available for a sprite set.
func (c *Catalog) Kinds(key SpriteKey) []Kind {
	kinds := make([]Kind, 0, len(c.defs[key]))
	for kind := range c.defs[key] {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
