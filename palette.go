package palette

import (
	"fmt"
	"iter"
)

// MaxPaints is the number of unique paints a palette can hold.
// Paint IDs are 16-bit.
const MaxPaints = 1 << 16

// PaintID identifies one palette entry. Its value is the entry's index in
// insertion order; it is never reassigned for the life of the palette.
type PaintID uint16

// String returns a short debug form, e.g. "paint#3".
func (id PaintID) String() string {
	return fmt.Sprintf("paint#%d", uint16(id))
}

// Palette is the deduplicated, insertion-ordered set of paints used by a
// scene. Pushing a paint that is structurally equal to an existing entry
// returns the existing ID.
//
// A Palette is not safe for concurrent use. It must not be modified while a
// BuiltPalette derived from it is in use.
type Palette struct {
	paints []Paint
	index  map[string]PaintID

	colors    int
	gradients int
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{index: make(map[string]PaintID)}
}

// PushPaint registers p and returns its ID.
// If an equal paint is already registered, its ID is returned and the
// palette is unchanged. Otherwise a copy of p is appended.
func (pal *Palette) PushPaint(p Paint) (PaintID, error) {
	key, err := paintKey(p)
	if err != nil {
		return 0, err
	}
	if id, ok := pal.index[key]; ok {
		return id, nil
	}
	if len(pal.paints) >= MaxPaints {
		return 0, ErrTooManyPaints
	}

	if pal.index == nil {
		pal.index = make(map[string]PaintID)
	}
	id := PaintID(len(pal.paints))
	pal.paints = append(pal.paints, clonePaint(p))
	pal.index[key] = id

	switch p.(type) {
	case Color:
		pal.colors++
	case *LinearGradient:
		pal.gradients++
	}
	return id, nil
}

// Get returns a copy of the paint with the given ID. Changing a returned
// gradient does not affect the palette.
func (pal *Palette) Get(id PaintID) (Paint, bool) {
	if int(id) >= len(pal.paints) {
		return nil, false
	}
	return clonePaint(pal.paints[id]), true
}

// Lookup returns the ID of a paint equal to p, if registered.
func (pal *Palette) Lookup(p Paint) (PaintID, bool) {
	key, err := paintKey(p)
	if err != nil {
		return 0, false
	}
	id, ok := pal.index[key]
	return id, ok
}

// Len returns the number of unique paints.
func (pal *Palette) Len() int {
	return len(pal.paints)
}

// Counts returns the number of solid colors and gradients.
func (pal *Palette) Counts() (colors, gradients int) {
	return pal.colors, pal.gradients
}

// All iterates over copies of the paints in ID order.
func (pal *Palette) All() iter.Seq2[PaintID, Paint] {
	return func(yield func(PaintID, Paint) bool) {
		for id, p := range pal.entries() {
			if !yield(id, clonePaint(p)) {
				return
			}
		}
	}
}

// entries iterates over the stored paints without copying.
// Callers must not modify them.
func (pal *Palette) entries() iter.Seq2[PaintID, Paint] {
	return func(yield func(PaintID, Paint) bool) {
		for i, p := range pal.paints {
			if !yield(PaintID(i), p) {
				return
			}
		}
	}
}
