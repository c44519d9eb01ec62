// Package atlas allocates regions of a fixed-size paint texture.
//
// The paint texture is filled in scanline order by a single cursor. Whole
// rows are handed out for content that needs a full scanline (gradient
// ramps) and single texels are packed left-to-right, top-to-bottom after
// them. The cursor never moves backward, so regions never overlap.
package atlas

// Rect is a texel-space rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Allocator hands out rows and texels from a width×height texture.
// The zero value is not usable; create one with NewAllocator.
//
// Allocator is not safe for concurrent use. Each build should own its own
// allocator.
type Allocator struct {
	width  int
	height int

	// Cursor: next free texel.
	x, y int

	rows   int
	texels int
}

// NewAllocator creates an allocator for a width×height texture.
func NewAllocator(width, height int) *Allocator {
	return &Allocator{width: width, height: height}
}

// AllocateRow reserves a full width×1 scanline.
// If the cursor is partway through a row, allocation starts on the next one.
// Returns false when no rows remain; the cursor is left unchanged.
func (a *Allocator) AllocateRow() (Rect, bool) {
	y := a.y
	if a.x != 0 {
		y++
	}
	if y >= a.height {
		return Rect{}, false
	}

	a.x = 0
	a.y = y + 1
	a.rows++
	return Rect{X: 0, Y: y, Width: a.width, Height: 1}, true
}

// AllocateTexel reserves a single 1×1 texel at the cursor and advances it,
// wrapping to the start of the next row at the right edge.
// Returns false when the texture is full; the cursor is left unchanged.
func (a *Allocator) AllocateTexel() (Rect, bool) {
	if a.y >= a.height {
		return Rect{}, false
	}

	r := Rect{X: a.x, Y: a.y, Width: 1, Height: 1}
	a.x++
	if a.x >= a.width {
		a.x = 0
		a.y++
	}
	a.texels++
	return r, true
}

// RowsUsed returns the number of rows touched by allocations so far,
// including a partially filled current row.
func (a *Allocator) RowsUsed() int {
	if a.x > 0 {
		return a.y + 1
	}
	return a.y
}

// Rows returns the number of full rows allocated with AllocateRow.
func (a *Allocator) Rows() int {
	return a.rows
}

// Texels returns the number of single texels allocated with AllocateTexel.
func (a *Allocator) Texels() int {
	return a.texels
}

// Remaining returns the number of texels after the cursor.
func (a *Allocator) Remaining() int {
	if a.y >= a.height {
		return 0
	}
	return (a.height-a.y)*a.width - a.x
}

// Utilization returns the fraction of texels before the cursor (0.0 to 1.0).
func (a *Allocator) Utilization() float64 {
	total := a.width * a.height
	if total <= 0 {
		return 0
	}
	return float64(total-a.Remaining()) / float64(total)
}
