package palette

// PointI is an integer point or vector in texel or fixed-point UV space.
type PointI struct {
	X, Y int32
}

// Add returns p+q.
func (p PointI) Add(q PointI) PointI {
	return PointI{X: p.X + q.X, Y: p.Y + q.Y}
}

// ScaleXY multiplies each component of p by the matching component of s.
func (p PointI) ScaleXY(s PointI) PointI {
	return PointI{X: p.X * s.X, Y: p.Y * s.Y}
}

// RectI is an integer rectangle given by its origin and size.
type RectI struct {
	Origin PointI
	Size   PointI
}

// Min returns the top-left corner (inclusive).
func (r RectI) Min() PointI {
	return r.Origin
}

// Max returns the bottom-right corner (exclusive).
func (r RectI) Max() PointI {
	return r.Origin.Add(r.Size)
}

// IsEmpty reports whether the rectangle covers no texels.
func (r RectI) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Overlaps reports whether r and s share at least one texel.
func (r RectI) Overlaps(s RectI) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	rMax, sMax := r.Max(), s.Max()
	return r.Origin.X < sMax.X && s.Origin.X < rMax.X &&
		r.Origin.Y < sMax.Y && s.Origin.Y < rMax.Y
}

// Within reports whether r lies inside [0,width)×[0,height).
func (r RectI) Within(width, height int32) bool {
	m := r.Max()
	return r.Origin.X >= 0 && r.Origin.Y >= 0 && m.X <= width && m.Y <= height
}
