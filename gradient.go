package palette

import (
	"math"
	"sort"
)

// MaxGradientStops is the number of stops a gradient can hold.
// Stop IDs are 16-bit.
const MaxGradientStops = 1 << 16

// LinearGradient is a color ramp defined by stops along [0, 1].
//
// Stops are kept sorted by position; stops added at the same position keep
// the order they were added in. The zero value is an empty gradient.
//
// Example:
//
//	g := palette.NewLinearGradient()
//	_ = g.AddColorStop(0, palette.RGBU(255, 0, 0))
//	_ = g.AddColorStop(1, palette.RGBU(0, 0, 255))
//	id, err := pal.PushPaint(g)
type LinearGradient struct {
	stops SortedGradientStops
}

// NewLinearGradient creates an empty gradient.
func NewLinearGradient() *LinearGradient {
	return &LinearGradient{}
}

// AddColorStop adds a stop at offset. Offset is clamped to [0, 1] and
// stored as 16-bit fixed point; NaN is treated as 0.
func (g *LinearGradient) AddColorStop(offset float64, c ColorU) error {
	n := g.stops.Len()
	if n >= MaxGradientStops {
		return ErrTooManyStops
	}
	g.stops.Push(GradientStop{
		Distance: uint16(math.Round(clamp01(offset) * 65535)),
		ID:       uint16(n),
		Color:    c,
	})
	return nil
}

// Stops returns a read-only view of the gradient's stops.
func (g *LinearGradient) Stops() StopsView {
	return StopsView{s: &g.stops}
}

// Len returns the number of stops.
func (g *LinearGradient) Len() int {
	return g.stops.Len()
}

// IsOpaque reports whether every stop is opaque.
// A gradient without stops paints nothing and is not opaque.
func (g *LinearGradient) IsOpaque() bool {
	if g.stops.IsEmpty() {
		return false
	}
	for _, stop := range g.stops.All() {
		if !stop.Color.IsOpaque() {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the gradient.
func (g *LinearGradient) Clone() *LinearGradient {
	return &LinearGradient{stops: g.stops.clone()}
}

// paintMarker implements the sealed Paint interface.
func (*LinearGradient) paintMarker() {}

// Kind implements Paint.
func (*LinearGradient) Kind() PaintKind { return KindLinearGradient }

// appendKey writes the tag, the stop count and every stop.
func (g *LinearGradient) appendKey(dst []byte) []byte {
	n := g.stops.Len()
	dst = append(dst, byte(KindLinearGradient), byte(n>>16), byte(n>>8), byte(n))
	for _, s := range g.stops.All() {
		dst = append(dst,
			byte(s.Distance>>8), byte(s.Distance),
			byte(s.ID>>8), byte(s.ID),
			s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	}
	return dst
}

// sample returns the color of texel x of a width-texel ramp.
// The gradient must have at least one stop.
func (g *LinearGradient) sample(x, width int, mode Sampling) ColorU {
	n := g.stops.Len()
	switch mode {
	case SampleWrap:
		return g.stops.At(x % n).Color
	case SampleLinear:
		return g.sampleLinear(x, width)
	default:
		panic("palette: unknown sampling mode " + mode.String())
	}
}

// sampleLinear interpolates between the two stops around the texel's
// position, clamping to the end stops outside the stop range.
func (g *LinearGradient) sampleLinear(x, width int) ColorU {
	n := g.stops.Len()
	if n == 1 || width <= 1 {
		return g.stops.At(0).Color
	}

	pos := float64(x) * 65535 / float64(width-1)
	idx := sort.Search(n, func(i int) bool {
		return float64(g.stops.At(i).Distance) >= pos
	})

	if idx == 0 {
		return g.stops.At(0).Color
	}
	if idx >= n {
		return g.stops.At(n - 1).Color
	}

	hi := g.stops.At(idx)
	if float64(hi.Distance) == pos {
		return hi.Color
	}
	lo := g.stops.At(idx - 1)
	t := (pos - float64(lo.Distance)) / float64(hi.Distance-lo.Distance)
	return lo.Color.lerp(hi.Color, t)
}
