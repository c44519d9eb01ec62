package palette

// PaintKind identifies the variant of a Paint.
type PaintKind uint8

const (
	// KindColor is a solid color paint.
	KindColor PaintKind = iota + 1
	// KindLinearGradient is a linear gradient paint.
	KindLinearGradient
)

// String returns the kind name.
func (k PaintKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindLinearGradient:
		return "linear-gradient"
	default:
		return "unknown"
	}
}

// Paint is a fill style attached to a drawn path.
// This is a sealed interface - only Color and *LinearGradient implement it.
//
// Two paints are the same palette entry iff they are structurally equal:
// same variant and, recursively, the same field values.
//
//	red := palette.Solid(palette.RGBU(255, 0, 0))
//	ramp := palette.NewLinearGradient()
//	_ = ramp.AddColorStop(0, palette.Black)
//	_ = ramp.AddColorStop(1, palette.White)
type Paint interface {
	// paintMarker is an unexported method that seals this interface.
	paintMarker()

	// Kind returns the paint variant.
	Kind() PaintKind

	// IsOpaque reports whether every texel the paint produces is opaque.
	IsOpaque() bool

	// appendKey appends the canonical structural encoding of the paint.
	appendKey(dst []byte) []byte
}

// Color is a solid color paint.
type Color struct {
	ColorU
}

// Solid creates a solid color paint.
func Solid(c ColorU) Color {
	return Color{ColorU: c}
}

// paintMarker implements the sealed Paint interface.
func (Color) paintMarker() {}

// Kind implements Paint.
func (Color) Kind() PaintKind { return KindColor }

func (c Color) appendKey(dst []byte) []byte {
	return append(dst, byte(KindColor), c.R, c.G, c.B, c.A)
}

// paintKey returns the dedup key for p.
func paintKey(p Paint) (string, error) {
	switch v := p.(type) {
	case nil:
		return "", ErrNilPaint
	case Color:
		return string(v.appendKey(make([]byte, 0, 5))), nil
	case *LinearGradient:
		if v == nil {
			return "", ErrNilPaint
		}
		return string(v.appendKey(make([]byte, 0, 4+8*v.Len()))), nil
	default:
		panic("palette: unknown paint type")
	}
}

// PaintsEqual reports whether a and b are structurally equal.
// Nil paints are equal only to each other.
func PaintsEqual(a, b Paint) bool {
	ka, errA := paintKey(a)
	kb, errB := paintKey(b)
	if errA != nil || errB != nil {
		return errA != nil && errB != nil
	}
	return ka == kb
}

// clonePaint copies p so later changes by the caller do not reach the palette.
func clonePaint(p Paint) Paint {
	switch v := p.(type) {
	case Color:
		return v
	case *LinearGradient:
		return v.Clone()
	default:
		panic("palette: unknown paint type")
	}
}
