package palette

import (
	"errors"
	"fmt"
)

// Sentinel errors for palette package.
var (
	// ErrNilPaint is returned when a nil paint is pushed into a palette.
	ErrNilPaint = errors.New("palette: nil paint")

	// ErrNilPalette is returned when Build or BuildPaintData gets a nil palette.
	ErrNilPalette = errors.New("palette: nil palette")

	// ErrTooManyPaints is returned when a palette already holds MaxPaints
	// unique paints and a new one is pushed.
	ErrTooManyPaints = errors.New("palette: too many unique paints")

	// ErrTooManyStops is returned when a gradient already holds
	// MaxGradientStops stops and a new one is added.
	ErrTooManyStops = errors.New("palette: too many gradient stops")

	// ErrPaletteOverflow is returned when the palette does not fit in the
	// paint texture. Build returns it wrapped in an *OverflowError.
	ErrPaletteOverflow = errors.New("palette: paint texture capacity exceeded")

	// ErrPaletteMismatch is returned when paint data is requested for a
	// palette whose size differs from the one the layout was built from.
	ErrPaletteMismatch = errors.New("palette: palette changed after build")

	// ErrUnknownSampling is returned when Build is given a Sampling value
	// outside the defined modes, or ParseSampling an unknown name.
	ErrUnknownSampling = errors.New("palette: unknown sampling mode")
)

// OverflowError describes which paint did not fit in the paint texture.
type OverflowError struct {
	ID        PaintID
	Kind      PaintKind
	Gradients int
	Colors    int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("palette: paint texture capacity exceeded at paint %d (%s): %d gradients, %d colors do not fit in %dx%d",
		e.ID, e.Kind, e.Gradients, e.Colors, TextureWidth, TextureHeight)
}

// Unwrap returns ErrPaletteOverflow so errors.Is matches the sentinel.
func (e *OverflowError) Unwrap() error {
	return ErrPaletteOverflow
}

// ColorParseError represents a malformed color string.
type ColorParseError struct {
	Input  string
	Reason string
}

func (e *ColorParseError) Error() string {
	return "palette: invalid color " + fmt.Sprintf("%q", e.Input) + ": " + e.Reason
}
