package palette

import (
	"fmt"
	"image/color"
	"math"
)

// ColorU is a straight (non-premultiplied) 8-bit RGBA color.
// It is the texel format of the paint texture.
//
// ColorU implements color.Color, so it can be passed anywhere the standard
// library expects a color.
type ColorU struct {
	R, G, B, A uint8
}

// RGBAU creates a color from 8-bit RGBA components.
func RGBAU(r, g, b, a uint8) ColorU {
	return ColorU{R: r, G: g, B: b, A: a}
}

// RGBU creates an opaque color from 8-bit RGB components.
func RGBU(r, g, b uint8) ColorU {
	return ColorU{R: r, G: g, B: b, A: 255}
}

// FromColor converts a standard color.Color to straight 8-bit RGBA.
func FromColor(c color.Color) ColorU {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorU{R: n.R, G: n.G, B: n.B, A: n.A}
}

// HexU parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func HexU(hex string) (ColorU, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) &&
			parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) &&
			parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		return ColorU{}, &ColorParseError{Input: hex, Reason: "length must be 3, 4, 6 or 8 digits"}
	}
	if !ok {
		return ColorU{}, &ColorParseError{Input: hex, Reason: "invalid hex digit"}
	}

	return ColorU{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex accumulates hex digits of s into val.
// It reports false on the first non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// 16-bit components, as the color.Color contract requires.
func (c ColorU) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the color as a standard non-premultiplied color.
func (c ColorU) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithOpacity returns c with its alpha scaled by opacity.
// Opacity is clamped to [0, 1]; NaN is treated as 0.
//
// For an opaque color this is the SVG fill-opacity rule, alpha =
// round(opacity*255). A color that already carries alpha (a 4- or 8-digit
// hex value) is not reset to opacity: its alpha is multiplied by it.
func (c ColorU) WithOpacity(opacity float64) ColorU {
	c.A = uint8(math.Round(float64(c.A) * clamp01(opacity)))
	return c
}

// IsOpaque reports whether the color is fully opaque.
func (c ColorU) IsOpaque() bool {
	return c.A == 255
}

// IsFullyTransparent reports whether the color has zero alpha.
func (c ColorU) IsFullyTransparent() bool {
	return c.A == 0
}

// String formats the color as "#rrggbbaa".
func (c ColorU) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// lerp interpolates each 8-bit channel independently, rounding to nearest.
func (c ColorU) lerp(other ColorU, t float64) ColorU {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return ColorU{
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
		A: mix(c.A, other.A),
	}
}

// clamp01 clamps a value to [0, 1] range. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGBU(0, 0, 0)
	White       = RGBU(255, 255, 255)
	Transparent = RGBAU(0, 0, 0, 0)
)
