package palette

import "fmt"

// Sampling selects how a gradient's stops fill its texture row.
type Sampling int

const (
	// SampleWrap writes stops[x mod n] to texel x. Stops are repeated
	// across the row without regard to their positions; the shader does
	// any smoothing. This is the default.
	SampleWrap Sampling = iota

	// SampleLinear maps texel x to position x/(width-1) and interpolates
	// the 8-bit channels of the two surrounding stops. Positions before the
	// first stop or after the last take the end stop's color.
	SampleLinear
)

// String returns the sampling mode name.
func (s Sampling) String() string {
	switch s {
	case SampleWrap:
		return "wrap"
	case SampleLinear:
		return "linear"
	default:
		return fmt.Sprintf("Sampling(%d)", int(s))
	}
}

// ParseSampling parses a sampling mode name as returned by String.
func ParseSampling(name string) (Sampling, error) {
	switch name {
	case "wrap":
		return SampleWrap, nil
	case "linear":
		return SampleLinear, nil
	default:
		return 0, fmt.Errorf("%w %q (want wrap or linear)", ErrUnknownSampling, name)
	}
}
