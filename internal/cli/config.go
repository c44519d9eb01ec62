package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	palette "github.com/gogpu/gg-palette"
)

// paintFile is the TOML paint list read by build and inspect.
type paintFile struct {
	Sampling string        `toml:"sampling"`
	Paints   []paintConfig `toml:"paint"`
}

// paintConfig is one [[paint]] table. With Color set it is a solid color,
// otherwise a linear gradient made of Stops.
type paintConfig struct {
	Color   string       `toml:"color"`
	Opacity *float64     `toml:"opacity"` // multiplies the alpha of Color
	Stops   []stopConfig `toml:"stop"`
}

type stopConfig struct {
	Offset float64 `toml:"offset"`
	Color  string  `toml:"color"`
}

var errMixedPaint = errors.New("paint has both color and stops")

// loadPaintFile reads and decodes the paint list at path.
func loadPaintFile(path string) (*paintFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodePaintFile(data)
}

func decodePaintFile(data []byte) (*paintFile, error) {
	var f paintFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode paint file: %w", err)
	}
	return &f, nil
}

// paint converts the table into a palette paint.
func (c paintConfig) paint() (palette.Paint, error) {
	if c.Color != "" {
		if len(c.Stops) > 0 {
			return nil, errMixedPaint
		}
		col, err := palette.HexU(c.Color)
		if err != nil {
			return nil, err
		}
		if c.Opacity != nil {
			col = col.WithOpacity(*c.Opacity)
		}
		return palette.Solid(col), nil
	}

	g := palette.NewLinearGradient()
	for i, s := range c.Stops {
		col, err := palette.HexU(s.Color)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		if err := g.AddColorStop(s.Offset, col); err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
	}
	return g, nil
}

// pushedPaint records where a [[paint]] entry landed in the palette.
type pushedPaint struct {
	Entry int
	ID    palette.PaintID
	Dup   bool
}

// buildPalette pushes every paint in file order. Entries equal to an earlier
// one are reported with Dup set and share its id.
func (f *paintFile) buildPalette() (*palette.Palette, []pushedPaint, error) {
	pal := palette.NewPalette()
	pushed := make([]pushedPaint, 0, len(f.Paints))
	for i, c := range f.Paints {
		p, err := c.paint()
		if err != nil {
			return nil, nil, fmt.Errorf("paint %d: %w", i, err)
		}
		before := pal.Len()
		id, err := pal.PushPaint(p)
		if err != nil {
			return nil, nil, fmt.Errorf("paint %d: %w", i, err)
		}
		pushed = append(pushed, pushedPaint{Entry: i, ID: id, Dup: pal.Len() == before})
	}
	return pal, pushed, nil
}

// sampling resolves the gradient sampling mode. A non-empty flag value
// takes precedence over the file.
func (f *paintFile) sampling(flag string) (palette.Sampling, error) {
	name := f.Sampling
	if flag != "" {
		name = flag
	}
	if name == "" {
		return palette.SampleWrap, nil
	}
	return palette.ParseSampling(name)
}
