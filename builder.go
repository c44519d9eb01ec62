package palette

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg-palette/internal/atlas"
)

// Paint texture dimensions in texels.
const (
	TextureWidth  = 256
	TextureHeight = 256
)

// Fixed-point UV units per texel. A full texture spans 65536 units.
const (
	UPerTexel = 65536 / TextureWidth
	VPerTexel = 65536 / TextureHeight
)

// BuiltPalette is the texture layout of a finished palette: one texel
// rectangle per paint, indexed by PaintID.
//
// A BuiltPalette is immutable. Modifying the source palette afterwards
// invalidates it; build again instead.
type BuiltPalette struct {
	texCoords []RectI
	gradients int
	colors    int
	rowsUsed  int

	sampling Sampling
	logger   *slog.Logger
}

// Build lays out every paint of p in the paint texture.
//
// Gradients are placed first, one full 256×1 row each, in palette order
// starting at row 0. Solid colors follow as single texels packed
// left-to-right, top-to-bottom from where the gradient rows end.
//
// If the paints do not fit, Build returns an *OverflowError (matching
// ErrPaletteOverflow) and no layout.
func Build(p *Palette, opts ...BuildOption) (*BuiltPalette, error) {
	if p == nil {
		return nil, ErrNilPalette
	}
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampling != SampleWrap && o.sampling != SampleLinear {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSampling, o.sampling)
	}

	log := loggerOr(o.logger)

	colors, gradients := p.Counts()
	texCoords := make([]RectI, p.Len())
	alloc := atlas.NewAllocator(TextureWidth, TextureHeight)

	overflow := func(id PaintID, kind PaintKind) error {
		err := &OverflowError{ID: id, Kind: kind, Gradients: gradients, Colors: colors}
		log.Warn("palette: texture capacity exceeded",
			"paint", uint16(id), "kind", kind.String(),
			"gradients", gradients, "colors", colors)
		return err
	}

	// Gradient pass.
	for id, paint := range p.entries() {
		if _, ok := paint.(*LinearGradient); !ok {
			continue
		}
		r, ok := alloc.AllocateRow()
		if !ok {
			return nil, overflow(id, KindLinearGradient)
		}
		texCoords[id] = rectFromAtlas(r)
	}

	// Color pass.
	for id, paint := range p.entries() {
		if _, ok := paint.(Color); !ok {
			continue
		}
		r, ok := alloc.AllocateTexel()
		if !ok {
			return nil, overflow(id, KindColor)
		}
		texCoords[id] = rectFromAtlas(r)
	}

	log.Debug("palette: built",
		"paints", len(texCoords),
		"gradients", gradients,
		"colors", colors,
		"rows", alloc.RowsUsed(),
		"gradient_rows", alloc.Rows(),
		"color_texels", alloc.Texels(),
		"utilization", alloc.Utilization())

	return &BuiltPalette{
		texCoords: texCoords,
		gradients: gradients,
		colors:    colors,
		rowsUsed:  alloc.RowsUsed(),
		sampling:  o.sampling,
		logger:    o.logger,
	}, nil
}

func rectFromAtlas(r atlas.Rect) RectI {
	return RectI{
		Origin: PointI{X: int32(r.X), Y: int32(r.Y)},
		Size:   PointI{X: int32(r.Width), Y: int32(r.Height)},
	}
}

// Len returns the number of laid-out paints.
func (b *BuiltPalette) Len() int {
	return len(b.texCoords)
}

// RowsUsed returns the number of texture rows holding paint data.
func (b *BuiltPalette) RowsUsed() int {
	return b.rowsUsed
}

// Sampling returns the gradient sampling mode the palette was built with.
func (b *BuiltPalette) Sampling() Sampling {
	return b.sampling
}

// TexCoords returns the texel rectangle of a paint.
func (b *BuiltPalette) TexCoords(id PaintID) (RectI, bool) {
	if int(id) >= len(b.texCoords) {
		return RectI{}, false
	}
	return b.texCoords[id], true
}

// NormTexCoords returns the paint's texel origin in fixed-point UV space,
// where the whole texture spans 65536 units on each axis.
func (b *BuiltPalette) NormTexCoords(id PaintID) (PointI, bool) {
	r, ok := b.TexCoords(id)
	if !ok {
		return PointI{}, false
	}
	return r.Origin.ScaleXY(PointI{X: UPerTexel, Y: VPerTexel}), true
}

// UV returns the paint's rectangle as normalized [0, 1] texture coordinates.
func (b *BuiltPalette) UV(id PaintID) (u0, v0, u1, v1 float32, ok bool) {
	r, ok := b.TexCoords(id)
	if !ok {
		return 0, 0, 0, 0, false
	}
	m := r.Max()
	return float32(r.Origin.X) / TextureWidth,
		float32(r.Origin.Y) / TextureHeight,
		float32(m.X) / TextureWidth,
		float32(m.Y) / TextureHeight,
		true
}

// HalfTexel returns the fixed-point UV offset from a texel's corner to its
// center. Adding it to NormTexCoords samples texel centers, which keeps
// bilinear filtering from bleeding neighbouring texels in.
func HalfTexel() PointI {
	return PointI{X: UPerTexel / 2, Y: VPerTexel / 2}
}

// HalfTexel is the same as the package-level HalfTexel.
func (b *BuiltPalette) HalfTexel() PointI {
	return HalfTexel()
}
