package palette

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// PaintData is the paint texture: a row-major RGBA8 pixel buffer ready for
// upload, plus its size.
type PaintData struct {
	Size   PointI
	Texels []byte
}

// BuildPaintData fills the paint texture for p, which must be the palette
// b was built from.
//
// Each color writes its texel. Each gradient writes its full row using the
// sampling mode chosen at Build; a gradient without stops leaves its row
// transparent. Texels not owned by any paint stay zero.
func (b *BuiltPalette) BuildPaintData(p *Palette) (*PaintData, error) {
	if p == nil {
		return nil, ErrNilPalette
	}
	if p.Len() != len(b.texCoords) {
		return nil, fmt.Errorf("%w: built for %d paints, palette has %d",
			ErrPaletteMismatch, len(b.texCoords), p.Len())
	}

	data := &PaintData{
		Size:   PointI{X: TextureWidth, Y: TextureHeight},
		Texels: make([]byte, TextureWidth*TextureHeight*4),
	}

	empty := 0
	for id, paint := range p.entries() {
		origin := b.texCoords[id].Origin
		switch v := paint.(type) {
		case Color:
			data.putPixel(origin, v.ColorU)
		case *LinearGradient:
			if v.Len() == 0 {
				empty++
				continue
			}
			for x := int32(0); x < TextureWidth; x++ {
				data.putPixel(origin.Add(PointI{X: x}), v.sample(int(x), TextureWidth, b.sampling))
			}
		default:
			panic("palette: unknown paint type")
		}
	}

	loggerOr(b.logger).Debug("palette: paint data filled",
		"paints", p.Len(),
		"sampling", b.sampling.String(),
		"empty_gradients", empty,
		"bytes", len(data.Texels))

	return data, nil
}

// putPixel writes c at coords. Coordinates come from the allocator and are
// always in range; anything else is a bug and panics.
func (d *PaintData) putPixel(coords PointI, c ColorU) {
	if coords.X < 0 || coords.X >= d.Size.X || coords.Y < 0 || coords.Y >= d.Size.Y {
		panic(fmt.Sprintf("palette: texel (%d,%d) outside %dx%d paint texture",
			coords.X, coords.Y, d.Size.X, d.Size.Y))
	}
	offset := (int(coords.Y)*int(d.Size.X) + int(coords.X)) * 4
	d.Texels[offset+0] = c.R
	d.Texels[offset+1] = c.G
	d.Texels[offset+2] = c.B
	d.Texels[offset+3] = c.A
}

// Pixel returns the texel at (x, y), or Transparent outside the texture.
func (d *PaintData) Pixel(x, y int) ColorU {
	if x < 0 || x >= int(d.Size.X) || y < 0 || y >= int(d.Size.Y) {
		return Transparent
	}
	i := (y*int(d.Size.X) + x) * 4
	return ColorU{R: d.Texels[i+0], G: d.Texels[i+1], B: d.Texels[i+2], A: d.Texels[i+3]}
}

// Image returns the texture as an *image.NRGBA sharing the texel buffer.
func (d *PaintData) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    d.Texels,
		Stride: int(d.Size.X) * 4,
		Rect:   image.Rect(0, 0, int(d.Size.X), int(d.Size.Y)),
	}
}

// TextureDescriptor returns the descriptor for a sampled, copy-destination
// RGBA8 texture matching the paint data, ready to pass to the device.
func (d *PaintData) TextureDescriptor() gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label: "paint-texture",
		Size: gputypes.Extent3D{
			Width:              uint32(d.Size.X),
			Height:             uint32(d.Size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// DataLayout returns the layout of Texels for a texture write.
func (d *PaintData) DataLayout() gputypes.TextureDataLayout {
	return gputypes.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(d.Size.X) * 4,
		RowsPerImage: uint32(d.Size.Y),
	}
}
