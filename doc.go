// Package palette resolves a scene's paints into a deduplicated palette and
// the paint texture a GPU rasterizer samples at draw time.
//
// # Overview
//
// A scene author pushes every fill style it encounters into a Palette and
// stores the returned PaintID in its path records. Identical paints collapse
// to one entry. When the scene is final, Build lays the palette out in a
// 256×256 RGBA8 texture and BuildPaintData fills the pixels.
//
// # Quick Start
//
//	pal := palette.NewPalette()
//
//	red, _ := pal.PushPaint(palette.Solid(palette.RGBU(255, 0, 0)))
//
//	ramp := palette.NewLinearGradient()
//	_ = ramp.AddColorStop(0, palette.RGBU(255, 0, 0))
//	_ = ramp.AddColorStop(1, palette.RGBU(0, 0, 255))
//	sky, _ := pal.PushPaint(ramp)
//
//	built, err := palette.Build(pal)
//	if err != nil {
//	    return err
//	}
//	data, err := built.BuildPaintData(pal)
//	if err != nil {
//	    return err
//	}
//
//	uv, _ := built.NormTexCoords(red)
//	uv = uv.Add(palette.HalfTexel())
//
// # Layout
//
// Gradients get one full texture row each, starting at row 0, in palette
// order. Solid colors follow as single texels packed left-to-right,
// top-to-bottom. A palette that does not fit fails with ErrPaletteOverflow.
//
// # Coordinates
//
// TexCoords returns texel rectangles. NormTexCoords returns the origin in
// fixed-point UV space where the texture spans 65536 units per axis;
// HalfTexel is the offset to a texel center.
//
// # Concurrency
//
// Palette and BuiltPalette are not safe for concurrent mutation. Separate
// palettes share no state and may be built in parallel.
package palette
