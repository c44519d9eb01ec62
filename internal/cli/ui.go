package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	palette "github.com/gogpu/gg-palette"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleGradient = lipgloss.NewStyle().Foreground(colorCyan)
	styleColor    = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
)

// layoutTable renders one row per paint: id, kind, texel rectangle,
// normalized UV rectangle and the paint's color content.
func layoutTable(pal *palette.Palette, built *palette.BuiltPalette) string {
	rows := make([][]string, 0, pal.Len())
	kinds := make([]palette.PaintKind, 0, pal.Len())
	for id, p := range pal.All() {
		r, _ := built.TexCoords(id)
		u0, v0, u1, v1, _ := built.UV(id)
		rows = append(rows, []string{
			id.String(),
			p.Kind().String(),
			fmt.Sprintf("%d,%d %dx%d", r.Origin.X, r.Origin.Y, r.Size.X, r.Size.Y),
			fmt.Sprintf("%.4f,%.4f %.4f,%.4f", u0, v0, u1, v1),
			describePaint(p),
		})
		kinds = append(kinds, p.Kind())
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("ID", "Kind", "Texels", "UV", "Paint").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col != 1 || row < 0 || row >= len(kinds) {
				return lipgloss.NewStyle()
			}
			if kinds[row] == palette.KindLinearGradient {
				return styleGradient
			}
			return styleColor
		})
	return t.Render()
}

func describePaint(p palette.Paint) string {
	switch v := p.(type) {
	case palette.Color:
		return v.ColorU.String()
	case *palette.LinearGradient:
		if v.Len() == 0 {
			return "no stops"
		}
		stops := v.Stops()
		return fmt.Sprintf("%d stops %s..%s", v.Len(), stops.At(0).Color, stops.At(v.Len()-1).Color)
	default:
		return ""
	}
}

// layoutSummary is the one-line footer printed under the table.
func layoutSummary(pal *palette.Palette, built *palette.BuiltPalette) string {
	colors, gradients := pal.Counts()
	return styleDim.Render(fmt.Sprintf("%d paints (%d colors, %d gradients), %d of %d rows used, %s sampling",
		pal.Len(), colors, gradients, built.RowsUsed(), palette.TextureHeight, built.Sampling()))
}
