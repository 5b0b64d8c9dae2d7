package gridgraph

import "strings"

// Render draws the grid as ASCII, one row per line, with placement
// overlaid as towers. See TileKind.Glyph for the legend.
func (g *Grid) Render(placement []Coord) string {
	kinds := g.Overlay(placement)
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for _, row := range kinds {
		for _, k := range row {
			b.WriteRune(k.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
