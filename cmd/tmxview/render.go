package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/retroblast-engine/tmx"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// summary renders the map header and its tilesets with the gid range each
// one owns.
func summary(name string, m *tmx.TiledMap) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TMX"))
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Map: %dx%d tiles of %dx%d px, %s, %s\n",
		m.GridSize.X, m.GridSize.Y, m.TileSize.X, m.TileSize.Y, m.Orientation, m.RenderOrder)
	if m.Version != "" {
		fmt.Fprintf(&b, "Version: %s\n", m.Version)
	}
	if len(m.Properties) > 0 {
		fmt.Fprintf(&b, "Properties: %d\n", len(m.Properties))
	}

	fmt.Fprintf(&b, "Tilesets: %d\n", len(m.TileSets))
	for i := range m.TileSets {
		b.WriteString("  ")
		b.WriteString(tilesetLine(&m.TileSets[i]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func tilesetLine(ts *tmx.TileSet) string {
	gids := fmt.Sprintf("gid %d+", ts.FirstGid)
	if ts.TileCount > 0 {
		gids = fmt.Sprintf("gids %d-%d", ts.FirstGid, uint32(ts.FirstGid)+ts.TileCount-1)
	}
	return fmt.Sprintf("%s %s (%s, %dx%d px)",
		nameStyle.Render(ts.Name), gids, ts.Image.Source, ts.TileSize.X, ts.TileSize.Y)
}

// layerLabel describes one layer on a single line.
func layerLabel(l tmx.TiledLayer) string {
	info := l.Info()
	label := fmt.Sprintf("%s #%d %s", kindStyle.Render(l.Kind().String()), info.ID, nameStyle.Render(info.Name))

	switch l := l.(type) {
	case *tmx.TileLayer:
		label += fmt.Sprintf(" [%dx%d, %d tiles]", l.Content.Columns(), l.Content.Rows(), l.Content.Count())
	case *tmx.ObjectLayer:
		label += fmt.Sprintf(" [%d objects]", len(l.Content))
	}
	if !info.Visible {
		label += hiddenStyle.Render(" (hidden)")
	}
	return label
}

// hierarchy renders the layer tree depth-first, two spaces per level. The
// synthetic root group is not printed.
func hierarchy(m *tmx.TiledMap) string {
	var b strings.Builder
	for _, c := range m.Layers.Children {
		writeLayers(&b, c, 0)
	}
	return b.String()
}

func writeLayers(b *strings.Builder, t tmx.LayerHierarchy, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(layerLabel(t.Value))
	b.WriteString("\n")
	for _, c := range t.Children {
		writeLayers(b, c, depth+1)
	}
}

// details renders everything known about a single layer.
func details(l tmx.TiledLayer) string {
	info := l.Info()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", layerLabel(l))
	fmt.Fprintf(&b, "opacity %.2f  parallax %gx%g  offset %g,%g\n",
		info.Opacity, info.Parallax.X, info.Parallax.Y, info.Offset.X, info.Offset.Y)
	for _, name := range slices.Sorted(maps.Keys(info.Properties)) {
		v := info.Properties[name]
		fmt.Fprintf(&b, "  %s (%s) = %v\n", name, v.PropertyType(), v)
	}
	if ol, ok := l.(*tmx.ObjectLayer); ok {
		for _, o := range ol.Content {
			fmt.Fprintf(&b, "  object #%d %s %s at %g,%g\n", o.ID, o.Name, o.Type.Shape, o.Position.X, o.Position.Y)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
