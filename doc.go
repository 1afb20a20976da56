// Package tmx parses Tiled TMX map documents into a resolved, read-only map
// model: map attributes, embedded tilesets with their per-tile metadata, and a
// tree of layers whose tile grids already know which tileset each cell comes
// from.
//
// Only the CSV tile data encoding and embedded tilesets are read. Anything
// else the parser does not understand fails with an *Error of kind
// KindUnsupported rather than being dropped.
//
//	m, err := tmx.Parse(data)
//	if errors.Is(err, tmx.ErrUnsupported) {
//		...
//	}
//	for l := range m.Layers.BreadthFirst() {
//		if tl, ok := l.(*tmx.TileLayer); ok {
//			for c := range tl.Content.All() {
//				ts := &m.TileSets[c.Tile.TileSet]
//				_ = ts.TileRect(c.Tile.LocalID)
//			}
//		}
//	}
package tmx
