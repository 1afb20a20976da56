package tmx

import (
	"strings"
)

// ParseCSV reads CSV tile data: rows separated by newlines, packed tile
// references separated by commas. Whitespace around tokens and rows, blank
// lines, and one trailing comma per row are accepted. The column count is
// taken from the first row, and the total number of tokens must be a multiple
// of it.
func ParseCSV(text string) ([]uint32, int, error) {
	var (
		values  []uint32
		columns int
	)

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSuffix(line, ",")

		n := 0
		for tok := range strings.SplitSeq(line, ",") {
			tok = strings.TrimSpace(tok)
			v, err := parseU32(tok)
			if err != nil {
				return nil, 0, coercion(nil, "", tok, "unsigned 32-bit tile reference", err)
			}
			values = append(values, v)
			n++
		}
		if columns == 0 {
			columns = n
		}
	}

	if len(values) == 0 {
		return nil, 0, structural(nil, "no tile data")
	}
	if len(values)%columns != 0 {
		return nil, 0, structural(nil, "%d tiles do not fill rows of %d columns", len(values), columns)
	}
	return values, columns, nil
}

// DecodeCSV decodes CSV tile data into a grid and resolves every non-empty
// cell against tilesets. A cell whose gid belongs to no tileset is a
// referential error.
//
// The first row of text is row 0 and its first token column 0, the Tiled
// editor's top-left origin.
func DecodeCSV(text string, tilesets []TileSet) (Grid, error) {
	values, columns, err := ParseCSV(text)
	if err != nil {
		return Grid{}, err
	}

	g := NewGrid(columns, len(values)/columns)
	for i, bits := range values {
		t, ok := DecodeTile(bits)
		if !ok {
			continue
		}
		ts, local, ok := Resolve(tilesets, t.Tile)
		if !ok {
			return Grid{}, referential(nil, t.Tile)
		}
		t.TileSet, t.LocalID = ts, local
		g.set(i%columns, i/columns, t)
	}
	return g, nil
}
