package ebitentmx

import (
	"testing"

	"github.com/retroblast-engine/tmx"
)

type point struct{ x, y float64 }

func TestGeoM(t *testing.T) {
	tests := []struct {
		name string
		tile tmx.LayerTile
		// images of the tile's top-left and top-right corners
		tl, tr point
	}{
		{"none", tmx.LayerTile{}, point{0, 0}, point{16, 0}},
		{"horizontal", tmx.LayerTile{FlipH: true}, point{16, 0}, point{0, 0}},
		{"vertical", tmx.LayerTile{FlipV: true}, point{0, 8}, point{16, 8}},
		{"both", tmx.LayerTile{FlipH: true, FlipV: true}, point{16, 8}, point{0, 8}},
		{"diagonal", tmx.LayerTile{FlipD: true}, point{0, 0}, point{0, 16}},
		// diagonal then horizontal is a 90 degree clockwise rotation
		{"rotate cw", tmx.LayerTile{FlipD: true, FlipH: true}, point{8, 0}, point{8, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GeoM(tt.tile, 16, 8)
			if x, y := g.Apply(0, 0); (point{x, y}) != tt.tl {
				t.Errorf("top-left -> (%v, %v), want %v", x, y, tt.tl)
			}
			if x, y := g.Apply(16, 0); (point{x, y}) != tt.tr {
				t.Errorf("top-right -> (%v, %v), want %v", x, y, tt.tr)
			}
		})
	}
}

func TestGeoMStaysInBox(t *testing.T) {
	for bits := range 8 {
		tile := tmx.LayerTile{FlipH: bits&1 != 0, FlipV: bits&2 != 0, FlipD: bits&4 != 0}
		g := GeoM(tile, 16, 16)
		for _, p := range []point{{0, 0}, {16, 0}, {0, 16}, {16, 16}} {
			x, y := g.Apply(p.x, p.y)
			if x < 0 || x > 16 || y < 0 || y > 16 {
				t.Errorf("flips %03b move %v to (%v, %v)", bits, p, x, y)
			}
		}
	}
}

func TestDrawOptions(t *testing.T) {
	m := &tmx.TiledMap{
		TileSize: tmx.Pair[uint32]{X: 16, Y: 16},
		TileSets: []tmx.TileSet{
			{FirstGid: 1, TileSize: tmx.Pair[uint32]{X: 16, Y: 16}},
			{FirstGid: 10, TileSize: tmx.Pair[uint32]{X: 16, Y: 32}},
		},
	}

	op := DrawOptions(m, tmx.GridCell{Col: 2, Row: 1, Tile: tmx.LayerTile{Tile: 1}})
	if x, y := op.GeoM.Apply(0, 0); x != 32 || y != 16 {
		t.Errorf("cell (2,1) origin -> (%v, %v), want (32, 16)", x, y)
	}

	tall := tmx.GridCell{Col: 0, Row: 1, Tile: tmx.LayerTile{Tile: 10, TileSet: 1}}
	op = DrawOptions(m, tall)
	if x, y := op.GeoM.Apply(0, 0); x != 0 || y != 0 {
		t.Errorf("tall tile origin -> (%v, %v), want bottom-aligned (0, 0)", x, y)
	}
	if _, y := op.GeoM.Apply(0, 32); y != 32 {
		t.Errorf("tall tile bottom -> %v, want 32", y)
	}

	flipped := tmx.GridCell{Col: 1, Row: 0, Tile: tmx.LayerTile{Tile: 2, FlipH: true}}
	op = DrawOptions(m, flipped)
	if x, y := op.GeoM.Apply(0, 0); x != 32 || y != 0 {
		t.Errorf("flipped origin -> (%v, %v), want (32, 0)", x, y)
	}
}

func TestTileImageNil(t *testing.T) {
	ts := &tmx.TileSet{Columns: 1, TileSize: tmx.Pair[uint32]{X: 8, Y: 8}}
	if img := TileImage(nil, ts, 0); img != nil {
		t.Error("TileImage without a sheet returned an image")
	}
}
