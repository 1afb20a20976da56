// Package ebitentmx draws parsed TMX tile layers with ebiten.
//
// The parser knows nothing about images; this package turns a tile's flip
// flags and tileset geometry into the sub-images and GeoM transforms ebiten
// needs. Loading the tileset sheets is left to the caller.
package ebitentmx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/retroblast-engine/tmx"
)

// GeoM returns the transform that applies t's flip flags to a w x h tile.
// The diagonal flip is applied first, then the horizontal and vertical ones,
// and the result is moved back so it covers the same box at the origin.
func GeoM(t tmx.LayerTile, w, h float64) ebiten.GeoM {
	var g ebiten.GeoM
	if t.FlipD {
		// (x, y) -> (y, x)
		g.SetElement(0, 0, 0)
		g.SetElement(0, 1, 1)
		g.SetElement(1, 0, 1)
		g.SetElement(1, 1, 0)
		w, h = h, w
	}
	if t.FlipH {
		g.Scale(-1, 1)
		g.Translate(w, 0)
	}
	if t.FlipV {
		g.Scale(1, -1)
		g.Translate(0, h)
	}
	return g
}

// TileImage returns the part of sheet that holds the local tile of ts. It
// returns nil for a nil sheet or a tileset without columns.
func TileImage(sheet *ebiten.Image, ts *tmx.TileSet, local uint32) *ebiten.Image {
	if sheet == nil {
		return nil
	}
	r := ts.TileRect(local)
	if r.Empty() {
		return nil
	}
	return sheet.SubImage(r).(*ebiten.Image)
}

// DrawOptions places cell c of a tile layer of m. Tiles taller than the map
// grid are aligned to the bottom of their cell, as Tiled draws them.
func DrawOptions(m *tmx.TiledMap, c tmx.GridCell) *ebiten.DrawImageOptions {
	ts := &m.TileSets[c.Tile.TileSet]
	tw, th := float64(ts.TileSize.X), float64(ts.TileSize.Y)
	cw, ch := float64(m.TileSize.X), float64(m.TileSize.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(c.Tile, tw, th)
	op.GeoM.Translate(float64(c.Col)*cw, float64(c.Row+1)*ch-th)
	return op
}

// DrawLayer draws every tile of l onto dst. sheets holds the loaded image of
// each tileset, indexed like m.TileSets; tiles whose sheet is missing are
// skipped. Hidden layers draw nothing. The layer's offset and opacity are
// applied on top of the per-tile options.
func DrawLayer(dst *ebiten.Image, m *tmx.TiledMap, l *tmx.TileLayer, sheets []*ebiten.Image) {
	if !l.Visible {
		return
	}
	for c := range l.Content.All() {
		i := c.Tile.TileSet
		if i >= len(sheets) {
			continue
		}
		img := TileImage(sheets[i], &m.TileSets[i], c.Tile.LocalID)
		if img == nil {
			continue
		}
		op := DrawOptions(m, c)
		op.GeoM.Translate(float64(l.Offset.X), float64(l.Offset.Y))
		op.ColorScale.ScaleAlpha(l.Opacity)
		dst.DrawImage(img, op)
	}
}
