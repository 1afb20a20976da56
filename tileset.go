package tmx

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"
)

// parseTileSet decodes an embedded <tileset> element.
func parseTileSet(e elem) (TileSet, error) {
	var (
		ts  TileSet
		err error
	)

	if src, ok := e.Attr("source"); ok {
		return ts, unsupported(e.path, "external tileset %q", src)
	}

	first, err := e.u32("firstgid")
	if err != nil {
		return ts, err
	}
	ts.FirstGid = Gid(first)

	if ts.TileSize.X, err = e.u32("tilewidth"); err != nil {
		return ts, err
	}
	if ts.TileSize.Y, err = e.u32("tileheight"); err != nil {
		return ts, err
	}
	if ts.Name, err = e.str("name"); err != nil {
		return ts, err
	}
	if ts.Margin, err = e.u32Or("margin", 0); err != nil {
		return ts, err
	}
	if ts.Spacing, err = e.u32Or("spacing", 0); err != nil {
		return ts, err
	}
	if ts.TileCount, err = e.u32Or("tilecount", 0); err != nil {
		return ts, err
	}
	if ts.Columns, err = e.u32Or("columns", 0); err != nil {
		return ts, err
	}

	images := e.children("image")
	switch len(images) {
	case 0:
		return ts, missingChild(e.path, "image")
	case 1:
	default:
		return ts, unsupported(e.path, "tileset with %d images", len(images))
	}
	if ts.Image, err = parseImage(images[0], ts); err != nil {
		return ts, err
	}

	if ts.Properties, err = parseProperties(e); err != nil {
		return ts, err
	}

	ts.Tiles = make(map[uint32]TileAuxInfo)
	for _, te := range e.children("tile") {
		id, err := te.u32("id")
		if err != nil {
			return ts, err
		}
		if _, ok := te.first("animation"); ok {
			return ts, unsupported(te.path, "animated tiles")
		}
		if _, ok := te.first("image"); ok {
			return ts, unsupported(te.path, "per-tile images")
		}
		aux, err := parseTileAux(te)
		if err != nil {
			return ts, err
		}
		ts.Tiles[id] = aux
	}

	return ts, nil
}

// parseImage decodes a tileset's <image>. Dimensions counts the whole tiles
// that fit once margin and spacing are taken out.
func parseImage(e elem, ts TileSet) (Image, error) {
	var (
		img Image
		err error
	)
	if img.Source, err = e.str("source"); err != nil {
		return img, err
	}
	if img.Size.X, err = e.u32("width"); err != nil {
		return img, err
	}
	if img.Size.Y, err = e.u32("height"); err != nil {
		return img, err
	}
	img.Format = e.strOr("format", "png")

	img.Dimensions = Pair[uint32]{
		X: tilesAcross(img.Size.X, ts.TileSize.X, ts.Margin, ts.Spacing),
		Y: tilesAcross(img.Size.Y, ts.TileSize.Y, ts.Margin, ts.Spacing),
	}
	return img, nil
}

func tilesAcross(pixels, tile, margin, spacing uint32) uint32 {
	if tile == 0 || pixels < 2*margin {
		return 0
	}
	return (pixels - 2*margin + spacing) / (tile + spacing)
}

// parseTileAux decodes a <tile>'s properties and its collision object group.
func parseTileAux(e elem) (TileAuxInfo, error) {
	props, err := parseProperties(e)
	if err != nil {
		return TileAuxInfo{}, err
	}
	objs := []Object{}
	if og, ok := e.first("objectgroup"); ok {
		if objs, err = parseObjects(og); err != nil {
			return TileAuxInfo{}, err
		}
	}
	return TileAuxInfo{Properties: props, Objects: objs}, nil
}

// parseTileSets decodes every <tileset> child of the map and returns them
// ordered by FirstGid. With concurrency above one the tilesets are decoded in
// parallel; the result, and the error reported when several fail, are the
// same as for a sequential pass.
func parseTileSets(root elem, concurrency int) ([]TileSet, error) {
	elems := root.children("tileset")
	out := make([]TileSet, len(elems))
	errs := make([]error, len(elems))

	if concurrency > 1 && len(elems) > 1 {
		var g errgroup.Group
		g.SetLimit(concurrency)
		for i, e := range elems {
			g.Go(func() error {
				out[i], errs[i] = parseTileSet(e)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, e := range elems {
			if out[i], errs[i] = parseTileSet(e); errs[i] != nil {
				break
			}
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	slices.SortStableFunc(out, func(a, b TileSet) int {
		return cmp.Compare(a.FirstGid, b.FirstGid)
	})
	return out, nil
}
