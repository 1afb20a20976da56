package tmx

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/retroblast-engine/tmx/tree"
	"github.com/retroblast-engine/tmx/xmltree"
)

// Parse decodes a TMX document with DefaultOptions.
func Parse(data []byte) (*TiledMap, error) {
	return ParseWithOptions(data, DefaultOptions())
}

// ParseWithOptions decodes a TMX document.
func ParseWithOptions(data []byte, opts Options) (*TiledMap, error) {
	return ParseReader(bytes.NewReader(data), opts)
}

// ParseReader reads and decodes a TMX document from r.
func ParseReader(r io.Reader, opts Options) (*TiledMap, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, malformed(nil, err, "not a well-formed XML document")
	}
	return ParseElement(root, opts)
}

// ParseElement decodes a map from an already built element tree. Tilesets are
// decoded first, then the layer hierarchy, whose tile grids are resolved
// against them. The first failure aborts the whole parse.
func ParseElement(root *xmltree.Element, opts Options) (*TiledMap, error) {
	if root == nil {
		return nil, malformed(nil, nil, "no root element")
	}
	e := rootElem(root)
	if root.Name != "map" {
		return nil, malformed(e.path, nil, "root element is <%s>, want <map>", root.Name)
	}

	p := &parser{opts: opts, log: opts.logger()}
	m, err := p.parseMap(e)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// parser carries the state of one parse. Nothing in it outlives the call.
type parser struct {
	opts     Options
	log      *zap.Logger
	tilesets []TileSet
	grid     Pair[uint32]
}

func (p *parser) parseMap(e elem) (*TiledMap, error) {
	var (
		m   TiledMap
		err error
	)

	if m.GridSize.X, err = e.u32("width"); err != nil {
		return nil, err
	}
	if m.GridSize.Y, err = e.u32("height"); err != nil {
		return nil, err
	}
	if m.TileSize.X, err = e.u32("tilewidth"); err != nil {
		return nil, err
	}
	if m.TileSize.Y, err = e.u32("tileheight"); err != nil {
		return nil, err
	}
	infinite, err := e.flag("infinite", false)
	if err != nil {
		return nil, err
	}
	if infinite {
		return nil, unsupported(e.path, "infinite maps")
	}

	m.Orientation = e.strOr("orientation", "orthogonal")
	m.RenderOrder = e.strOr("renderorder", "right-down")
	m.Version = e.strOr("version", "")
	if m.Properties, err = parseProperties(e); err != nil {
		return nil, err
	}
	p.grid = m.GridSize

	p.log.Debug("parsing map",
		zap.Uint32("width", m.GridSize.X),
		zap.Uint32("height", m.GridSize.Y),
		zap.Uint32("tilewidth", m.TileSize.X),
		zap.Uint32("tileheight", m.TileSize.Y))

	if m.TileSets, err = parseTileSets(e, p.opts.Concurrency); err != nil {
		return nil, err
	}
	for i := range m.TileSets {
		ts := &m.TileSets[i]
		p.log.Debug("tileset",
			zap.String("name", ts.Name),
			zap.Uint32("firstgid", uint32(ts.FirstGid)),
			zap.Int("tiles", len(ts.Tiles)))
	}
	p.tilesets = m.TileSets

	kids, err := p.parseChildren(e)
	if err != nil {
		return nil, err
	}
	base := &GroupLayer{LayerInfo: LayerInfo{
		Name:       "base",
		Visible:    true,
		Opacity:    1,
		Properties: Properties{},
	}}
	m.Layers = tree.Node[TiledLayer](base, kids...)

	p.log.Debug("parsed map", zap.Int("layers", m.Layers.Len()-1))
	return &m, nil
}

// parseChildren builds the subtrees of every layer-producing child of e.
// Children with other tags are skipped.
func (p *parser) parseChildren(e elem) ([]LayerHierarchy, error) {
	var kids []LayerHierarchy
	for i, c := range e.Children {
		t, ok, err := p.parseLayer(e.child(c, i))
		if err != nil {
			return nil, err
		}
		if ok {
			kids = append(kids, t)
		}
	}
	return kids, nil
}

// parseLayer dispatches on the element's tag. It reports false for tags that
// do not produce a layer.
func (p *parser) parseLayer(e elem) (LayerHierarchy, bool, error) {
	switch e.Name {
	case "group":
		info, err := parseLayerInfo(e)
		if err != nil {
			return LayerHierarchy{}, false, err
		}
		kids, err := p.parseChildren(e)
		if err != nil {
			return LayerHierarchy{}, false, err
		}
		p.logLayer(GroupKind, info)
		return tree.Node[TiledLayer](&GroupLayer{LayerInfo: info}, kids...), true, nil

	case "objectgroup":
		info, err := parseLayerInfo(e)
		if err != nil {
			return LayerHierarchy{}, false, err
		}
		objs, err := parseObjects(e)
		if err != nil {
			return LayerHierarchy{}, false, err
		}
		p.logLayer(ObjectKind, info)
		return tree.Leaf[TiledLayer](&ObjectLayer{LayerInfo: info, Content: objs}), true, nil

	case "layer":
		info, err := parseLayerInfo(e)
		if err != nil {
			return LayerHierarchy{}, false, err
		}
		grid, err := p.parseData(e)
		if err != nil {
			return LayerHierarchy{}, false, err
		}
		p.logLayer(TileKind, info)
		return tree.Leaf[TiledLayer](&TileLayer{LayerInfo: info, Content: grid}), true, nil

	case "imagelayer":
		return LayerHierarchy{}, false, unsupported(e.path, "image layers")
	}
	return LayerHierarchy{}, false, nil
}

func (p *parser) logLayer(kind LayerKind, info LayerInfo) {
	p.log.Debug("layer",
		zap.Stringer("kind", kind),
		zap.Uint32("id", info.ID),
		zap.String("name", info.Name))
}

// parseData decodes a tile layer's <data>. Only CSV is supported.
func (p *parser) parseData(layer elem) (Grid, error) {
	d, ok := layer.first("data")
	if !ok {
		return Grid{}, missingChild(layer.path, "data")
	}

	enc, ok := d.Attr("encoding")
	if !ok {
		return Grid{}, unsupported(d.path, "tile data as <tile> elements")
	}
	if enc != "csv" {
		return Grid{}, unsupported(d.path, "tile data encoding %q", enc)
	}
	if comp, ok := d.Attr("compression"); ok {
		return Grid{}, unsupported(d.path, "tile data compression %q", comp)
	}
	if _, ok := d.first("chunk"); ok {
		return Grid{}, unsupported(d.path, "chunked tile data")
	}

	g, err := DecodeCSV(d.Text, p.tilesets)
	if err != nil {
		return Grid{}, within(d.path, err)
	}

	if !p.opts.LenientDimensions &&
		(uint32(g.Columns()) != p.grid.X || uint32(g.Rows()) != p.grid.Y) {
		return Grid{}, structural(d.path, "grid is %dx%d, map is %dx%d",
			g.Columns(), g.Rows(), p.grid.X, p.grid.Y)
	}
	return g, nil
}

// parseLayerInfo decodes the attributes shared by every layer element.
func parseLayerInfo(e elem) (LayerInfo, error) {
	var (
		info LayerInfo
		err  error
	)
	if info.ID, err = e.u32("id"); err != nil {
		return info, err
	}
	if info.Name, err = e.str("name"); err != nil {
		return info, err
	}
	if info.Visible, err = e.flag("visible", true); err != nil {
		return info, err
	}
	if info.Opacity, err = e.f32Or("opacity", 1); err != nil {
		return info, err
	}
	if info.Parallax.X, err = e.f32Or("parallaxx", 1); err != nil {
		return info, err
	}
	if info.Parallax.Y, err = e.f32Or("parallaxy", 1); err != nil {
		return info, err
	}
	if info.Offset.X, err = e.f32Or("offsetx", 0); err != nil {
		return info, err
	}
	if info.Offset.Y, err = e.f32Or("offsety", 0); err != nil {
		return info, err
	}
	if info.Properties, err = parseProperties(e); err != nil {
		return info, err
	}
	return info, nil
}
