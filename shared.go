package tmx

import (
	"image"

	"github.com/retroblast-engine/tmx/tree"
)

// Pair is an (x, y) or (width, height) couple.
type Pair[T uint32 | float32] struct {
	X, Y T
}

// Image is the single sheet a tileset cuts its tiles from.
type Image struct {
	Source     string       // path relative to the document, unresolved
	Size       Pair[uint32] // in pixels
	Dimensions Pair[uint32] // in tiles: columns, rows
	Format     string
}

// TileAuxInfo is per-tile metadata: properties and collision objects.
type TileAuxInfo struct {
	Properties Properties
	Objects    []Object
}

// TileSet is a collection of tiles sharing one image. It owns the gids
// [FirstGid, FirstGid+tile count).
type TileSet struct {
	Name       string
	TileSize   Pair[uint32]
	FirstGid   Gid
	Spacing    uint32
	Margin     uint32
	TileCount  uint32 // 0 when the document does not say
	Columns    uint32 // 0 when the document does not say
	Image      Image
	Properties Properties
	// Tiles is keyed by the tileset-local id.
	Tiles map[uint32]TileAuxInfo
}

// columns returns the number of tile columns in the sheet.
func (ts *TileSet) columns() uint32 {
	if ts.Columns > 0 {
		return ts.Columns
	}
	return ts.Image.Dimensions.X
}

// TileRect returns the pixel rectangle of a local tile inside the sheet.
// It returns the empty rectangle when the sheet has no columns.
func (ts *TileSet) TileRect(local uint32) image.Rectangle {
	cols := ts.columns()
	if cols == 0 {
		return image.Rectangle{}
	}
	col, row := local%cols, local/cols
	x := int(ts.Margin + col*(ts.TileSize.X+ts.Spacing))
	y := int(ts.Margin + row*(ts.TileSize.Y+ts.Spacing))
	return image.Rect(x, y, x+int(ts.TileSize.X), y+int(ts.TileSize.Y))
}

// Contains reports whether gid falls in the range this tileset owns. When
// the tile count is unknown every gid from FirstGid up is accepted.
func (ts *TileSet) Contains(gid Gid) bool {
	if gid < ts.FirstGid {
		return false
	}
	return ts.TileCount == 0 || uint32(gid-ts.FirstGid) < ts.TileCount
}

// LayerTile is one decoded, non-empty cell of a tile layer.
type LayerTile struct {
	Tile                Gid // flip flags stripped
	FlipH, FlipV, FlipD bool
	TileSet             int    // index into TiledMap.TileSets
	LocalID             uint32 // id inside that tileset
}

// Flags returns the cell's flip bits in packed form.
func (t LayerTile) Flags() FlipFlags {
	var f FlipFlags
	if t.FlipH {
		f |= FlippedHorizontally
	}
	if t.FlipV {
		f |= FlippedVertically
	}
	if t.FlipD {
		f |= FlippedDiagonally
	}
	return f
}

// Shape is the geometry of an object.
type Shape int

const (
	Rectangle Shape = iota
	Ellipse
	Point
	Polygon
	Polyline
)

var shapeNames = [...]string{"rectangle", "ellipse", "point", "polygon", "polyline"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// ObjectType is an object's shape. Points is set for polygons and polylines
// and is relative to the object's position.
type ObjectType struct {
	Shape  Shape
	Points []Pair[float32]
}

// Object is an entry of an object layer or of a tile's collision group.
type Object struct {
	ID         uint32
	Name       string
	Class      string
	Position   Pair[float32]
	Size       *Pair[float32] // nil unless both width and height are given
	Rotation   float32        // degrees, clockwise
	// TileGid is set for tile objects; TileFlags holds the flip bits that
	// were packed into the gid attribute.
	TileGid    *Gid
	TileFlags  FlipFlags
	Visible    bool
	Type       ObjectType
	Properties Properties
}

// ImageStuff is the payload of an image layer.
type ImageStuff struct {
	RepeatX, RepeatY bool
	Image            Image
}

// LayerHierarchy is the nested layer structure of a map. Groups and the map
// root are nodes; tile, object and image layers are leaves.
type LayerHierarchy = tree.Tree[TiledLayer]

// TiledMap is a fully resolved map document. It is not modified after Parse
// returns it.
type TiledMap struct {
	Layers      LayerHierarchy
	GridSize    Pair[uint32] // in tiles
	TileSize    Pair[uint32] // in pixels
	TileSets    []TileSet    // ascending by FirstGid
	Orientation string
	RenderOrder string
	Version     string
	Properties  Properties
}

// Resolve finds the tileset owning gid. See Resolve.
func (m *TiledMap) Resolve(gid Gid) (*TileSet, uint32, bool) {
	i, local, ok := Resolve(m.TileSets, gid)
	if !ok {
		return nil, 0, false
	}
	return &m.TileSets[i], local, true
}

// AllLayers returns every layer breadth-first, starting with the synthetic
// root group.
func (m *TiledMap) AllLayers() []TiledLayer {
	var out []TiledLayer
	for l := range m.Layers.BreadthFirst() {
		out = append(out, l)
	}
	return out
}
