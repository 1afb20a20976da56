package tmx

import "iter"

// LayerKind tells which variant a TiledLayer holds.
type LayerKind int

const (
	TileKind LayerKind = iota
	ObjectKind
	ImageKind
	GroupKind
)

var layerKindNames = [...]string{"tile", "object", "image", "group"}

func (k LayerKind) String() string {
	if int(k) < len(layerKindNames) {
		return layerKindNames[k]
	}
	return "unknown"
}

// LayerInfo holds the attributes every layer variant shares.
type LayerInfo struct {
	ID         uint32
	Name       string
	Visible    bool
	Opacity    float32
	Parallax   Pair[float32]
	Offset     Pair[float32]
	Properties Properties
}

// layerContent restricts Layer to the four payloads a layer can carry.
type layerContent interface {
	Grid | []Object | ImageStuff | struct{}
}

// Layer is a layer with its payload.
type Layer[T layerContent] struct {
	LayerInfo
	Content T
}

type (
	TileLayer   = Layer[Grid]
	ObjectLayer = Layer[[]Object]
	ImageLayer  = Layer[ImageStuff]
	GroupLayer  = Layer[struct{}]
)

// TiledLayer is one of *TileLayer, *ObjectLayer, *ImageLayer or *GroupLayer.
// Use a type switch, or Kind, to tell them apart.
type TiledLayer interface {
	Info() *LayerInfo
	Kind() LayerKind
}

// Info returns the shared layer attributes.
func (l *Layer[T]) Info() *LayerInfo {
	return &l.LayerInfo
}

// Kind returns which variant l is.
func (l *Layer[T]) Kind() LayerKind {
	switch any(l.Content).(type) {
	case Grid:
		return TileKind
	case []Object:
		return ObjectKind
	case ImageStuff:
		return ImageKind
	default:
		return GroupKind
	}
}

// Grid is a tile layer's cells addressed by (column, row) with the origin at
// the top-left corner, row 0 being the first row of the document's data.
type Grid struct {
	cols, rows int
	cells      []LayerTile // row-major; Tile == EmptyGid marks an empty cell
}

// NewGrid returns an empty grid of the given size.
func NewGrid(cols, rows int) Grid {
	return Grid{cols: cols, rows: rows, cells: make([]LayerTile, cols*rows)}
}

// Columns returns the grid width.
func (g Grid) Columns() int { return g.cols }

// Rows returns the grid height.
func (g Grid) Rows() int { return g.rows }

// Len returns the number of cells, empty ones included.
func (g Grid) Len() int { return len(g.cells) }

// At returns the cell at (col, row). It reports false for an empty cell or
// for coordinates outside the grid.
func (g Grid) At(col, row int) (LayerTile, bool) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return LayerTile{}, false
	}
	t := g.cells[row*g.cols+col]
	return t, t.Tile != EmptyGid
}

// set stores t at (col, row). Out of range coordinates are ignored.
func (g Grid) set(col, row int, t LayerTile) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = t
}

// Count returns the number of non-empty cells.
func (g Grid) Count() int {
	n := 0
	for _, t := range g.cells {
		if t.Tile != EmptyGid {
			n++
		}
	}
	return n
}

// GridCell is a non-empty cell and its coordinates.
type GridCell struct {
	Col, Row int
	Tile     LayerTile
}

// All yields the non-empty cells row by row, left to right.
func (g Grid) All() iter.Seq[GridCell] {
	return func(yield func(GridCell) bool) {
		for i, t := range g.cells {
			if t.Tile == EmptyGid {
				continue
			}
			if !yield(GridCell{Col: i % g.cols, Row: i / g.cols, Tile: t}) {
				return
			}
		}
	}
}
