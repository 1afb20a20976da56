package tmx

// Gid is a global tile id, unique across every tileset of a document.
type Gid uint32

// EmptyGid marks a cell with no tile.
const EmptyGid Gid = 0

// FlipFlags are the three high bits of a packed tile reference.
type FlipFlags uint32

const (
	FlippedDiagonally   FlipFlags = 1 << (29 + iota) // swap x and y axes
	FlippedVertically                                // mirror over the x axis
	FlippedHorizontally                              // mirror over the y axis

	AllFlipFlags = FlippedHorizontally | FlippedVertically | FlippedDiagonally
)

// Horizontal reports whether bit 31 is set.
func (f FlipFlags) Horizontal() bool { return f&FlippedHorizontally != 0 }

// Vertical reports whether bit 30 is set.
func (f FlipFlags) Vertical() bool { return f&FlippedVertically != 0 }

// Diagonal reports whether bit 29 is set.
func (f FlipFlags) Diagonal() bool { return f&FlippedDiagonally != 0 }

func (f FlipFlags) String() string {
	s := ""
	if f.Horizontal() {
		s += "H"
	}
	if f.Vertical() {
		s += "V"
	}
	if f.Diagonal() {
		s += "D"
	}
	if s == "" {
		return "-"
	}
	return s
}

// DecodeGID splits a packed reference into its base gid and flip flags.
func DecodeGID(bits uint32) (Gid, FlipFlags) {
	return Gid(bits &^ uint32(AllFlipFlags)), FlipFlags(bits) & AllFlipFlags
}

// EncodeGID packs a gid and flip flags. Gid bits that collide with the flag
// bits are dropped.
func EncodeGID(gid Gid, flags FlipFlags) uint32 {
	return uint32(gid)&^uint32(AllFlipFlags) | uint32(flags&AllFlipFlags)
}

// DecodeTile decodes a packed reference into a cell. It reports false for an
// empty cell; flags on an empty cell are ignored. TileSet and LocalID are left
// for the resolver.
func DecodeTile(bits uint32) (LayerTile, bool) {
	gid, flags := DecodeGID(bits)
	if gid == EmptyGid {
		return LayerTile{}, false
	}
	return LayerTile{
		Tile:  gid,
		FlipH: flags.Horizontal(),
		FlipV: flags.Vertical(),
		FlipD: flags.Diagonal(),
	}, true
}
