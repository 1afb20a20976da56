package tmx

// Resolve finds the tileset that owns gid: among the tilesets whose FirstGid
// is not greater than gid, the one with the largest FirstGid. It returns that
// tileset's index and the tileset-local id. It reports false for the empty
// gid and for gids below every tileset.
//
// Ranges are assumed not to overlap; the tile count is not consulted, so a
// gid past the end of the last tileset still resolves to it.
func Resolve(tilesets []TileSet, gid Gid) (int, uint32, bool) {
	if gid == EmptyGid {
		return -1, 0, false
	}
	best := -1
	for i := range tilesets {
		fg := tilesets[i].FirstGid
		if fg <= gid && (best < 0 || fg > tilesets[best].FirstGid) {
			best = i
		}
	}
	if best < 0 {
		return -1, 0, false
	}
	return best, uint32(gid - tilesets[best].FirstGid), true
}
