package tmx

import "testing"

func TestDecodeGID(t *testing.T) {
	tests := []struct {
		name  string
		bits  uint32
		gid   Gid
		flags FlipFlags
	}{
		{"plain", 7, 7, 0},
		{"horizontal", 0x80000007, 7, FlippedHorizontally},
		{"vertical", 0x40000007, 7, FlippedVertically},
		{"diagonal", 0x20000007, 7, FlippedDiagonally},
		{"all", 0xE0000001, 1, AllFlipFlags},
		{"max id", 0x1FFFFFFF, 0x1FFFFFFF, 0},
		{"empty", 0, 0, 0},
		{"empty with flags", 0xE0000000, 0, AllFlipFlags},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gid, flags := DecodeGID(tt.bits)
			if gid != tt.gid {
				t.Errorf("gid = %d, want %d", gid, tt.gid)
			}
			if flags != tt.flags {
				t.Errorf("flags = %s, want %s", flags, tt.flags)
			}
			if uint32(gid) != tt.bits&^uint32(AllFlipFlags) {
				t.Errorf("gid %d is not the masked value", gid)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ids := []Gid{1, 2, 48, 1 << 20, 1<<29 - 1}
	for _, id := range ids {
		for f := FlipFlags(0); f <= 7; f++ {
			flags := f << 29
			gid, got := DecodeGID(EncodeGID(id, flags))
			if gid != id || got != flags {
				t.Errorf("round trip of (%d, %s) gave (%d, %s)", id, flags, gid, got)
			}
		}
	}
}

func TestEncodeGIDDropsHighBits(t *testing.T) {
	if got := EncodeGID(Gid(0xFFFFFFFF), 0); got != 0x1FFFFFFF {
		t.Errorf("EncodeGID = %#x, want %#x", got, 0x1FFFFFFF)
	}
}

func TestDecodeTile(t *testing.T) {
	tile, ok := DecodeTile(0xA0000005)
	if !ok {
		t.Fatal("DecodeTile reported an empty cell")
	}
	want := LayerTile{Tile: 5, FlipH: true, FlipD: true}
	if tile != want {
		t.Errorf("DecodeTile = %+v, want %+v", tile, want)
	}
	if tile.Flags() != FlippedHorizontally|FlippedDiagonally {
		t.Errorf("Flags = %s", tile.Flags())
	}

	if _, ok := DecodeTile(0); ok {
		t.Error("gid 0 decoded to a tile")
	}
	if _, ok := DecodeTile(0xE0000000); ok {
		t.Error("flagged gid 0 decoded to a tile")
	}
}

func TestFlipFlagsString(t *testing.T) {
	tests := []struct {
		flags FlipFlags
		want  string
	}{
		{0, "-"},
		{FlippedHorizontally, "H"},
		{FlippedVertically | FlippedDiagonally, "VD"},
		{AllFlipFlags, "HVD"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("%#x.String() = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}
