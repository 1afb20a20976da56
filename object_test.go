package tmx

import (
	"reflect"
	"testing"
)

func TestParseObject(t *testing.T) {
	e := mustElem(t, `<object id="3" name="chest" type="loot" x="16" y="32.5" width="8" height="4" rotation="90"/>`)
	o, err := parseObject(e)
	if err != nil {
		t.Fatalf("parseObject: %v", err)
	}
	want := Object{
		ID:         3,
		Name:       "chest",
		Class:      "loot",
		Position:   Pair[float32]{X: 16, Y: 32.5},
		Size:       &Pair[float32]{X: 8, Y: 4},
		Rotation:   90,
		Visible:    true,
		Type:       ObjectType{Shape: Rectangle},
		Properties: Properties{},
	}
	if !reflect.DeepEqual(o, want) {
		t.Errorf("object = %+v, want %+v", o, want)
	}
}

func TestParseObjectDefaults(t *testing.T) {
	o, err := parseObject(mustElem(t, `<object id="1" x="0" y="0"/>`))
	if err != nil {
		t.Fatalf("parseObject: %v", err)
	}
	if o.Size != nil {
		t.Errorf("Size = %v, want nil", o.Size)
	}
	if o.TileGid != nil {
		t.Errorf("TileGid = %v, want nil", *o.TileGid)
	}
	if !o.Visible || o.Rotation != 0 || o.Name != "" || o.Class != "" {
		t.Errorf("defaults not applied: %+v", o)
	}
}

func TestParseObjectPartialSize(t *testing.T) {
	o, err := parseObject(mustElem(t, `<object id="1" x="0" y="0" width="8"/>`))
	if err != nil {
		t.Fatalf("parseObject: %v", err)
	}
	if o.Size != nil {
		t.Errorf("Size = %v, want nil when height is missing", *o.Size)
	}
}

func TestParseObjectClassWins(t *testing.T) {
	o, err := parseObject(mustElem(t, `<object id="1" x="0" y="0" class="npc" type="old"/>`))
	if err != nil {
		t.Fatalf("parseObject: %v", err)
	}
	if o.Class != "npc" {
		t.Errorf("Class = %q, want %q", o.Class, "npc")
	}
}

func TestParseObjectTileGid(t *testing.T) {
	// gid 7, flipped vertically.
	o, err := parseObject(mustElem(t, `<object id="2" gid="1073741831" x="1" y="2" visible="0"/>`))
	if err != nil {
		t.Fatalf("parseObject: %v", err)
	}
	if o.TileGid == nil || *o.TileGid != 7 {
		t.Fatalf("TileGid = %v, want 7", o.TileGid)
	}
	if o.TileFlags != FlippedVertically {
		t.Errorf("TileFlags = %s, want V", o.TileFlags)
	}
	if o.Visible {
		t.Error("visible=\"0\" decoded as visible")
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want ObjectType
	}{
		{"rectangle", `<object id="1" x="0" y="0"/>`, ObjectType{Shape: Rectangle}},
		{"ellipse", `<object id="1" x="0" y="0"><ellipse/></object>`, ObjectType{Shape: Ellipse}},
		{"point", `<object id="1" x="0" y="0"><point/></object>`, ObjectType{Shape: Point}},
		{"text", `<object id="1" x="0" y="0"><text>hi</text></object>`, ObjectType{Shape: Rectangle}},
		{
			"polygon",
			`<object id="1" x="0" y="0"><polygon points="0,0 16,0 16,-8.5"/></object>`,
			ObjectType{Shape: Polygon, Points: []Pair[float32]{{0, 0}, {16, 0}, {16, -8.5}}},
		},
		{
			"polyline",
			`<object id="1" x="0" y="0"><properties/><polyline points="1,2 3,4"/></object>`,
			ObjectType{Shape: Polyline, Points: []Pair[float32]{{1, 2}, {3, 4}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parseObject(mustElem(t, tt.src))
			if err != nil {
				t.Fatalf("parseObject: %v", err)
			}
			if !reflect.DeepEqual(o.Type, tt.want) {
				t.Errorf("Type = %+v, want %+v", o.Type, tt.want)
			}
			if o.Type.Shape.String() != tt.want.Shape.String() {
				t.Errorf("Shape = %s, want %s", o.Type.Shape, tt.want.Shape)
			}
		})
	}
}

func TestParseObjectErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *Error
	}{
		{"no id", `<object x="0" y="0"/>`, ErrMissingAttribute},
		{"no x", `<object id="1" y="0"/>`, ErrMissingAttribute},
		{"bad y", `<object id="1" x="0" y="up"/>`, ErrTypeCoercion},
		{"bad gid", `<object id="1" x="0" y="0" gid="-3"/>`, ErrTypeCoercion},
		{"bad visible", `<object id="1" x="0" y="0" visible="yes"/>`, ErrTypeCoercion},
		{"polygon without points", `<object id="1" x="0" y="0"><polygon/></object>`, ErrMissingAttribute},
		{"bad points", `<object id="1" x="0" y="0"><polygon points="0 0"/></object>`, ErrTypeCoercion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseObject(mustElem(t, tt.src))
			wantKind(t, err, tt.want)
		})
	}
}

func TestParseObjects(t *testing.T) {
	e := mustElem(t, `<objectgroup id="1" name="things">
  <object id="1" x="0" y="0"/>
  <properties/>
  <object id="2" x="0" y="0"/>
</objectgroup>`)
	objs, err := parseObjects(e)
	if err != nil {
		t.Fatalf("parseObjects: %v", err)
	}
	if len(objs) != 2 || objs[0].ID != 1 || objs[1].ID != 2 {
		t.Errorf("objects = %+v", objs)
	}

	empty, err := parseObjects(mustElem(t, `<objectgroup/>`))
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("empty group = %#v, %v; want an empty slice", empty, err)
	}
}
