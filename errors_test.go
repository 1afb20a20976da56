package tmx

import (
	"errors"
	"strconv"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"attribute",
			coercion([]string{"map", "layer[2]"}, "opacity", "half", "number", nil),
			`tmx: type_coercion at map.layer[2] attribute opacity="half": expected number`,
		},
		{
			"missing",
			missingAttr([]string{"map"}, "width"),
			`tmx: missing_attribute at map attribute width: required`,
		},
		{
			"bare value",
			coercion(nil, "", "x", "tile reference", nil),
			`tmx: type_coercion value "x": expected tile reference`,
		},
		{
			"cause",
			malformed(nil, cause, "bad document"),
			`tmx: malformed: bad document (caused by: boom)`,
		},
		{
			"referential",
			referential([]string{"map"}, 9),
			`tmx: referential at map value "9": gid 9 is not owned by any tileset`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := structural([]string{"map"}, "bad")
	if !errors.Is(err, ErrStructural) {
		t.Error("structural error does not match ErrStructural")
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("structural error matches ErrMalformed")
	}
	if errors.Is(errors.New("other"), ErrStructural) {
		t.Error("foreign error matches ErrStructural")
	}
}

func TestErrorUnwrap(t *testing.T) {
	_, cause := strconv.ParseUint("x", 10, 32)
	err := coercion(nil, "id", "x", "integer", cause)
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("cause not reachable through Unwrap")
	}
}

func TestWithin(t *testing.T) {
	path := []string{"map", "layer[0]"}

	bare := coercion(nil, "", "x", "tile reference", nil)
	got := within(path, bare)
	var e *Error
	if !errors.As(got, &e) || len(e.Path) != 2 {
		t.Fatalf("within = %v", got)
	}
	if len(bare.Path) != 0 {
		t.Error("within modified its argument")
	}

	placed := missingAttr([]string{"tileset"}, "name")
	if within(path, placed) != error(placed) {
		t.Error("within replaced an existing path")
	}

	other := errors.New("plain")
	if within(path, other) != other {
		t.Error("within wrapped a foreign error")
	}
}
