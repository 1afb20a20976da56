package tmx

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/retroblast-engine/tmx/xmltree"
)

// elem is an element together with where it sits in the document, so every
// decoding failure can say where it happened.
type elem struct {
	*xmltree.Element
	path []string
}

func rootElem(e *xmltree.Element) elem {
	return elem{Element: e, path: []string{e.Name}}
}

// child scopes c, the i-th child of e.
func (e elem) child(c *xmltree.Element, i int) elem {
	seg := fmt.Sprintf("%s[%d]", c.Name, i)
	return elem{Element: c, path: append(slices.Clip(e.path), seg)}
}

// children scopes every child element named name.
func (e elem) children(name string) []elem {
	var out []elem
	for i, c := range e.Children {
		if c.Name == name {
			out = append(out, e.child(c, i))
		}
	}
	return out
}

// first scopes the first child element named name.
func (e elem) first(name string) (elem, bool) {
	for i, c := range e.Children {
		if c.Name == name {
			return e.child(c, i), true
		}
	}
	return elem{}, false
}

func (e elem) str(name string) (string, error) {
	v, ok := e.Attr(name)
	if !ok {
		return "", missingAttr(e.path, name)
	}
	return v, nil
}

func (e elem) strOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

func (e elem) u32(name string) (uint32, error) {
	v, ok := e.Attr(name)
	if !ok {
		return 0, missingAttr(e.path, name)
	}
	n, err := parseU32(v)
	if err != nil {
		return 0, coercion(e.path, name, v, "unsigned 32-bit integer", err)
	}
	return n, nil
}

func (e elem) u32Or(name string, def uint32) (uint32, error) {
	if _, ok := e.Attr(name); !ok {
		return def, nil
	}
	return e.u32(name)
}

func (e elem) f32(name string) (float32, error) {
	v, ok := e.Attr(name)
	if !ok {
		return 0, missingAttr(e.path, name)
	}
	f, err := parseF32(v)
	if err != nil {
		return 0, coercion(e.path, name, v, "number", err)
	}
	return f, nil
}

func (e elem) f32Or(name string, def float32) (float32, error) {
	if _, ok := e.Attr(name); !ok {
		return def, nil
	}
	return e.f32(name)
}

// flag decodes the 0/1 booleans TMX uses for visible, infinite and repeat
// attributes. Any other small integer reads as false.
func (e elem) flag(name string, def bool) (bool, error) {
	v, ok := e.Attr(name)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return false, coercion(e.path, name, v, "0 or 1", err)
	}
	return n == 1, nil
}

func parseU32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

func parseI32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int32(n), err
}

func parseF32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

// parseBool accepts exactly "true" and "false".
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// parsePoints decodes "x,y x,y ..." point lists.
func parsePoints(s string) ([]Pair[float32], error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty point list")
	}
	pts := make([]Pair[float32], 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %q has no comma", f)
		}
		x, err := parseF32(xs)
		if err != nil {
			return nil, err
		}
		y, err := parseF32(ys)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Pair[float32]{X: x, Y: y})
	}
	return pts, nil
}
