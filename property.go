package tmx

import "fmt"

// PropertyValue is one of StringProperty, IntProperty, FloatProperty,
// BoolProperty, FileProperty or ObjectProperty.
type PropertyValue interface {
	// PropertyType returns the type name used in the document.
	PropertyType() string
}

type (
	StringProperty string
	IntProperty    int32
	FloatProperty  float32
	BoolProperty   bool
	// FileProperty is a path relative to the document, unresolved.
	FileProperty string
	// ObjectProperty references an object by id; 0 references nothing.
	ObjectProperty uint32
)

func (StringProperty) PropertyType() string { return "string" }
func (IntProperty) PropertyType() string    { return "int" }
func (FloatProperty) PropertyType() string  { return "float" }
func (BoolProperty) PropertyType() string   { return "bool" }
func (FileProperty) PropertyType() string   { return "file" }
func (ObjectProperty) PropertyType() string { return "object" }

// Properties maps property names to typed values.
type Properties map[string]PropertyValue

// Str returns the named property when it is a string.
func (p Properties) Str(name string) (string, bool) {
	v, ok := p[name].(StringProperty)
	return string(v), ok
}

// Int returns the named property when it is an int.
func (p Properties) Int(name string) (int32, bool) {
	v, ok := p[name].(IntProperty)
	return int32(v), ok
}

// Float returns the named property when it is a float.
func (p Properties) Float(name string) (float32, bool) {
	v, ok := p[name].(FloatProperty)
	return float32(v), ok
}

// Bool returns the named property when it is a bool.
func (p Properties) Bool(name string) (bool, bool) {
	v, ok := p[name].(BoolProperty)
	return bool(v), ok
}

// ParseProperty decodes a single typed value. It fails with a type coercion
// error when value does not read as typ, and with an unsupported error when
// typ is not one of the six known types.
func ParseProperty(typ, value string) (PropertyValue, error) {
	switch typ {
	case "", "string":
		return StringProperty(value), nil
	case "int":
		n, err := parseI32(value)
		if err != nil {
			return nil, coercion(nil, "value", value, "int", err)
		}
		return IntProperty(n), nil
	case "float":
		f, err := parseF32(value)
		if err != nil {
			return nil, coercion(nil, "value", value, "float", err)
		}
		return FloatProperty(f), nil
	case "bool":
		b, err := parseBool(value)
		if err != nil {
			return nil, coercion(nil, "value", value, "bool", err)
		}
		return BoolProperty(b), nil
	case "file":
		return FileProperty(value), nil
	case "object":
		n, err := parseU32(value)
		if err != nil {
			return nil, coercion(nil, "value", value, "object id", err)
		}
		return ObjectProperty(n), nil
	}
	return nil, unsupported(nil, "property type %q", typ)
}

// parseProperties decodes the <properties> child of e, if any. An element
// without one yields an empty, non-nil map.
func parseProperties(e elem) (Properties, error) {
	props := Properties{}
	pe, ok := e.first("properties")
	if !ok {
		return props, nil
	}
	for _, p := range pe.children("property") {
		name, err := p.str("name")
		if err != nil {
			return nil, err
		}
		typ := p.strOr("type", "string")

		value, ok := p.Attr("value")
		if !ok {
			// Multi-line strings are written as element text.
			if typ != "string" {
				return nil, missingAttr(p.path, "value")
			}
			value = p.Text
		}

		v, err := ParseProperty(typ, value)
		if err != nil {
			return nil, within(append(p.path, fmt.Sprintf("%q", name)), err)
		}
		props[name] = v
	}
	return props, nil
}
