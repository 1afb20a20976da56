package tmx

// parseObject decodes an <object> element.
func parseObject(e elem) (Object, error) {
	var (
		o   Object
		err error
	)

	if o.ID, err = e.u32("id"); err != nil {
		return o, err
	}
	if o.Position.X, err = e.f32("x"); err != nil {
		return o, err
	}
	if o.Position.Y, err = e.f32("y"); err != nil {
		return o, err
	}

	_, hasW := e.Attr("width")
	_, hasH := e.Attr("height")
	if hasW && hasH {
		var size Pair[float32]
		if size.X, err = e.f32("width"); err != nil {
			return o, err
		}
		if size.Y, err = e.f32("height"); err != nil {
			return o, err
		}
		o.Size = &size
	}

	if o.Rotation, err = e.f32Or("rotation", 0); err != nil {
		return o, err
	}
	if _, ok := e.Attr("gid"); ok {
		bits, err := e.u32("gid")
		if err != nil {
			return o, err
		}
		gid, flags := DecodeGID(bits)
		o.TileGid, o.TileFlags = &gid, flags
	}
	if o.Visible, err = e.flag("visible", true); err != nil {
		return o, err
	}

	o.Name = e.strOr("name", "")
	// Tiled 1.9 renamed "type" to "class".
	o.Class = e.strOr("class", e.strOr("type", ""))

	if o.Type, err = parseShape(e); err != nil {
		return o, err
	}
	if o.Properties, err = parseProperties(e); err != nil {
		return o, err
	}
	return o, nil
}

// parseShape returns the shape given by the first shape child of e, or a
// rectangle when there is none.
func parseShape(e elem) (ObjectType, error) {
	for i, c := range e.Children {
		switch c.Name {
		case "ellipse":
			return ObjectType{Shape: Ellipse}, nil
		case "point":
			return ObjectType{Shape: Point}, nil
		case "polygon", "polyline":
			ce := e.child(c, i)
			raw, err := ce.str("points")
			if err != nil {
				return ObjectType{}, err
			}
			pts, err := parsePoints(raw)
			if err != nil {
				return ObjectType{}, coercion(ce.path, "points", raw, "\"x,y x,y ...\" point list", err)
			}
			shape := Polygon
			if c.Name == "polyline" {
				shape = Polyline
			}
			return ObjectType{Shape: shape, Points: pts}, nil
		}
	}
	return ObjectType{Shape: Rectangle}, nil
}

// parseObjects decodes every <object> child of an object group.
func parseObjects(e elem) ([]Object, error) {
	objs := []Object{}
	for _, oe := range e.children("object") {
		o, err := parseObject(oe)
		if err != nil {
			return nil, err
		}
		objs = append(objs, o)
	}
	return objs, nil
}
