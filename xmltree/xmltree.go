// Package xmltree turns XML text into a generic element tree: names,
// attributes, child elements and the character data found directly inside
// each element. It knows nothing about TMX.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Attr is a single attribute, kept in document order.
type Attr struct {
	Name  string
	Value string
}

// Element is one XML element. Namespaces are dropped; only local names are
// kept.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	// Text is the concatenation of every character-data run that appears
	// directly inside the element, in order. CDATA sections are included.
	Text string
	// Line is the 1-based line the start tag appeared on, 0 if unknown.
	Line int
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every child element with the given name, in order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// ErrNoRoot is returned for input that holds no element at all.
var ErrNoRoot = errors.New("xmltree: no root element")

// Parse reads a whole XML document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		root  *Element
		stack []*Element
		text  []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			el := &Element{Name: t.Name.Local, Line: line}
			if len(t.Attr) > 0 {
				el.Attrs = make([]Attr, 0, len(t.Attr))
				for _, a := range t.Attr {
					el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
				}
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xmltree: second root element <%s> on line %d", el.Name, line)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			text = append(text, &strings.Builder{})

		case xml.EndElement:
			// encoding/xml already rejects mismatched end tags in strict mode.
			el := stack[len(stack)-1]
			el.Text = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]

		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			} else if len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("xmltree: character data outside the root element")
			}
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("xmltree: unclosed element <%s>", stack[len(stack)-1].Name)
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Element, error) {
	return Parse(bytes.NewReader(data))
}

// ParseString is Parse over a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// charsetReader decodes documents whose prolog names a charset other than
// UTF-8. encoding/xml handles UTF-8 itself and only calls this for the rest.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
