package tmx

import (
	"fmt"
	"strings"
)

// Kind categorizes a parse failure.
type Kind string

const (
	KindMalformed        Kind = "malformed"         // not markup, or not a map document
	KindMissingAttribute Kind = "missing_attribute" // required attribute absent
	KindTypeCoercion     Kind = "type_coercion"     // value present but of the wrong type
	KindUnsupported      Kind = "unsupported"       // construct outside the supported subset
	KindReferential      Kind = "referential"       // gid owned by no tileset
	KindStructural       Kind = "structural"        // grid shape is inconsistent
)

// Error is the single error type returned by the parser.
type Error struct {
	Cause  error
	Kind   Kind
	Attr   string
	Value  string
	Detail string
	// Path locates the offending element, e.g. ["map", "group[2]", "layer[5]"].
	Path []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("tmx: ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Attr != "" {
		b.WriteString(" attribute ")
		b.WriteString(e.Attr)
		if e.Value != "" {
			b.WriteString("=")
			b.WriteString(fmt.Sprintf("%q", e.Value))
		}
	} else if e.Value != "" {
		b.WriteString(" value ")
		b.WriteString(fmt.Sprintf("%q", e.Value))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind, so the sentinels
// below can be used with errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrMalformed        = &Error{Kind: KindMalformed}
	ErrMissingAttribute = &Error{Kind: KindMissingAttribute}
	ErrTypeCoercion     = &Error{Kind: KindTypeCoercion}
	ErrUnsupported      = &Error{Kind: KindUnsupported}
	ErrReferential      = &Error{Kind: KindReferential}
	ErrStructural       = &Error{Kind: KindStructural}
)

func malformed(path []string, cause error, detail string, args ...any) *Error {
	return &Error{Kind: KindMalformed, Path: path, Cause: cause, Detail: fmt.Sprintf(detail, args...)}
}

func missingAttr(path []string, attr string) *Error {
	return &Error{Kind: KindMissingAttribute, Path: path, Attr: attr, Detail: "required"}
}

func missingChild(path []string, child string) *Error {
	return &Error{Kind: KindMissingAttribute, Path: path, Detail: "required <" + child + "> element"}
}

func coercion(path []string, attr, value, want string, cause error) *Error {
	return &Error{
		Kind:   KindTypeCoercion,
		Path:   path,
		Attr:   attr,
		Value:  value,
		Detail: "expected " + want,
		Cause:  cause,
	}
}

func unsupported(path []string, detail string, args ...any) *Error {
	return &Error{Kind: KindUnsupported, Path: path, Detail: fmt.Sprintf(detail, args...)}
}

func referential(path []string, gid Gid) *Error {
	return &Error{
		Kind:   KindReferential,
		Path:   path,
		Value:  fmt.Sprint(uint32(gid)),
		Detail: fmt.Sprintf("gid %d is not owned by any tileset", gid),
	}
}

func structural(path []string, detail string, args ...any) *Error {
	return &Error{Kind: KindStructural, Path: path, Detail: fmt.Sprintf(detail, args...)}
}

// within returns err with path prefixed when err is an *Error that does not
// carry a path yet. Decoders that work on bare text use it to report where
// the text came from.
func within(path []string, err error) error {
	if e, ok := err.(*Error); ok && len(e.Path) == 0 {
		cp := *e
		cp.Path = path
		return &cp
	}
	return err
}
