package tmx

import (
	"errors"
	"testing"

	"github.com/retroblast-engine/tmx/xmltree"
)

func mustElem(t *testing.T, src string) elem {
	t.Helper()
	root, err := xmltree.ParseString(src)
	if err != nil {
		t.Fatalf("xmltree.ParseString: %v", err)
	}
	return rootElem(root)
}

// wantKind fails the test unless err is an *Error of the given kind.
func wantKind(t *testing.T, err error, sentinel *Error) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", sentinel.Kind)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected %s error, got %v", sentinel.Kind, err)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not an *Error", err)
	}
	return e
}
