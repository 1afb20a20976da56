package tree

import "slices"

// crumb records how the zipper got to its focus: the parent's own value and
// the siblings to the left and right of the child it descended into.
type crumb[T any] struct {
	value T
	left  []Tree[T]
	right []Tree[T]
}

// Zipper is a cursor over a tree. Moving the cursor never mutates the tree it
// was built from; GoTo shares sibling slices and GoUp rebuilds only the parent
// it returns to.
type Zipper[T any] struct {
	focus  Tree[T]
	crumbs []crumb[T]
}

// NewZipper returns a zipper focused on the root of a copy of t.
func NewZipper[T any](t Tree[T]) Zipper[T] {
	return Zipper[T]{focus: t.Clone()}
}

// Focus returns the subtree under the cursor.
func (z Zipper[T]) Focus() Tree[T] {
	return z.focus
}

// Value returns the value under the cursor.
func (z Zipper[T]) Value() T {
	return z.focus.Value
}

// Depth returns the number of steps between the focus and the root.
func (z Zipper[T]) Depth() int {
	return len(z.crumbs)
}

// AtRoot reports whether the cursor is at the root.
func (z Zipper[T]) AtRoot() bool {
	return len(z.crumbs) == 0
}

// GoTo descends into the first node child whose value satisfies match.
// Leaf children are never descended into. It reports false when the focus is
// a leaf or no child matches.
func (z Zipper[T]) GoTo(match func(T) bool) (Zipper[T], bool) {
	if z.focus.IsLeaf() {
		return Zipper[T]{}, false
	}
	for i, c := range z.focus.Children {
		if c.IsNode() && match(c.Value) {
			return z.descend(i), true
		}
	}
	return Zipper[T]{}, false
}

// descend moves to child i regardless of its variant.
func (z Zipper[T]) descend(i int) Zipper[T] {
	kids := z.focus.Children
	c := crumb[T]{
		value: z.focus.Value,
		left:  kids[:i:i],
		right: kids[i+1:],
	}
	return Zipper[T]{
		focus:  kids[i],
		crumbs: append(slices.Clip(z.crumbs), c),
	}
}

// GoUp returns to the parent, splicing the focus back between its original
// siblings. It reports false at the root.
func (z Zipper[T]) GoUp() (Zipper[T], bool) {
	if len(z.crumbs) == 0 {
		return Zipper[T]{}, false
	}
	c := z.crumbs[len(z.crumbs)-1]

	kids := make([]Tree[T], 0, len(c.left)+1+len(c.right))
	kids = append(kids, c.left...)
	kids = append(kids, z.focus)
	kids = append(kids, c.right...)

	return Zipper[T]{
		focus:  Node(c.value, kids...),
		crumbs: z.crumbs[:len(z.crumbs)-1 : len(z.crumbs)-1],
	}, true
}

// Root climbs to the root and returns the reassembled tree.
func (z Zipper[T]) Root() Tree[T] {
	for {
		up, ok := z.GoUp()
		if !ok {
			return z.focus
		}
		z = up
	}
}

// Ancestors returns the values of every ancestor of the focus, root first.
func (z Zipper[T]) Ancestors() []T {
	out := make([]T, len(z.crumbs))
	for i, c := range z.crumbs {
		out[i] = c.value
	}
	return out
}
