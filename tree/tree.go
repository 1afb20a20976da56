// Package tree provides a generic ordered tree with breadth-first traversal
// and a zipper cursor for stepwise descent and ascent.
package tree

import "iter"

// Tree is either a leaf holding a value or a node holding a value and an
// ordered list of children. A node may have zero children and still be a node.
type Tree[T any] struct {
	Value    T
	Children []Tree[T]
	node     bool
}

// Leaf returns a terminal tree that can never have children.
func Leaf[T any](v T) Tree[T] {
	return Tree[T]{Value: v}
}

// Node returns a tree with the given children, in order.
func Node[T any](v T, children ...Tree[T]) Tree[T] {
	return Tree[T]{Value: v, Children: children, node: true}
}

// IsLeaf reports whether t is a leaf.
func (t Tree[T]) IsLeaf() bool {
	return !t.node
}

// IsNode reports whether t is a node.
func (t Tree[T]) IsNode() bool {
	return t.node
}

// Len returns the number of values in the tree, root included.
func (t Tree[T]) Len() int {
	n := 0
	for range t.BreadthFirst() {
		n++
	}
	return n
}

// Clone returns a copy of the tree structure. Values are copied by assignment.
func (t Tree[T]) Clone() Tree[T] {
	out := Tree[T]{Value: t.Value, node: t.node}
	if t.Children != nil {
		out.Children = make([]Tree[T], len(t.Children))
		for i, c := range t.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// BreadthFirst yields the root, then every level left to right.
// It walks with a FIFO queue so depth does not grow the call stack, and the
// sequence restarts from the root each time it is ranged over.
func (t *Tree[T]) BreadthFirst() iter.Seq[T] {
	return func(yield func(T) bool) {
		queue := []*Tree[T]{t}
		for len(queue) > 0 {
			cur := queue[0]
			queue[0] = nil
			queue = queue[1:]

			for i := range cur.Children {
				queue = append(queue, &cur.Children[i])
			}
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Zippers yields a zipper focused on every element of the tree, leaves
// included, in breadth-first order. Each zipper carries the breadcrumbs that
// lead back to the root, so GoUp and Ancestors work on it.
func (t *Tree[T]) Zippers() iter.Seq[Zipper[T]] {
	return func(yield func(Zipper[T]) bool) {
		queue := []Zipper[T]{NewZipper(*t)}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			kids := cur.focus.Children
			for i := range kids {
				queue = append(queue, cur.descend(i))
			}
			if !yield(cur) {
				return
			}
		}
	}
}
