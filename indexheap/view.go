package indexheap

import "cmp"

// View is a read-only cursor over heap positions, exposing the parent and
// child relationships of the underlying array. Views carry no state beyond
// the position and are only valid until the heap is next mutated.
type View[T any, K cmp.Ordered, I comparable] struct {
	h   *Heap[T, K, I]
	pos int
}

// Root returns a view of the maximum-key position, or false if the heap is
// empty.
func (h *Heap[T, K, I]) Root() (View[T, K, I], bool) {
	return h.At(0)
}

// At returns a view of position i, or false if i is out of bounds.
func (h *Heap[T, K, I]) At(i int) (View[T, K, I], bool) {
	if i < 0 || i >= len(h.items) {
		return View[T, K, I]{}, false
	}
	return View[T, K, I]{h: h, pos: i}, true
}

// Parent returns a view of the parent position, or false at the root.
func (v View[T, K, I]) Parent() (View[T, K, I], bool) {
	if v.pos == 0 {
		return View[T, K, I]{}, false
	}
	return v.h.At(parentOf(v.pos))
}

// Left returns a view of the left child, or false if there is none.
func (v View[T, K, I]) Left() (View[T, K, I], bool) {
	return v.h.At(leftOf(v.pos))
}

// Right returns a view of the right child, or false if there is none.
func (v View[T, K, I]) Right() (View[T, K, I], bool) {
	return v.h.At(rightOf(v.pos))
}

// Value returns the item at the view's position.
func (v View[T, K, I]) Value() T {
	return v.h.items[v.pos]
}

// Key returns the key of the item at the view's position.
func (v View[T, K, I]) Key() K {
	return v.h.keyAt(v.pos)
}

// Pos returns the view's array position.
func (v View[T, K, I]) Pos() int {
	return v.pos
}
