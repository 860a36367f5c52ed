package indexheap

import "cmp"

// Item is the capability contract for heap elements that carry their own
// accessors: Key orders the heap and ID uniquely identifies the element
// among those currently present. Types that cannot or should not implement
// the interface can pass standalone accessor functions to New or Heapify
// instead; the two forms are equivalent.
type Item[K cmp.Ordered, I comparable] interface {
	Key() K
	ID() I
}

// NewItems creates an empty heap over a type implementing Item. Type
// inference cannot see through the method set, so all three type arguments
// must be given explicitly: NewItems[task, int, string]().
func NewItems[T Item[K, I], K cmp.Ordered, I comparable]() *Heap[T, K, I] {
	return New(
		func(t T) K { return t.Key() },
		func(t T) I { return t.ID() },
	)
}

// HeapifyItems builds a heap from a slice of a type implementing Item. As
// with NewItems, the type arguments must be explicit.
func HeapifyItems[T Item[K, I], K cmp.Ordered, I comparable](items []T) (*Heap[T, K, I], error) {
	return Heapify(
		items,
		func(t T) K { return t.Key() },
		func(t T) I { return t.ID() },
	)
}

// NewSelf creates an empty heap whose elements serve as their own key and
// id, for simple numeric or string priority queues. Because the id is the
// value itself, duplicate values are duplicate ids and are rejected by
// Push, and mutating an element through a Ref changes its id to the new
// value.
func NewSelf[V cmp.Ordered]() *Heap[V, V, V] {
	return New(self[V], self[V])
}

// HeapifySelf builds a self-keyed heap from a slice of distinct values. It
// panics if the values are not distinct; use Heapify with explicit
// accessors when duplicates are possible.
func HeapifySelf[V cmp.Ordered](items []V) *Heap[V, V, V] {
	h, err := Heapify(items, self[V], self[V])
	if err != nil {
		panic(err)
	}
	return h
}

func self[V cmp.Ordered](v V) V { return v }
