package indexheap

import (
	"cmp"
	"errors"
	"fmt"
)

// Common errors returned by heap operations.
var (
	ErrDuplicateID = errors.New("indexheap: id already present")
	ErrIDNotFound  = errors.New("indexheap: id not found")
)

// Heap is a binary max-heap over items of type T, ordered by a key of type K
// and indexed by an id of type I. The zero value is not usable; construct
// heaps with New, Heapify, or one of the adapter constructors in item.go.
type Heap[T any, K cmp.Ordered, I comparable] struct {
	items []T
	index map[I]int // id -> current position in items
	keyOf func(T) K
	idOf  func(T) I
}

// New creates an empty heap using the given key and id accessors. The key
// orders the heap (larger keys closer to the root); the id must uniquely
// identify an item among all items present at any instant.
func New[T any, K cmp.Ordered, I comparable](key func(T) K, id func(T) I) *Heap[T, K, I] {
	return &Heap[T, K, I]{
		items: make([]T, 0),
		index: make(map[I]int),
		keyOf: key,
		idOf:  id,
	}
}

// Heapify builds a heap from an unordered slice in O(n): the index map is
// built in one pass, then every internal position is sifted down from the
// last parent to the root. The input slice is not retained. Returns
// ErrDuplicateID if two items share an id.
func Heapify[T any, K cmp.Ordered, I comparable](items []T, key func(T) K, id func(T) I) (*Heap[T, K, I], error) {
	h := &Heap[T, K, I]{
		items: append(make([]T, 0, len(items)), items...),
		index: make(map[I]int, len(items)),
		keyOf: key,
		idOf:  id,
	}
	for i, it := range h.items {
		v := id(it)
		if _, ok := h.index[v]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateID, v)
		}
		h.index[v] = i
	}
	// Children of i live at 2i+1 and 2i+2, so positions >= len/2 are leaves
	// and already valid sub-heaps.
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h, nil
}

// Len returns the number of items in the heap.
func (h *Heap[T, K, I]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap contains no items.
func (h *Heap[T, K, I]) IsEmpty() bool {
	return len(h.items) == 0
}

// Peek returns the maximum-key item without removing it.
func (h *Heap[T, K, I]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Push inserts an item, appending it at the end and sifting it up. Returns
// ErrDuplicateID if an item with the same id is already present; the heap is
// unchanged in that case.
func (h *Heap[T, K, I]) Push(item T) error {
	id := h.idOf(item)
	if _, ok := h.index[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateID, id)
	}
	h.index[id] = len(h.items)
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
	return nil
}

// Pop removes and returns the maximum-key item, or false if the heap is
// empty. The root is transposed with the last position before truncation so
// no other position moves.
func (h *Heap[T, K, I]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	last := len(h.items) - 1
	h.transpose(0, last)
	item := h.items[last]
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	delete(h.index, h.idOf(item))
	h.siftDown(0)
	return item, true
}

// Get returns the item with the given id. A missing id is a normal miss, not
// an error.
func (h *Heap[T, K, I]) Get(id I) (T, bool) {
	i, ok := h.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return h.items[i], true
}

// Remove deletes the item with the given id, wherever it sits, and returns
// it. The vacated position is refilled from the last slot and re-sifted in
// both directions.
func (h *Heap[T, K, I]) Remove(id I) (T, bool) {
	i, ok := h.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	last := len(h.items) - 1
	h.transpose(i, last)
	item := h.items[last]
	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	delete(h.index, id)
	if i < last {
		h.siftDown(i)
		h.siftUp(i)
	}
	return item, true
}

func (h *Heap[T, K, I]) keyAt(i int) K {
	return h.keyOf(h.items[i])
}

func (h *Heap[T, K, I]) idAt(i int) I {
	return h.idOf(h.items[i])
}
