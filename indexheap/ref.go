package indexheap

import (
	"cmp"
	"fmt"
)

// Ref is a scoped mutation handle for a single element. While a Ref is
// outstanding the holder may rewrite the element's value arbitrarily,
// including its key and id; the heap's invariants are suspended until
// Release runs. No other heap operation may be performed while a Ref is
// outstanding.
type Ref[T any, K cmp.Ordered, I comparable] struct {
	h        *Heap[T, K, I]
	pos      int
	origKey  K
	origID   I
	released bool
}

// GetMut returns a mutation handle for the item with the given id, or false
// if the id is absent. The caller must call Release exactly once when done;
// defer is the usual form. Update wraps this pattern for the common case.
func (h *Heap[T, K, I]) GetMut(id I) (*Ref[T, K, I], bool) {
	i, ok := h.index[id]
	if !ok {
		return nil, false
	}
	return &Ref[T, K, I]{
		h:       h,
		pos:     i,
		origKey: h.keyAt(i),
		origID:  h.idAt(i),
	}, true
}

// Value returns a pointer to the element's full value. The pointer is valid
// only until Release.
func (r *Ref[T, K, I]) Value() *T {
	return &r.h.items[r.pos]
}

// Release restores the heap's invariants: the index map is re-keyed from
// the original id to the element's current id, then the element is sifted
// up or down according to how its key changed. Release is idempotent;
// second and later calls do nothing.
//
// Release panics if the original id is no longer mapped to the element's
// position, or if the element's id was rewritten to one held by a different
// element. Both are unrecoverable consistency violations.
func (r *Ref[T, K, I]) Release() {
	if r.released {
		return
	}
	r.released = true

	h := r.h
	newID := h.idAt(r.pos)
	newKey := h.keyAt(r.pos)

	old, ok := h.index[r.origID]
	if !ok || old != r.pos {
		panic(fmt.Sprintf("indexheap: index entry for id %v lost during mutation", r.origID))
	}
	if newID != r.origID {
		if _, taken := h.index[newID]; taken {
			panic(fmt.Sprintf("indexheap: id rewritten to %v, which is already present", newID))
		}
		delete(h.index, r.origID)
		h.index[newID] = r.pos
	}

	switch {
	case r.origKey > newKey:
		h.siftDown(r.pos)
	case r.origKey < newKey:
		h.siftUp(r.pos)
	}
}

// Update looks up the item with the given id and applies fn to it. The
// invariant restoration performed by Release runs on every exit path:
// normal return, an error from fn, and a panic from fn. The error from fn,
// if any, is returned after restoration. A missing id reports ErrIDNotFound.
func (h *Heap[T, K, I]) Update(id I, fn func(*T) error) error {
	r, ok := h.GetMut(id)
	if !ok {
		return fmt.Errorf("%w: %v", ErrIDNotFound, id)
	}
	defer r.Release()
	return fn(r.Value())
}
