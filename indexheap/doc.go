// Package indexheap implements a generic binary max-heap augmented with an
// index from item id to array position. The index is what makes the structure
// more than a plain heap: any element, not just the root, can be located and
// mutated in O(log n), which is the operation priority schedulers,
// shortest-path searches, and timer wheels need (decrease-key/increase-key).
//
// Every item yields two values through caller-supplied accessors: a key,
// which orders the heap, and an id, which must be unique among the items
// currently present and is the lookup handle for that item. Both are derived
// from the item's current value, so rewriting an item may change its id; the
// heap re-keys its index accordingly when the mutation ends.
//
// Key features:
//   - Generic over the item type, any ordered key type, and any comparable id
//   - O(n) bulk construction, O(log n) push, pop, and arbitrary-id update
//   - O(1) lookup by id
//   - Scoped mutation of any element with automatic invariant restoration
//   - Read-only positional cursor for traversal
//
// Basic usage:
//
//	// A heap of ints where each value is its own key and id.
//	h := indexheap.HeapifySelf([]int{0, 100, 9, 41, -10, 55})
//
//	top, _ := h.Peek() // 100
//
//	// Raise the priority of the item with id -10.
//	_ = h.Update(-10, func(v *int) error {
//	    *v = 200
//	    return nil
//	})
//	top, _ = h.Peek() // 200
//
//	for !h.IsEmpty() {
//	    v, _ := h.Pop() // descending key order
//	    fmt.Println(v)
//	}
//
// For item types with distinct payload, key, and identity, supply accessors:
//
//	h := indexheap.New(
//	    func(j Job) int64 { return j.Priority },
//	    func(j Job) string { return j.Name },
//	)
//
// or implement the Item interface and use NewItems/HeapifyItems.
//
// The heap is not safe for concurrent use. In particular, a Ref obtained from
// GetMut holds the heap in an invariant-violating state until Release is
// called; no other operation may run in between. Concurrent embeddings must
// wrap the entire scope, lookup through release, in their own mutex.
package indexheap
