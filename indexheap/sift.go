package indexheap

// Zero-based tree arithmetic: node i has parent (i-1)/2 and children 2i+1
// and 2i+2.
func parentOf(i int) int { return (i - 1) / 2 }
func leftOf(i int) int   { return 2*i + 1 }
func rightOf(i int) int  { return leftOf(i) + 1 }

// transpose swaps the items at positions i and j and repoints both ids'
// index entries. Every structural change to the heap funnels through here,
// which is what keeps the slice and the index map in lockstep.
func (h *Heap[T, K, I]) transpose(i, j int) {
	h.index[h.idAt(i)] = j
	h.index[h.idAt(j)] = i
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// siftUp moves the item at position i toward the root until its parent's key
// is at least its own.
func (h *Heap[T, K, I]) siftUp(i int) {
	for i > 0 {
		p := parentOf(i)
		if !(h.keyAt(p) < h.keyAt(i)) {
			break
		}
		h.transpose(i, p)
		i = p
	}
}

// siftDown moves the item at position i toward the leaves until both
// children's keys are at most its own. When both children exist the
// larger-key child is chosen; on equal keys the right child wins.
func (h *Heap[T, K, I]) siftDown(i int) {
	for {
		var next int
		l, r := leftOf(i), rightOf(i)
		switch {
		case r < len(h.items):
			if h.keyAt(l) > h.keyAt(r) {
				next = l
			} else {
				next = r
			}
		case l < len(h.items):
			next = l
		default:
			return
		}
		if !(h.keyAt(i) < h.keyAt(next)) {
			return
		}
		h.transpose(i, next)
		i = next
	}
}
