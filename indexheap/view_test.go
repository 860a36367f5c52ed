package indexheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descending() *Heap[int, int, int] {
	// Already a valid max-heap, so positions are stable after Heapify:
	//
	//	        9
	//	    8       7
	//	  6   5   4   3
	//	 2 1
	return HeapifySelf([]int{9, 8, 7, 6, 5, 4, 3, 2, 1})
}

func TestViewRoot(t *testing.T) {
	h := descending()
	v, ok := h.Root()
	require.True(t, ok)
	assert.Equal(t, 9, v.Value())
	assert.Equal(t, 0, v.Pos())

	_, ok = v.Parent()
	assert.False(t, ok)
}

func TestViewRootEmpty(t *testing.T) {
	h := NewSelf[int]()
	_, ok := h.Root()
	assert.False(t, ok)
}

func TestViewLeft(t *testing.T) {
	h := descending()
	v, _ := h.Root()

	l, ok := v.Left()
	require.True(t, ok)
	assert.Equal(t, 8, l.Value())

	ll, ok := l.Left()
	require.True(t, ok)
	assert.Equal(t, 6, ll.Value())

	lll, ok := ll.Left()
	require.True(t, ok)
	assert.Equal(t, 2, lll.Value())

	_, ok = lll.Left()
	assert.False(t, ok)
}

func TestViewRight(t *testing.T) {
	h := descending()
	v, _ := h.Root()

	r, ok := v.Right()
	require.True(t, ok)
	assert.Equal(t, 7, r.Value())

	rr, ok := r.Right()
	require.True(t, ok)
	assert.Equal(t, 3, rr.Value())

	_, ok = rr.Right()
	assert.False(t, ok)
}

func TestViewMixedNavigation(t *testing.T) {
	h := descending()
	v, _ := h.Root()

	l, _ := v.Left()
	ll, _ := l.Left()
	llr, ok := ll.Right()
	require.True(t, ok)
	assert.Equal(t, 1, llr.Value())

	p, ok := llr.Parent()
	require.True(t, ok)
	assert.Equal(t, ll.Pos(), p.Pos())
}

func TestViewAtBounds(t *testing.T) {
	h := descending()

	_, ok := h.At(-1)
	assert.False(t, ok)
	_, ok = h.At(h.Len())
	assert.False(t, ok)

	v, ok := h.At(h.Len() - 1)
	require.True(t, ok)
	assert.Equal(t, 1, v.Value())
}

func TestViewKey(t *testing.T) {
	h := New(jobKey, jobID)
	require.NoError(t, h.Push(job{priority: 42, name: "x"}))

	v, ok := h.Root()
	require.True(t, ok)
	assert.Equal(t, int64(42), v.Key())
	assert.Equal(t, "x", v.Value().name)
}
