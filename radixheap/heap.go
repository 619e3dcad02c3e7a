// Package radixheap implements a monotone integer-keyed min-priority
// queue, known as a multi-level radix heap.
//
// Monotone means that the heap maintains an insertion limit: once an
// element with some key has been extracted, no element with a smaller
// key may be inserted afterwards. This is exactly the access pattern
// of Dijkstra-style shortest path search, discrete event simulation
// and other schedulers that process work in non-decreasing key order,
// and it is what lets the heap insert in amortised constant time and
// extract in time amortised logarithmic in the key range.
//
// Keys are fixed-width integers. Let w be the key's width in bits and
// radix a power of two. Rather than the w buckets of a classic radix
// heap, the heap keeps ceil(w/log2(radix)) rows of up to radix
// buckets each, which reduces the number of element moves when the
// heap is reorganised. The layout follows "An Experimental Study of
// Priority Queues in External Memory" [Bregel et al.] and is also
// inspired by https://github.com/iwiwi/radix-heap.
//
// There are two heap flavours: Heap stores whole values and extracts
// keys with a caller-supplied function, while PairHeap stores keys
// and payloads separately and avoids storing keys it can reconstruct.
package radixheap

import "github.com/amallia/tlx/bitarray"

// DefaultRadix is the radix used by New and NewPair. It trades the
// number of rows (fewer with a larger radix, so elements are moved
// less often) against their width (more buckets whose contents are
// redistributed in one go).
const DefaultRadix = 8

// Heap is a monotone min-priority queue holding values of type V
// keyed on integers of type K. The zero value is not usable; call New
// or NewRadix.
type Heap[V any, K Integer] struct {
	keyOf func(V) K
	rank  ranker[K]
	bmap  bucketer

	size  int
	limit uint64 // insertion limit, as a rank
	cur   int    // bucket holding the minimum once settled

	data   [][]V
	mins   []uint64 // smallest rank per bucket; mask sentinel when empty
	filled *bitarray.Array
}

// New returns an empty heap with the default radix, using keyOf to
// extract the ordering key from a value.
func New[V any, K Integer](keyOf func(V) K) *Heap[V, K] {
	return NewRadix(DefaultRadix, keyOf)
}

// NewRadix is like New but with an explicit radix, which must be a
// power of two between 2 and 64.
func NewRadix[V any, K Integer](radix int, keyOf func(V) K) *Heap[V, K] {
	rank := newRanker[K]()
	bmap := newBucketer(radix, rank.mask)
	h := &Heap[V, K]{
		keyOf:  keyOf,
		rank:   rank,
		bmap:   bmap,
		data:   make([][]V, bmap.buckets),
		mins:   make([]uint64, bmap.buckets),
		filled: bitarray.New(bmap.buckets),
	}
	for i := range h.mins {
		h.mins[i] = rank.mask
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[V, K]) Len() int {
	return h.size
}

// Empty reports whether the heap holds no elements.
func (h *Heap[V, K]) Empty() bool {
	return h.size == 0
}

// Push adds v to the heap. It panics if v's key is below the
// insertion limit, that is, smaller than a key that has already been
// extracted with Top, Pop or SwapTopBucket.
func (h *Heap[V, K]) Push(v V) {
	r := h.rank.rankOf(h.keyOf(v))
	if r < h.limit {
		panic("radixheap: Push of key below the insertion limit")
	}
	idx := h.bmap.bucketOf(r, h.limit)
	if len(h.data[idx]) == 0 {
		h.filled.Set(idx)
	}
	h.data[idx] = append(h.data[idx], v)
	if r < h.mins[idx] {
		h.mins[idx] = r
	}
	h.size++
}

// PeekMinKey returns the smallest key in the heap without advancing
// the insertion limit. It panics if the heap is empty.
func (h *Heap[V, K]) PeekMinKey() K {
	if h.size == 0 {
		panic("radixheap: PeekMinKey on empty heap")
	}
	return h.rank.keyAt(h.mins[h.filled.FirstSet()])
}

// Top returns an element with the smallest key without removing it.
// It advances the insertion limit: even though nothing is removed, no
// key smaller than the returned element's may be pushed afterwards.
// Top panics if the heap is empty.
func (h *Heap[V, K]) Top() V {
	if h.size == 0 {
		panic("radixheap: Top on empty heap")
	}
	h.reorganize()
	bucket := h.data[h.cur]
	return bucket[len(bucket)-1]
}

// Pop removes and returns an element with the smallest key, advancing
// the insertion limit. The order in which elements of equal key are
// returned is unspecified. Pop panics if the heap is empty.
func (h *Heap[V, K]) Pop() V {
	if h.size == 0 {
		panic("radixheap: Pop on empty heap")
	}
	h.reorganize()
	bucket := h.data[h.cur]
	n := len(bucket) - 1
	v := bucket[n]
	bucket[n] = *new(V)
	h.data[h.cur] = bucket[:n]
	if n == 0 {
		h.filled.Clear(h.cur)
		h.mins[h.cur] = h.rank.mask
	}
	h.size--
	return v
}

// SwapTopBucket exchanges the entire bucket holding the minimum with
// the caller-supplied empty bucket in constant time, advancing the
// insertion limit. It can be used to drain the minimum elements in
// bulk without per-element copies; all exchanged elements share the
// same key. The swapped-in slice keeps its capacity for reuse.
// SwapTopBucket panics if the heap is empty or if the supplied bucket
// is not.
func (h *Heap[V, K]) SwapTopBucket(bucket *[]V) {
	if len(*bucket) != 0 {
		panic("radixheap: SwapTopBucket with non-empty bucket")
	}
	if h.size == 0 {
		panic("radixheap: SwapTopBucket on empty heap")
	}
	h.reorganize()
	*bucket, h.data[h.cur] = h.data[h.cur], (*bucket)[:0]
	h.filled.Clear(h.cur)
	h.mins[h.cur] = h.rank.mask
	h.size -= len(*bucket)
}

// Clear removes all elements and resets the insertion limit, so any
// key may be pushed again.
func (h *Heap[V, K]) Clear() {
	for i := range h.data {
		clear(h.data[i])
		h.data[i] = h.data[i][:0]
	}
	for i := range h.mins {
		h.mins[i] = h.rank.mask
	}
	h.filled.ClearAll()
	h.size = 0
	h.limit = 0
	h.cur = 0
}

// reorganize restores the settled state in which h.cur is a row-0
// bucket holding the minimum, advancing the insertion limit to the
// minimum's rank. The caller must have checked that the heap is not
// empty.
//
// If the lowest non-empty bucket is in a higher row its elements are
// redistributed under the advanced limit; every element then lands in
// a strictly lower bucket, which is what bounds the amortised cost:
// an element moves at most once per row during its lifetime.
func (h *Heap[V, K]) reorganize() {
	if len(h.data[h.cur]) != 0 {
		return
	}
	h.mins[h.cur] = h.rank.mask
	h.filled.Clear(h.cur)

	b := h.filled.FirstSet()
	if b < h.bmap.radix {
		// A row-0 bucket holds a single distinct rank, so no
		// redistribution is needed.
		h.cur = b
		h.limit = h.mins[b]
		return
	}

	h.limit = h.mins[b]
	src := h.data[b]
	for i := range src {
		r := h.rank.rankOf(h.keyOf(src[i]))
		idx := h.bmap.bucketOf(r, h.limit)
		if len(h.data[idx]) == 0 {
			h.filled.Set(idx)
		}
		h.data[idx] = append(h.data[idx], src[i])
		if r < h.mins[idx] {
			h.mins[idx] = r
		}
	}
	clear(src)
	h.data[b] = src[:0]
	h.mins[b] = h.rank.mask
	h.filled.Clear(b)

	h.cur = h.filled.FirstSet()
}
