package radixheap

import "github.com/amallia/tlx/bitarray"

// PairHeap is a monotone min-priority queue holding payloads of type
// D keyed on integers of type K. Unlike Heap it stores keys and
// payloads separately, and it only stores keys for buckets in rows
// above 0: a row-0 bucket can hold a single distinct key, which the
// heap already tracks as the bucket minimum. Use PairHeap rather than
// Heap when the payload does not itself contain the key. The zero
// value is not usable; call NewPair or NewPairRadix.
type PairHeap[K Integer, D any] struct {
	rank ranker[K]
	bmap bucketer

	size  int
	limit uint64
	cur   int

	data   [][]D
	keys   [][]uint64 // per-element ranks, parallel to data; rows > 0 only
	mins   []uint64
	filled *bitarray.Array
}

// NewPair returns an empty pair heap with the default radix.
func NewPair[K Integer, D any]() *PairHeap[K, D] {
	return NewPairRadix[K, D](DefaultRadix)
}

// NewPairRadix is like NewPair but with an explicit radix, which must
// be a power of two between 2 and 64.
func NewPairRadix[K Integer, D any](radix int) *PairHeap[K, D] {
	rank := newRanker[K]()
	bmap := newBucketer(radix, rank.mask)
	h := &PairHeap[K, D]{
		rank:   rank,
		bmap:   bmap,
		data:   make([][]D, bmap.buckets),
		keys:   make([][]uint64, bmap.buckets),
		mins:   make([]uint64, bmap.buckets),
		filled: bitarray.New(bmap.buckets),
	}
	for i := range h.mins {
		h.mins[i] = rank.mask
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *PairHeap[K, D]) Len() int {
	return h.size
}

// Empty reports whether the heap holds no elements.
func (h *PairHeap[K, D]) Empty() bool {
	return h.size == 0
}

// Push adds data with the given key. It panics if key is below the
// insertion limit, that is, smaller than a key that has already been
// extracted with Top, Pop or SwapTopBucket.
func (h *PairHeap[K, D]) Push(key K, data D) {
	r := h.rank.rankOf(key)
	if r < h.limit {
		panic("radixheap: Push of key below the insertion limit")
	}
	idx := h.bmap.bucketOf(r, h.limit)
	if len(h.data[idx]) == 0 {
		h.filled.Set(idx)
	}
	h.data[idx] = append(h.data[idx], data)
	if idx >= h.bmap.radix {
		h.keys[idx] = append(h.keys[idx], r)
	}
	if r < h.mins[idx] {
		h.mins[idx] = r
	}
	h.size++
}

// PeekMinKey returns the smallest key in the heap without advancing
// the insertion limit. It panics if the heap is empty.
func (h *PairHeap[K, D]) PeekMinKey() K {
	if h.size == 0 {
		panic("radixheap: PeekMinKey on empty heap")
	}
	return h.rank.keyAt(h.mins[h.filled.FirstSet()])
}

// Top returns the smallest key and one of its payloads without
// removing anything. It advances the insertion limit: no key smaller
// than the returned one may be pushed afterwards. Top panics if the
// heap is empty.
func (h *PairHeap[K, D]) Top() (K, D) {
	if h.size == 0 {
		panic("radixheap: Top on empty heap")
	}
	h.reorganize()
	bucket := h.data[h.cur]
	return h.rank.keyAt(h.mins[h.cur]), bucket[len(bucket)-1]
}

// Pop removes and returns the smallest key and one of its payloads,
// advancing the insertion limit. The order in which payloads of equal
// key are returned is unspecified. Pop panics if the heap is empty.
func (h *PairHeap[K, D]) Pop() (K, D) {
	if h.size == 0 {
		panic("radixheap: Pop on empty heap")
	}
	h.reorganize()
	key := h.rank.keyAt(h.mins[h.cur])
	bucket := h.data[h.cur]
	n := len(bucket) - 1
	d := bucket[n]
	bucket[n] = *new(D)
	h.data[h.cur] = bucket[:n]
	if n == 0 {
		h.filled.Clear(h.cur)
		h.mins[h.cur] = h.rank.mask
	}
	h.size--
	return key, d
}

// SwapTopBucket exchanges the entire bucket holding the minimum with
// the caller-supplied empty bucket in constant time, advancing the
// insertion limit. All exchanged payloads share the key that
// PeekMinKey would have returned. SwapTopBucket panics if the heap is
// empty or if the supplied bucket is not.
func (h *PairHeap[K, D]) SwapTopBucket(bucket *[]D) {
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
func (h *PairHeap[K, D]) Clear() {
	for i := range h.data {
		clear(h.data[i])
		h.data[i] = h.data[i][:0]
		h.keys[i] = h.keys[i][:0]
	}
	for i := range h.mins {
		h.mins[i] = h.rank.mask
	}
	h.filled.ClearAll()
	h.size = 0
	h.limit = 0
	h.cur = 0
}

// reorganize is Heap.reorganize for the split storage layout: the
// ranks needed to redistribute a higher-row bucket come from the
// parallel keys slice instead of the values themselves. Row-0 target
// buckets drop the stored rank, since it equals the bucket minimum.
func (h *PairHeap[K, D]) reorganize() {
	if len(h.data[h.cur]) != 0 {
		return
	}
	h.mins[h.cur] = h.rank.mask
	h.filled.Clear(h.cur)

	b := h.filled.FirstSet()
	if b < h.bmap.radix {
		h.cur = b
		h.limit = h.mins[b]
		return
	}

	h.limit = h.mins[b]
	src, srcKeys := h.data[b], h.keys[b]
	for i := range src {
		r := srcKeys[i]
		idx := h.bmap.bucketOf(r, h.limit)
		if len(h.data[idx]) == 0 {
			h.filled.Set(idx)
		}
		h.data[idx] = append(h.data[idx], src[i])
		if idx >= h.bmap.radix {
			h.keys[idx] = append(h.keys[idx], r)
		}
		if r < h.mins[idx] {
			h.mins[idx] = r
		}
	}
	clear(src)
	h.data[b] = src[:0]
	h.keys[b] = srcKeys[:0]
	h.mins[b] = h.rank.mask
	h.filled.Clear(b)

	h.cur = h.filled.FirstSet()
}
