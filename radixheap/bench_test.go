package radixheap_test

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/amallia/tlx/radixheap"
)

func benchKeys(n int) []uint64 {
	r := rand.New(rand.NewSource(9))
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = r.Uint64()
	}
	return keys
}

func BenchmarkPushPop(b *testing.B) {
	const n = 10000
	keys := benchKeys(n)
	h := radixheap.New(func(k uint64) uint64 { return k })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			h.Push(k)
		}
		for !h.Empty() {
			h.Pop()
		}
		h.Clear()
	}
}

func BenchmarkPushPopPair(b *testing.B) {
	const n = 10000
	keys := benchKeys(n)
	h := radixheap.NewPair[uint64, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, k := range keys {
			h.Push(k, j)
		}
		for !h.Empty() {
			h.Pop()
		}
		h.Clear()
	}
}

func BenchmarkPushPopDup(b *testing.B) {
	const n = 10000
	h := radixheap.New(func(k uint64) uint64 { return k })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < n; j++ {
			h.Push(0) // all elements are the same
		}
		for !h.Empty() {
			h.Pop()
		}
		h.Clear()
	}
}

func BenchmarkMonotoneSweep(b *testing.B) {
	// The intended workload: a sliding window of keys advancing
	// with the extracted minimum, as in shortest-path search.
	const window = 1024
	r := rand.New(rand.NewSource(10))
	offsets := make([]uint64, window)
	for i := range offsets {
		offsets[i] = uint64(r.Intn(4096))
	}
	h := radixheap.New(func(k uint64) uint64 { return k })
	for _, off := range offsets {
		h.Push(off)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := h.Pop()
		h.Push(k + offsets[i%window])
	}
}

// binaryHeap is a container/heap baseline for comparison.
type binaryHeap []uint64

func (h binaryHeap) Len() int            { return len(h) }
func (h binaryHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h binaryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *binaryHeap) Push(x interface{}) { *h = append(*h, x.(uint64)) }
func (h *binaryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func BenchmarkBinaryHeapBaseline(b *testing.B) {
	const n = 10000
	keys := benchKeys(n)
	h := make(binaryHeap, 0, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h = h[:0]
		for _, k := range keys {
			heap.Push(&h, k)
		}
		for h.Len() > 0 {
			heap.Pop(&h)
		}
	}
}
