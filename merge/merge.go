// Package merge implements merging of ordered integer sequences.
package merge

import (
	"fmt"
	"iter"

	"github.com/amallia/tlx/radixheap"
)

// Merge merges two non-decreasing sequences of integers into one
// non-decreasing sequence. It panics if an input sequence turns out
// not to be ordered.
func Merge[K radixheap.Integer](it0, it1 iter.Seq[K]) iter.Seq[K] {
	return MergeMulti(it0, it1)
}

// MergeMulti merges any number of non-decreasing sequences of
// integers into one non-decreasing sequence. The heads of the input
// sequences are kept in a monotone radix heap keyed by value: merging
// consumes keys in non-decreasing order, so each step pops the
// smallest head and refills the heap from the sequence it came from.
// MergeMulti panics if an input sequence turns out not to be ordered.
func MergeMulti[K radixheap.Integer](its ...iter.Seq[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		stops := make([]func(), 0, len(its))
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()
		nexts := make([]func() (K, bool), len(its))
		h := radixheap.NewPair[K, int]()
		for i, it := range its {
			next, stop := iter.Pull(it)
			stops = append(stops, stop)
			nexts[i] = next
			if x, ok := next(); ok {
				h.Push(x, i)
			}
		}
		for !h.Empty() {
			x, i := h.Pop()
			if !yield(x) {
				return
			}
			if x1, ok := nexts[i](); ok {
				if x1 < x {
					panic(fmt.Errorf("out of order item in sequence %d (%v < %v)", i, x1, x))
				}
				h.Push(x1, i)
			}
		}
	}
}
