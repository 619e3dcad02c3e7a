// Package bitarray implements a fixed-capacity bit set that is
// optimised for finding the lowest set bit.
//
// The bits are held in a shallow tree of 64-bit summary words with a
// fan-out of 64: a bit in a summary word is set if and only if the
// word below it is non-zero. All operations except ClearAll therefore
// cost O(log64 n) word operations, which is at most a handful of
// machine words for any realistic capacity.
package bitarray

import "math/bits"

// Array holds a fixed-size set of bit flags. The capacity is chosen
// at construction and cannot change. Use New to create one.
type Array struct {
	size int

	// levels[0] holds the bits themselves; levels[k] holds one
	// summary bit per word of levels[k-1]. The last level is always
	// a single word.
	levels [][]uint64
}

// New returns an Array capable of holding size bits, all initially
// clear. It panics if size is not positive.
func New(size int) *Array {
	if size <= 0 {
		panic("bitarray.New called with non-positive size")
	}
	var levels [][]uint64
	for n := size; ; n = (n + 63) / 64 {
		words := (n + 63) / 64
		levels = append(levels, make([]uint64, words))
		if words == 1 {
			break
		}
	}
	return &Array{size: size, levels: levels}
}

// Size returns the capacity of the array in bits.
func (a *Array) Size() int {
	return a.size
}

// Set sets the i'th bit. It panics if i is out of range.
func (a *Array) Set(i int) {
	a.check(i)
	for _, words := range a.levels {
		words[i>>6] |= 1 << (i & 63)
		i >>= 6
	}
}

// Clear clears the i'th bit. It panics if i is out of range.
func (a *Array) Clear(i int) {
	a.check(i)
	for _, words := range a.levels {
		words[i>>6] &^= 1 << (i & 63)
		if words[i>>6] != 0 {
			// The word still has bits set, so every summary
			// bit above it remains valid.
			return
		}
		i >>= 6
	}
}

// IsSet reports whether the i'th bit is set. It panics if i is out of
// range.
func (a *Array) IsSet(i int) bool {
	a.check(i)
	return a.levels[0][i>>6]&(1<<(i&63)) != 0
}

// ClearAll clears every bit. Unlike the other operations its cost is
// proportional to the capacity.
func (a *Array) ClearAll() {
	for _, words := range a.levels {
		clear(words)
	}
}

// Empty reports whether no bits are set.
func (a *Array) Empty() bool {
	top := a.levels[len(a.levels)-1]
	return top[0] == 0
}

// FirstSet returns the smallest index whose bit is set, descending
// one summary word per level. It panics if the array is empty.
func (a *Array) FirstSet() int {
	if a.Empty() {
		panic("bitarray.Array.FirstSet called on empty array")
	}
	i := 0
	for l := len(a.levels) - 1; l >= 0; l-- {
		i = i<<6 | bits.TrailingZeros64(a.levels[l][i])
	}
	return i
}

func (a *Array) check(i int) {
	if i < 0 || i >= a.size {
		panic("bitarray: index out of range")
	}
}
