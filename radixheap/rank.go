package radixheap

import "unsafe"

// Integer is the set of key types that a heap can be ordered on:
// any fixed-width signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ranker maps keys of type K to unsigned ranks and back. Ranks are
// order-isomorphic to keys: for any x < y, rankOf(x) < rankOf(y).
// For unsigned key types the mapping is the identity; for signed key
// types (two's complement) it flips the sign bit, so the most
// negative key has rank zero and the most positive key has the
// largest rank. All ranks fit in the key's bit width, so mask is
// also the largest representable rank.
type ranker[K Integer] struct {
	mask    uint64
	signBit uint64
}

func newRanker[K Integer]() ranker[K] {
	width := 8 * uint(unsafe.Sizeof(*new(K)))
	r := ranker[K]{mask: ^uint64(0) >> (64 - width)}
	if ^K(0) < 0 {
		// Signed key type.
		r.signBit = 1 << (width - 1)
	}
	return r
}

// rankOf returns the rank of key k.
func (r ranker[K]) rankOf(k K) uint64 {
	return uint64(k)&r.mask ^ r.signBit
}

// keyAt returns the key whose rank is v. It is the inverse of rankOf:
// keyAt(rankOf(k)) == k for every key k.
func (r ranker[K]) keyAt(v uint64) K {
	return K(v ^ r.signBit)
}
