package radixheap

import "math/bits"

// bucketer computes the bucket an element belongs to from its rank
// and the heap's current insertion limit.
//
// Buckets are arranged in rows. Row 0 holds radix singleton buckets,
// one per rank that differs from the limit only in its lowest
// radixBits bits; each higher row r holds radix-1 buckets covering
// exponentially wider rank intervals, selected by the highest bit in
// which a rank differs from the limit. Rows above 0 cannot use a
// digit smaller than the row number (row 0 already owns those
// ranks), which is why the row-local digit has the row subtracted:
// the compaction removes the unreachable buckets.
type bucketer struct {
	radix     int
	radixBits uint
	mask      uint64 // largest representable rank
	buckets   int
}

func newBucketer(radix int, rankMask uint64) bucketer {
	if radix < 2 || radix > 64 || radix&(radix-1) != 0 {
		panic("radixheap: radix must be a power of two between 2 and 64")
	}
	b := bucketer{
		radix:     radix,
		radixBits: uint(bits.Len(uint(radix)) - 1),
		mask:      rankMask,
	}
	// One bucket for rank == limit, then radix-1 buckets per full
	// row and 2^r - 1 for a final partial row of r bits.
	width := uint(bits.Len64(rankMask))
	n := 1
	for width >= b.radixBits {
		n += radix - 1
		width -= b.radixBits
	}
	n += 1<<width - 1
	b.buckets = n
	return b
}

// bucketOf returns the bucket that an element of the given rank
// belongs to under the given insertion limit. The rank must not be
// below the limit.
func (b bucketer) bucketOf(rank, limit uint64) int {
	diff := rank ^ limit
	if diff == 0 {
		return 0
	}
	row := (bits.Len64(diff) - 1) / int(b.radixBits)
	digit := int(rank >> (b.radixBits * uint(row)) & uint64(b.radix-1))
	return row*b.radix + digit - row
}

// lowerBound returns the smallest rank that bucket idx can hold,
// assuming an insertion limit of zero. Together with upperBound it is
// used to reason about the layout in tests; neither is needed on the
// heap's hot path.
func (b bucketer) lowerBound(idx int) uint64 {
	if idx < b.radix {
		return uint64(idx)
	}
	row := (idx - 1) / (b.radix - 1)
	digit := uint64(idx - row*(b.radix-1))
	return digit << (b.radixBits * uint(row))
}

// upperBound returns the largest rank that bucket idx can hold,
// assuming an insertion limit of zero.
func (b bucketer) upperBound(idx int) uint64 {
	if idx == b.buckets-1 {
		return b.mask
	}
	return b.lowerBound(idx+1) - 1
}
