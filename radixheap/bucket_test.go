package radixheap

import "testing"

func TestNumBuckets(t *testing.T) {
	tests := []struct {
		radix int
		mask  uint64
		want  int
	}{
		// 8-bit keys, radix 8: rows of 3,3,2 bits -> 7+7+3 buckets+1.
		{8, 0xFF, 18},
		// 8-bit keys, radix 2: 8 rows of 1 bit.
		{2, 0xFF, 9},
		// 64-bit keys, radix 8: 21 full rows and one 1-bit row.
		{8, ^uint64(0), 149},
		// 64-bit keys, radix 64: 10 full rows and one 4-bit row.
		{64, ^uint64(0), 646},
		// 32-bit keys, radix 16: 8 full rows.
		{16, 0xFFFFFFFF, 121},
	}
	for _, test := range tests {
		b := newBucketer(test.radix, test.mask)
		if b.buckets != test.want {
			t.Errorf("newBucketer(%d, %#x).buckets = %d; want %d",
				test.radix, test.mask, b.buckets, test.want)
		}
	}
}

func TestBucketerRejectsBadRadix(t *testing.T) {
	for _, radix := range []int{-1, 0, 1, 3, 24, 65, 128} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("newBucketer(%d) did not panic", radix)
				}
			}()
			newBucketer(radix, 0xFF)
		}()
	}
}

func TestBucketBoundsExhaustive(t *testing.T) {
	// With an insertion limit of zero, every rank must land in the
	// bucket whose [lowerBound, upperBound] interval contains it,
	// and the intervals must tile the rank space in order.
	for _, radix := range []int{2, 4, 8, 16, 64} {
		b := newBucketer(radix, 0xFF)

		if lb := b.lowerBound(0); lb != 0 {
			t.Errorf("radix %d: lowerBound(0) = %d; want 0", radix, lb)
		}
		if ub := b.upperBound(b.buckets - 1); ub != 0xFF {
			t.Errorf("radix %d: upperBound(last) = %d; want 255", radix, ub)
		}
		for idx := 1; idx < b.buckets; idx++ {
			if b.lowerBound(idx) != b.upperBound(idx-1)+1 {
				t.Errorf("radix %d: gap between buckets %d and %d", radix, idx-1, idx)
			}
		}

		for rank := uint64(0); rank <= 0xFF; rank++ {
			idx := b.bucketOf(rank, 0)
			if idx < 0 || idx >= b.buckets {
				t.Fatalf("radix %d: bucketOf(%d, 0) = %d out of range", radix, rank, idx)
			}
			if rank < b.lowerBound(idx) || rank > b.upperBound(idx) {
				t.Fatalf("radix %d: rank %d in bucket %d outside [%d, %d]",
					radix, rank, idx, b.lowerBound(idx), b.upperBound(idx))
			}
		}
	}
}

func TestBucketRowZeroSingleton(t *testing.T) {
	// For any fixed limit, two distinct ranks may never share a
	// row-0 bucket.
	b := newBucketer(8, 0xFF)
	for limit := uint64(0); limit <= 0xFF; limit++ {
		seen := make(map[int]uint64)
		for rank := limit; rank <= 0xFF; rank++ {
			idx := b.bucketOf(rank, limit)
			if idx >= b.radix {
				continue
			}
			if prev, ok := seen[idx]; ok && prev != rank {
				t.Fatalf("limit %d: ranks %d and %d share row-0 bucket %d",
					limit, prev, rank, idx)
			}
			seen[idx] = rank
		}
	}
}

func TestBucketRedistributionDescends(t *testing.T) {
	// The termination argument for reorganize: when the limit
	// advances to the minimum m of a higher-row bucket, every rank
	// of that bucket moves to a strictly lower bucket.
	b := newBucketer(8, 0xFF)
	for limit := uint64(0); limit <= 0xFF; limit++ {
		for m := limit; m <= 0xFF; m++ {
			src := b.bucketOf(m, limit)
			if src < b.radix {
				continue
			}
			for rank := m; rank <= 0xFF; rank++ {
				if b.bucketOf(rank, limit) != src {
					continue
				}
				if dst := b.bucketOf(rank, m); dst >= src {
					t.Fatalf("limit %d -> %d: rank %d stays in bucket %d (got %d)",
						limit, m, rank, src, dst)
				}
			}
		}
	}
}

func TestBucketOfMonotone(t *testing.T) {
	// For a fixed limit, bucket indices are non-decreasing in rank.
	for _, radix := range []int{2, 8, 64} {
		b := newBucketer(radix, 0xFF)
		for limit := uint64(0); limit <= 0xFF; limit++ {
			prev := 0
			for rank := limit; rank <= 0xFF; rank++ {
				idx := b.bucketOf(rank, limit)
				if idx < prev {
					t.Fatalf("radix %d limit %d: bucketOf(%d) = %d below bucketOf(%d) = %d",
						radix, limit, rank, idx, rank-1, prev)
				}
				prev = idx
			}
		}
	}
}
