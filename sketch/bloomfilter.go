package sketch

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// DuplicateFilter is a Bloom filter used as a fast negative pre-check in
// front of the exact duplicate-row hash set (see quality.DuplicateDetector):
// a "definitely not seen" answer lets the caller skip the exact set lookup
// entirely, while a "maybe seen" answer falls through to the exact check.
// The filter never by itself decides that a row is a duplicate, so the
// overall detector stays exact per spec, adapted from the teacher's general
// purpose BloomFilter.
type DuplicateFilter struct {
	bits bitVector
	k    uint64
	m    uint64
}

// NewDuplicateFilter sizes a filter for an expected number of rows at the
// given target false-positive rate.
func NewDuplicateFilter(expectedRows uint64, falsePositiveRate float64) *DuplicateFilter {
	if expectedRows == 0 {
		expectedRows = 1
	}
	optM := uint64(-float64(expectedRows) * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2))
	var m uint64
	if optM > (1 << 32) {
		m = 1 << 32
	} else {
		m = nextPowerOfTwo(optM)
	}
	k := uint64(float64(m)*math.Ln2/float64(expectedRows) + 0.5)
	if k == 0 {
		k = 1
	}
	return &DuplicateFilter{bits: newBitVector(m), k: k, m: m}
}

// hashPair returns the two base hashes used to derive the k probe
// positions via h[i] = h1 + i*h2 mod m (Kirsch-Mitzenmacher), from a single
// 64-bit xxhash digest.
func hashPair(item []byte) (uint64, uint64) {
	h := xxhash.Sum64(item)
	return h & ((1 << 32) - 1), h >> 32
}

// Add records item as present in the filter.
func (bf *DuplicateFilter) Add(item []byte) {
	h1, h2 := hashPair(item)
	bf.bits.set(h1 & (bf.m - 1))
	for i := uint64(1); i < bf.k; i++ {
		h1 += h2
		bf.bits.set(h1 & (bf.m - 1))
	}
}

// MaybeContains returns false only when item is definitely absent; true
// means "possibly present, caller must fall back to an exact check".
func (bf *DuplicateFilter) MaybeContains(item []byte) bool {
	h1, h2 := hashPair(item)
	if bf.bits.get(h1&(bf.m-1)) != 1 {
		return false
	}
	for i := uint64(1); i < bf.k; i++ {
		h1 += h2
		if bf.bits.get(h1&(bf.m-1)) != 1 {
			return false
		}
	}
	return true
}

// nextPowerOfTwo returns the next greater or equal power of two.
func nextPowerOfTwo(x uint64) uint64 {
	if x == 0 {
		return 1
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x + 1
}
