package bitset

import "math/bits"

// popcount returns the number of set bits in a single word.
func popcount(w uint64) int {
	return bits.OnesCount64(w)
}

// trailingZeros returns the number of trailing zero bits in w.
func trailingZeros(w uint64) int {
	return bits.TrailingZeros64(w)
}

// countGeneric sums popcounts over all words using math/bits, which the
// compiler lowers to the POPCNT instruction where available.
func countGeneric(words []uint64) int {
	total := 0
	for _, w := range words {
		total += bits.OnesCount64(w)
	}
	return total
}

// andCountGeneric sums popcounts of pairwise AND without materializing the
// intersection. This is the hot loop of the bitvec variant: one pass per
// candidate set per selection round.
func andCountGeneric(a, b []uint64) int {
	total := 0
	for i, w := range a {
		total += bits.OnesCount64(w & b[i])
	}
	return total
}

// popcountSWAR is the classic SWAR population count. It is used on amd64
// CPUs without POPCNT, where it beats the per-call generic fallback inside
// math/bits.
func popcountSWAR(w uint64) int {
	w -= (w >> 1) & 0x5555555555555555
	w = (w & 0x3333333333333333) + ((w >> 2) & 0x3333333333333333)
	w = (w + (w >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((w * 0x0101010101010101) >> 56)
}

func countSWAR(words []uint64) int {
	total := 0
	for _, w := range words {
		total += popcountSWAR(w)
	}
	return total
}

func andCountSWAR(a, b []uint64) int {
	total := 0
	for i, w := range a {
		total += popcountSWAR(w & b[i])
	}
	return total
}
