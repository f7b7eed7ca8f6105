// Package bitset provides a fixed-width bit vector over dense element ids.
//
// A Set represents a subset of {0, ..., n-1} as a packed []uint64. It backs
// the bitvec solver variant, where marginal gain is the population count of
// the bitwise AND between a candidate set's mask and the uncovered mask.
// All word-level loops are branch-free and cache-friendly; population
// counting goes through a kernel selected at package init (see popcount
// files).
package bitset

const wordBits = 64

// Set is a bit vector of fixed width. The zero value is unusable; construct
// with New, NewFull, or FromElements.
type Set struct {
	words []uint64
	n     int // width in bits
}

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// New returns an empty set of width n.
func New(n int) *Set {
	return &Set{
		words: make([]uint64, wordsFor(n)),
		n:     n,
	}
}

// NewFull returns a set of width n with all n bits set.
// Excess bits in the last word stay zero so popcounts are exact.
func NewFull(n int) *Set {
	s := New(n)
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	if excess := len(s.words)*wordBits - n; excess > 0 && len(s.words) > 0 {
		s.words[len(s.words)-1] = ^uint64(0) >> uint(excess)
	}
	return s
}

// FromElements returns a set of width n containing the given elements.
// Elements must be in [0, n); duplicates are harmless.
func FromElements(n int, elements []int) *Set {
	s := New(n)
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Width returns the width of the set in bits.
func (s *Set) Width() int {
	return s.n
}

// Add sets bit e. Panics if e is out of range, matching slice semantics.
func (s *Set) Add(e int) {
	s.words[e/wordBits] |= 1 << uint(e%wordBits)
}

// Contains reports whether bit e is set.
func (s *Set) Contains(e int) bool {
	return s.words[e/wordBits]&(1<<uint(e%wordBits)) != 0
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	return countWords(s.words)
}

// IsEmpty reports whether no bits are set.
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IntersectionCount returns the number of bits set in both s and other.
// Both sets must have the same width.
func (s *Set) IntersectionCount(other *Set) int {
	return andCountWords(s.words, other.words)
}

// RemoveAll clears from s every bit set in other and returns the number of
// bits that were cleared. Both sets must have the same width.
func (s *Set) RemoveAll(other *Set) int {
	removed := 0
	for i, w := range other.words {
		hit := s.words[i] & w
		if hit != 0 {
			removed += popcount(hit)
			s.words[i] &^= w
		}
	}
	return removed
}

// Elements appends the ids of all set bits to dst in ascending order and
// returns the result.
func (s *Set) Elements(dst []int) []int {
	for i, w := range s.words {
		for w != 0 {
			bit := trailingZeros(w)
			dst = append(dst, i*wordBits+bit)
			w &= w - 1
		}
	}
	return dst
}
